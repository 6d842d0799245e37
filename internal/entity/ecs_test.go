package entity

import (
	"testing"

	"go-path-defense/internal/component"
)

func TestNewEntityMonotonic(t *testing.T) {
	ecs := NewECS()
	a, b := ecs.NewEntity(), ecs.NewEntity()
	if a == 0 || b != a+1 {
		t.Errorf("NewEntity() = %d, %d; want consecutive non-zero IDs", a, b)
	}
}

func TestEnemyLookupAfterRemoval(t *testing.T) {
	ecs := NewECS()
	e := ecs.AddEnemy(&component.Enemy{Health: 1})
	if got, ok := ecs.Enemy(e.ID); !ok || got != e {
		t.Fatalf("Enemy(%d) = %v, %v; want the added enemy", e.ID, got, ok)
	}
	if !ecs.RemoveEnemy(e.ID) {
		t.Fatal("RemoveEnemy() = false, want true")
	}
	if _, ok := ecs.Enemy(e.ID); ok {
		t.Error("Enemy() found a removed enemy")
	}
	if ecs.RemoveEnemy(e.ID) {
		t.Error("second RemoveEnemy() = true, want false")
	}
	if len(ecs.Enemies) != 0 {
		t.Errorf("len(Enemies) = %d, want 0", len(ecs.Enemies))
	}
}

func TestRemoveIfKeepsOrder(t *testing.T) {
	ecs := NewECS()
	for i := 0; i < 6; i++ {
		ecs.AddEnemy(&component.Enemy{Health: i % 2})
	}
	removed := ecs.RemoveEnemiesIf(func(e *component.Enemy) bool { return !e.Alive() })
	if removed != 3 {
		t.Fatalf("RemoveEnemiesIf() = %d, want 3", removed)
	}
	for i := 1; i < len(ecs.Enemies); i++ {
		if ecs.Enemies[i-1].ID >= ecs.Enemies[i].ID {
			t.Errorf("order broken at %d: %d >= %d", i, ecs.Enemies[i-1].ID, ecs.Enemies[i].ID)
		}
	}
	for _, e := range ecs.Enemies {
		if _, ok := ecs.Enemy(e.ID); !ok {
			t.Errorf("surviving enemy %d missing from index", e.ID)
		}
	}
}

func TestRemoveTowersAndProjectiles(t *testing.T) {
	ecs := NewECS()
	ecs.AddTower(&component.Tower{Damage: 1})
	ecs.AddTower(&component.Tower{Damage: 2})
	ecs.AddProjectile(&component.Projectile{Damage: 1})
	ecs.AddProjectile(&component.Projectile{Damage: 5})

	if n := ecs.RemoveTowersIf(func(t *component.Tower) bool { return t.Damage == 2 }); n != 1 {
		t.Errorf("RemoveTowersIf() = %d, want 1", n)
	}
	if n := ecs.RemoveProjectilesIf(func(p *component.Projectile) bool { return true }); n != 2 {
		t.Errorf("RemoveProjectilesIf() = %d, want 2", n)
	}
	if len(ecs.Towers) != 1 || len(ecs.Projectiles) != 0 {
		t.Errorf("towers=%d projectiles=%d, want 1 and 0", len(ecs.Towers), len(ecs.Projectiles))
	}
}

func TestClear(t *testing.T) {
	ecs := NewECS()
	e := ecs.AddEnemy(&component.Enemy{Health: 1})
	ecs.AddTower(&component.Tower{})
	ecs.AddProjectile(&component.Projectile{TargetID: e.ID})
	next := ecs.NextID

	ecs.Clear()

	if len(ecs.Enemies)+len(ecs.Towers)+len(ecs.Projectiles) != 0 {
		t.Error("Clear() left entities behind")
	}
	if _, ok := ecs.Enemy(e.ID); ok {
		t.Error("Clear() left enemy in index")
	}
	if ecs.NextID != next {
		t.Errorf("NextID = %d, want %d (IDs must not be reused)", ecs.NextID, next)
	}
}
