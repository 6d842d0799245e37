package system

import (
	"math"
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

func TestProjectileKillsOnce(t *testing.T) {
	ecs := entity.NewECS()
	game := newTestGame()
	d := event.NewDispatcher()
	rec := recorder{}
	rec.listen(d, event.EnemyKilled)
	s := NewProjectileSystem(ecs, game, d)

	enemy := ecs.AddEnemy(&component.Enemy{Position: component.Position{X: 10}, Health: 1, Reward: 10})
	// два снаряда в одну цель: второй теряет цель
	for i := 0; i < 2; i++ {
		ecs.AddProjectile(&component.Projectile{Position: component.Position{X: 12}, TargetID: enemy.ID, Speed: 400, Damage: 1, HitRadius: 5})
	}

	if killed := s.Update(0.016); killed != 1 {
		t.Errorf("killed = %d, want 1", killed)
	}
	s.Update(0.016)

	if game.prog.Money != 110 {
		t.Errorf("Money = %d, want 110", game.prog.Money)
	}
	if rec[event.EnemyKilled] != 1 {
		t.Errorf("EnemyKilled events = %d, want 1", rec[event.EnemyKilled])
	}
	if len(ecs.Enemies) != 0 || len(ecs.Projectiles) != 0 {
		t.Errorf("enemies=%d projectiles=%d, want 0/0", len(ecs.Enemies), len(ecs.Projectiles))
	}
}

func TestProjectileMissingTarget(t *testing.T) {
	ecs := entity.NewECS()
	game := newTestGame()
	s := NewProjectileSystem(ecs, game, event.NewDispatcher())
	ecs.AddProjectile(&component.Projectile{TargetID: 999, Speed: 400, Damage: 1, HitRadius: 5})

	s.Update(0.016)

	if len(ecs.Projectiles) != 0 {
		t.Error("projectile without target not removed")
	}
	if game.prog.Money != 100 {
		t.Errorf("Money = %d, want 100", game.prog.Money)
	}
}

func TestProjectileNonLethalHit(t *testing.T) {
	ecs := entity.NewECS()
	game := newTestGame()
	s := NewProjectileSystem(ecs, game, event.NewDispatcher())
	enemy := ecs.AddEnemy(&component.Enemy{Health: 3, Reward: 10})
	ecs.AddProjectile(&component.Projectile{TargetID: enemy.ID, Damage: 1, HitRadius: 5})

	if killed := s.Update(0.016); killed != 0 {
		t.Errorf("killed = %d, want 0", killed)
	}
	if enemy.Health != 2 || len(ecs.Projectiles) != 0 || len(ecs.Enemies) != 1 {
		t.Errorf("health=%d projectiles=%d enemies=%d", enemy.Health, len(ecs.Projectiles), len(ecs.Enemies))
	}
	if game.prog.Money != 100 {
		t.Errorf("Money = %d, want 100", game.prog.Money)
	}
}

func TestProjectileFlight(t *testing.T) {
	ecs := entity.NewECS()
	s := NewProjectileSystem(ecs, newTestGame(), event.NewDispatcher())
	enemy := ecs.AddEnemy(&component.Enemy{Position: component.Position{X: 100}, Health: 1})
	proj := ecs.AddProjectile(&component.Projectile{TargetID: enemy.ID, Speed: 400, Damage: 1, HitRadius: 5})

	s.Update(0.1)
	if math.Abs(proj.Position.X-40) > 1e-9 {
		t.Fatalf("X = %v, want 40", proj.Position.X)
	}

	// не перелетает цель
	enemy.Position.X = 60
	s.Update(0.1)
	if proj.Position != enemy.Position {
		t.Errorf("Position = %+v, want %+v", proj.Position, enemy.Position)
	}
	if len(ecs.Enemies) != 1 {
		t.Fatal("hit resolved in the same tick as the approach")
	}

	s.Update(0.1)
	if len(ecs.Enemies) != 0 || len(ecs.Projectiles) != 0 {
		t.Error("projectile did not resolve after reaching the target")
	}
}

func TestApplyDamage(t *testing.T) {
	tests := []struct {
		health, damage int
		wantHealth     int
		wantKilled     bool
	}{
		{1, 1, 0, true},
		{3, 1, 2, false},
		{1, 5, 0, true},
		{2, -1, 2, false},
	}
	for _, tt := range tests {
		e := &component.Enemy{Health: tt.health}
		if got := ApplyDamage(e, tt.damage); got != tt.wantKilled || e.Health != tt.wantHealth {
			t.Errorf("ApplyDamage(%d, %d) = %v, health %d; want %v, %d", tt.health, tt.damage, got, e.Health, tt.wantKilled, tt.wantHealth)
		}
	}
}
