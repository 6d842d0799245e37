package system

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

func newTestTower(now float64) *component.Tower {
	return &component.Tower{
		Position: component.Position{X: 0, Y: 0},
		Range:    100,
		FireRate: 0.5,
		LastShot: now - 0.5,
		Damage:   1,
	}
}

func TestCombatRespectsFireRate(t *testing.T) {
	ecs := entity.NewECS()
	clock := NewClock()
	s := NewCombatSystem(ecs, clock, defs.DefaultTower(), event.NewDispatcher())
	ecs.AddTower(newTestTower(clock.Now()))
	ecs.AddEnemy(&component.Enemy{Position: component.Position{X: 50}, Health: 1})

	steps := []struct {
		advance   float64
		wantFired int
	}{
		{0, 1},
		{0.1, 0},
		{0.45, 1}, // 550ms после первого выстрела
	}
	for i, step := range steps {
		clock.Advance(step.advance)
		if got := s.Update(); got != step.wantFired {
			t.Errorf("step %d: fired %d, want %d", i, got, step.wantFired)
		}
	}
	if len(ecs.Projectiles) != 2 {
		t.Errorf("projectiles = %d, want 2", len(ecs.Projectiles))
	}
}

func TestCombatRange(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want int
	}{
		{"inside", 99, 1},
		{"on the edge", 100, 0},
		{"outside", 150, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := entity.NewECS()
			clock := NewClock()
			s := NewCombatSystem(ecs, clock, defs.DefaultTower(), event.NewDispatcher())
			ecs.AddTower(newTestTower(0))
			ecs.AddEnemy(&component.Enemy{Position: component.Position{X: tt.x}, Health: 1})
			if got := s.Update(); got != tt.want {
				t.Errorf("fired %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCombatProjectileFields(t *testing.T) {
	ecs := entity.NewECS()
	clock := NewClock()
	def := defs.DefaultTower()
	s := NewCombatSystem(ecs, clock, def, event.NewDispatcher())
	tower := ecs.AddTower(newTestTower(0))
	enemy := ecs.AddEnemy(&component.Enemy{Position: component.Position{X: 30}, Health: 1})

	proj := s.TryFire(tower, enemy, clock.Now())
	if proj == nil {
		t.Fatal("TryFire returned nil")
	}
	if proj.TargetID != enemy.ID || proj.Position != tower.Position {
		t.Errorf("projectile = %+v", proj)
	}
	if proj.Speed != def.ProjectileSpeed || proj.HitRadius != def.ProjectileHitRadius || proj.Damage != tower.Damage {
		t.Errorf("projectile stats = %+v", proj)
	}
	if tower.LastShot != clock.Now() {
		t.Errorf("LastShot = %v, want %v", tower.LastShot, clock.Now())
	}
	// одна башня за тик стреляет не больше одного раза
	if s.TryFire(tower, enemy, clock.Now()) != nil {
		t.Error("second shot in the same instant")
	}
}
