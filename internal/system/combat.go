package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

// CombatSystem управляет атакой башен.
// Башни не держат цель: каждый тик заново проверяются все пары башня-враг.
type CombatSystem struct {
	ecs             *entity.ECS
	clock           *Clock
	tower           defs.TowerDefinition
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(ecs *entity.ECS, clock *Clock, tower defs.TowerDefinition, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		ecs:             ecs,
		clock:           clock,
		tower:           tower,
		eventDispatcher: eventDispatcher,
	}
}

// Update возвращает число выпущенных за тик снарядов
func (s *CombatSystem) Update() int {
	now := s.clock.Now()
	fired := 0
	// Новые снаряды добавляются в хранилище, враги и башни в цикле не меняются
	for _, enemy := range s.ecs.Enemies {
		for _, tower := range s.ecs.Towers {
			if !tower.InRange(enemy.Position) {
				continue
			}
			if s.TryFire(tower, enemy, now) != nil {
				fired++
			}
		}
	}
	return fired
}

// TryFire стреляет башней по врагу, если прошёл кулдаун.
// Возвращает новый снаряд или nil.
func (s *CombatSystem) TryFire(tower *component.Tower, enemy *component.Enemy, now float64) *component.Projectile {
	if !tower.Ready(now) {
		return nil
	}
	tower.LastShot = now

	proj := s.ecs.AddProjectile(&component.Projectile{
		Position:  tower.Position,
		TargetID:  enemy.ID,
		Speed:     s.tower.ProjectileSpeed,
		Damage:    tower.Damage,
		HitRadius: s.tower.ProjectileHitRadius,
		Render:    projectileRenderable(),
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.ProjectileFired, Data: proj.ID})
	return proj
}
