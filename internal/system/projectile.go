// internal/system/projectile.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/interfaces"
)

// ProjectileSystem управляет движением снарядов и нанесением урона
type ProjectileSystem struct {
	ecs             *entity.ECS
	game            interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewProjectileSystem(ecs *entity.ECS, game interfaces.GameContext, eventDispatcher *event.Dispatcher) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		game:            game,
		eventDispatcher: eventDispatcher,
	}
}

// Update двигает снаряды к текущей позиции цели и разрешает попадания.
// Возвращает число уничтоженных за тик врагов.
func (s *ProjectileSystem) Update(deltaTime float64) int {
	killed := 0
	s.ecs.RemoveProjectilesIf(func(proj *component.Projectile) bool {
		target, ok := s.ecs.Enemy(proj.TargetID)
		if !ok {
			// Цель пропала, снаряд исчезает без урона
			return true
		}

		if distance(proj.Position, target.Position) > proj.HitRadius {
			// Снаряд самонаводящийся: летит в текущую точку, без упреждения
			proj.Position = stepToward(proj.Position, target.Position, proj.Speed*deltaTime)
			return false
		}

		if s.hitTarget(proj, target) {
			killed++
		}
		return true
	})
	return killed
}

func (s *ProjectileSystem) hitTarget(proj *component.Projectile, target *component.Enemy) bool {
	if !ApplyDamage(target, proj.Damage) {
		return false
	}
	s.ecs.RemoveEnemy(target.ID)
	s.game.Progression().Money += target.Reward
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: target})
	s.eventDispatcher.Dispatch(event.Event{Type: event.StatsChanged})
	return true
}

func projectileRenderable() component.Renderable {
	return component.Renderable{Color: config.ProjectileColor, Radius: config.ProjectileRadius}
}
