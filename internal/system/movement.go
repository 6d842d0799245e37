// internal/system/movement.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/interfaces"
)

// MovementSystem двигает врагов по пути уровня и списывает жизни за прорвавшихся
type MovementSystem struct {
	ecs             *entity.ECS
	game            interfaces.GameContext
	eventDispatcher *event.Dispatcher
	nominalLength   float64 // прогресс за секунду = speed / nominalLength
}

func NewMovementSystem(ecs *entity.ECS, game interfaces.GameContext, eventDispatcher *event.Dispatcher, nominalLength float64) *MovementSystem {
	return &MovementSystem{
		ecs:             ecs,
		game:            game,
		eventDispatcher: eventDispatcher,
		nominalLength:   nominalLength,
	}
}

// Update продвигает всех врагов и возвращает число прорвавшихся за тик
func (s *MovementSystem) Update(deltaTime float64) int {
	path := s.game.Path()
	prog := s.game.Progression()
	var escaped []*component.Enemy

	s.ecs.RemoveEnemiesIf(func(e *component.Enemy) bool {
		e.Progress += e.Speed * deltaTime / s.nominalLength
		if e.Progress >= 1 {
			escaped = append(escaped, e)
			return true
		}
		e.Position = component.PositionOf(path.PointAt(e.Progress))
		return false
	})

	for _, e := range escaped {
		// Ниже нуля жизни не уходят: на нуле забег уже проигран
		if prog.Lives > 0 {
			prog.Lives--
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: e.ID})
		s.eventDispatcher.Dispatch(event.Event{Type: event.StatsChanged})
	}
	return len(escaped)
}
