package system

import (
	"log"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/interfaces"
)

// StateSystem проверяет условия конца уровня и забега.
// Фазы LevelComplete и GameOver — защёлки: событие уходит один раз,
// даже если условие держится много тиков подряд.
type StateSystem struct {
	ecs             *entity.ECS
	clock           *Clock
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(ecs *entity.ECS, clock *Clock, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		clock:           clock,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
}

// CheckEndConditions вызывается раз в тик после боя.
// Возвращает true, если в этом вызове сработала одна из защёлок.
func (s *StateSystem) CheckEndConditions() bool {
	prog := s.gameContext.Progression()
	switch prog.Phase {
	case component.PhaseSpawning, component.PhaseWaveActive:
	default:
		return false
	}

	if prog.Lives <= 0 {
		s.switchToGameOver(prog)
		return true
	}
	if s.allWavesCleared(prog) {
		s.switchToLevelComplete(prog)
		return true
	}
	return false
}

// allWavesCleared — все волны выпущены, все враги заспавнены и никого не осталось на поле
func (s *StateSystem) allWavesCleared(prog *component.Progression) bool {
	return prog.Wave >= prog.TotalWaves &&
		len(s.ecs.Enemies) == 0 &&
		s.clock.Pending() == 0
}

func (s *StateSystem) switchToGameOver(prog *component.Progression) {
	prog.Phase = component.PhaseGameOver
	log.Printf("Game over on level %d, wave %d/%d", prog.Level, prog.Wave, prog.TotalWaves)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: prog.Level})
}

func (s *StateSystem) switchToLevelComplete(prog *component.Progression) {
	prog.Phase = component.PhaseLevelComplete
	log.Printf("Level %d complete: money %d, lives %d", prog.Level, prog.Money, prog.Lives)
	s.eventDispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: prog.Level})
}
