// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-path-defense/internal/defs"
)

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Options — параметры, с которыми меню создаёт новую игру
type Options struct {
	Rules defs.Rules
	Seed  int64
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
	Options Options
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(opts Options) *StateMachine {
	return &StateMachine{Options: opts}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
