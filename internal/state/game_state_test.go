package state

import (
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
)

const (
	backX  = config.BackButtonX + config.BackButtonW/2
	backY  = config.BackButtonY + config.BackButtonH/2
	readyX = config.ScreenWidth / 2
	readyY = 360
)

func newTestGameState(t *testing.T) (*StateMachine, *GameState) {
	t.Helper()
	sm := NewStateMachine(Options{Rules: defs.DefaultRules(), Seed: 5})
	gs := NewGameState(sm)
	sm.SetState(gs)
	return sm, gs
}

func TestBackButtonInEveryPhase(t *testing.T) {
	phases := []component.Phase{
		component.PhaseSpawning,
		component.PhaseWaveActive,
		component.PhaseLevelComplete,
		component.PhaseGameOver,
	}
	for _, phase := range phases {
		t.Run(phase.String(), func(t *testing.T) {
			sm, gs := newTestGameState(t)
			gs.game.Progression().Phase = phase

			if !gs.handleClick(backX, backY) {
				t.Fatal("handleClick(BACK) = false, want true")
			}
			if _, ok := sm.current.(*MenuState); !ok {
				t.Errorf("current state = %T, want *MenuState", sm.current)
			}
			if got := gs.game.Progression().Phase; got != component.PhaseIdle {
				t.Errorf("Phase = %v after BACK, want Idle", got)
			}
		})
	}
}

func TestClickReadyAdvancesLevel(t *testing.T) {
	sm, gs := newTestGameState(t)
	prog := gs.game.Progression()
	prog.Phase = component.PhaseLevelComplete

	// мимо кнопки: ничего
	if gs.handleClick(100, 100) {
		t.Fatal("handleClick off the buttons = true")
	}
	if prog.Level != 1 || len(gs.game.ECS.Towers) != 0 {
		t.Fatalf("level %d, towers %d after a click beside READY", prog.Level, len(gs.game.ECS.Towers))
	}

	gs.handleClick(readyX, readyY)
	if prog.Level != 2 || prog.Phase != component.PhaseSpawning {
		t.Errorf("level %d phase %v after READY, want 2 Spawning", prog.Level, prog.Phase)
	}
	if sm.current != gs {
		t.Errorf("current state = %T, want the game", sm.current)
	}
}

func TestClickFieldPlacesTower(t *testing.T) {
	_, gs := newTestGameState(t)

	gs.handleClick(200, 300)
	if len(gs.game.ECS.Towers) != 1 {
		t.Fatalf("towers = %d, want 1", len(gs.game.ECS.Towers))
	}

	gs.game.Progression().Phase = component.PhaseGameOver
	gs.handleClick(300, 300)
	if len(gs.game.ECS.Towers) != 1 {
		t.Errorf("towers = %d after a click on the game over screen", len(gs.game.ECS.Towers))
	}
}
