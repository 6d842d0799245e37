// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-path-defense/internal/config"
	"go-path-defense/internal/ui"
	"go-path-defense/pkg/render"
)

var menuInstructions = []string{
	"Click to place towers",
	"Defend against enemy waves",
	"Earn money from destroyed enemies",
}

// MenuState — стартовый экран
type MenuState struct {
	sm          *StateMachine
	startButton *ui.Button
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{
		sm: sm,
		startButton: ui.NewButton(config.ScreenWidth/2, 450, 200, 60, "START GAME",
			config.StartButtonColor, config.TextDarkColor),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	start := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		start = start || m.startButton.Contains(x, y)
	}
	if start {
		m.sm.SetState(NewGameState(m.sm))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.MenuBackgroundColor)
	render.DrawTextCentered(screen, "TOWER DEFENSE", config.ScreenWidth/2, 150, 4, config.TitleColor)
	for i, line := range menuInstructions {
		render.DrawTextCentered(screen, line, config.ScreenWidth/2, 280+float64(i)*24, 1.5, config.TextLightColor)
	}
	x, y := ebiten.CursorPosition()
	m.startButton.Draw(screen, m.startButton.Contains(x, y), 1)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
