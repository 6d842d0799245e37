// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-path-defense/internal/app"
	"go-path-defense/internal/config"
	"go-path-defense/internal/event"
	"go-path-defense/internal/system"
	"go-path-defense/internal/ui"
)

// GameState — состояние игры
type GameState struct {
	sm            *StateMachine
	game          *app.Game
	renderer      *system.RenderSystem
	effects       *system.VisualEffectSystem
	hud           *ui.HUD
	backButton    *ui.Button
	levelComplete *ui.LevelCompleteOverlay
	gameOver      *ui.GameOverOverlay
}

func NewGameState(sm *StateMachine) *GameState {
	gameLogic := app.NewGame(sm.Options.Rules, sm.Options.Seed)

	gs := &GameState{
		sm:       sm,
		game:     gameLogic,
		renderer: system.NewRenderSystem(gameLogic.ECS),
		effects:  system.NewVisualEffectSystem(),
		hud:      ui.NewHUD(),
		backButton: ui.NewButton(
			config.BackButtonX+config.BackButtonW/2, config.BackButtonY+config.BackButtonH/2,
			config.BackButtonW, config.BackButtonH, "BACK",
			config.BackButtonColor, config.TextLightColor),
		levelComplete: ui.NewLevelCompleteOverlay(),
		gameOver:      &ui.GameOverOverlay{},
	}
	gs.backButton.TextScale = 1.5

	gameLogic.EventDispatcher.SubscribeAll(gs.effects, event.EnemyKilled, event.LevelStarted)
	// анимации оверлеев стартуют с момента срабатывания защёлки
	gameLogic.EventDispatcher.Subscribe(event.LevelCompleted, event.ListenerFunc(func(event.Event) {
		gs.levelComplete.Reset()
	}))
	gameLogic.EventDispatcher.Subscribe(event.GameOver, event.ListenerFunc(func(event.Event) {
		gs.gameOver.Reset()
	}))

	gameLogic.StartRun()
	return gs
}

func (g *GameState) Enter() {
	// Ничего не делаем при входе
}

func (g *GameState) Update(deltaTime float64) {
	prog := g.game.Progression()
	g.effects.Update(deltaTime)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.handleClick(x, y) {
			return
		}
	}

	switch {
	case prog.GameOverShown():
		g.gameOver.Update(deltaTime)
		if g.gameOver.Done() {
			g.backToMenu()
		}
		return
	case prog.LevelCompleteShown():
		g.levelComplete.Update(deltaTime)
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.game.AdvanceLevel()
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	g.game.Update(deltaTime)
}

// handleClick обрабатывает клик в точке x, y. true — ушли в меню, кадр закончен.
// BACK работает в любой фазе, в том числе под оверлеями.
func (g *GameState) handleClick(x, y int) bool {
	prog := g.game.Progression()
	switch {
	case g.backButton.Contains(x, y):
		g.backToMenu()
		return true
	case prog.GameOverShown():
	case prog.LevelCompleteShown():
		if g.levelComplete.Ready.Contains(x, y) {
			g.game.AdvanceLevel()
		}
	default:
		g.game.PlaceTower(float64(x), float64(y))
	}
	return false
}

func (g *GameState) backToMenu() {
	g.game.Cleanup()
	g.sm.SetState(NewMenuState(g.sm))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	prog := g.game.Progression()
	g.renderer.Draw(screen, g.game.Path())
	g.renderer.DrawBursts(screen, g.effects.Bursts())
	g.hud.Draw(screen, prog, g.game.Rules.Tower.Cost)

	x, y := ebiten.CursorPosition()
	g.backButton.Draw(screen, g.backButton.Contains(x, y), 1)

	switch {
	case prog.GameOverShown():
		g.gameOver.Draw(screen)
	case prog.LevelCompleteShown():
		g.levelComplete.Draw(screen, g.levelComplete.Ready.Contains(x, y))
	}
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}
