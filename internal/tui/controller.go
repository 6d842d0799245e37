// internal/tui/controller.go
package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
)

// FrameDuration — период кадра терминального клиента
const FrameDuration = time.Second / 30

// Controller переводит события терминала в команды игры.
type Controller struct {
	game      *app.Game
	view      *View
	mouseDown bool // Button1 уже нажата, drag не ставит новые башни
}

func NewController(game *app.Game, view *View) *Controller {
	return &Controller{game: game, view: view}
}

// HandleEvent обрабатывает одно событие. Возвращает true, если пора выходить.
func (c *Controller) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(ev)
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !c.mouseDown {
			x, y := ev.Position()
			wx, wy := c.view.ToWorld(x, y)
			c.game.PlaceTower(wx, wy)
		}
		c.mouseDown = pressed
	case *tcell.EventResize:
		c.view.screen.Sync()
	}
	return false
}

func (c *Controller) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}

	prog := c.game.Progression()
	switch ev.Rune() {
	case 'q':
		return true
	case 'p':
		if prog.Phase == component.PhaseSpawning || prog.Phase == component.PhaseWaveActive {
			c.game.TogglePause()
		}
	case ' ':
		switch prog.Phase {
		case component.PhaseIdle:
			c.game.StartRun()
		case component.PhaseLevelComplete:
			c.game.AdvanceLevel()
		case component.PhaseGameOver:
			c.game.Cleanup()
			c.game.StartRun()
		}
	}
	return false
}

// Run крутит цикл: события, тик симуляции, отрисовка. Возвращает при выходе.
func (c *Controller) Run() {
	screen := c.view.screen
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || c.HandleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			dt := now.Sub(last).Seconds()
			if dt > config.MaxDeltaTime {
				dt = config.MaxDeltaTime
			}
			last = now
			c.game.Update(dt)
			c.view.Draw(c.game)
		}
	}
}
