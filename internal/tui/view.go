// internal/tui/view.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"go-path-defense/internal/app"
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
)

const (
	pathSamples = 400
	hudRows     = 1 // строка статуса внизу
)

var (
	styleDefault    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	stylePath       = tcell.StyleDefault.Foreground(tcell.PaletteColor(94)).Background(tcell.ColorBlack)
	styleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	styleTower      = tcell.StyleDefault.Foreground(tcell.ColorBlue).Background(tcell.ColorBlack).Bold(true)
	styleProjectile = tcell.StyleDefault.Foreground(tcell.ColorYellow).Background(tcell.ColorBlack)
	styleHUD        = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorLightGray)
	styleBanner     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGreen).Bold(true)
	styleGameOver   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true)
)

// View рисует игровое поле 800x600 в сетке терминала.
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// fieldSize — размер области поля в клетках, без строки статуса
func (v *View) fieldSize() (int, int) {
	w, h := v.screen.Size()
	h -= hudRows
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// ToCell переводит мировые координаты в клетку терминала
func (v *View) ToCell(x, y float64) (int, int) {
	w, h := v.fieldSize()
	return int(x * float64(w) / config.ScreenWidth), int(y * float64(h) / config.ScreenHeight)
}

// ToWorld переводит клетку в мировые координаты её центра
func (v *View) ToWorld(cx, cy int) (float64, float64) {
	w, h := v.fieldSize()
	return (float64(cx) + 0.5) * config.ScreenWidth / float64(w),
		(float64(cy) + 0.5) * config.ScreenHeight / float64(h)
}

// Draw рисует кадр и показывает его
func (v *View) Draw(g *app.Game) {
	v.screen.Clear()
	prog := g.Progression()

	if prog.Phase == component.PhaseIdle {
		v.drawMenu()
		v.screen.Show()
		return
	}

	v.drawField(g)
	v.drawHUD(g)

	switch {
	case prog.GameOverShown():
		v.drawBanner(" GAME OVER - Space: new run, q: quit ", styleGameOver)
	case prog.LevelCompleteShown():
		v.drawBanner(fmt.Sprintf(" LEVEL %d COMPLETE - READY? (Space) ", prog.Level), styleBanner)
	case prog.Paused:
		v.drawBanner(" PAUSED (p) ", styleHUD)
	}
	v.screen.Show()
}

func (v *View) drawMenu() {
	w, h := v.fieldSize()
	lines := []string{
		"PATH DEFENSE",
		"",
		"Click near the path to build a tower ($50).",
		"Enemies that reach the right edge cost a life.",
		"",
		"Space: start   p: pause   q: quit",
	}
	top := (h - len(lines)) / 2
	for i, line := range lines {
		v.putString((w-len(line))/2, top+i, line, styleDefault)
	}
}

func (v *View) drawField(g *app.Game) {
	w, h := v.fieldSize()
	path := g.Path()
	for i := 0; i <= pathSamples; i++ {
		p := path.PointAt(float64(i) / pathSamples)
		cx, cy := v.ToCell(p.X, p.Y)
		if cx >= 0 && cx < w && cy >= 0 && cy < h {
			v.screen.SetContent(cx, cy, '.', nil, stylePath)
		}
	}
	for _, t := range g.ECS.Towers {
		v.putEntity(t.Position, 'T', styleTower)
	}
	for _, e := range g.ECS.Enemies {
		v.putEntity(e.Position, 'o', styleEnemy)
	}
	for _, p := range g.ECS.Projectiles {
		v.putEntity(p.Position, '*', styleProjectile)
	}
}

func (v *View) putEntity(pos component.Position, r rune, style tcell.Style) {
	w, h := v.fieldSize()
	cx, cy := v.ToCell(pos.X, pos.Y)
	if cx < 0 || cx >= w || cy < 0 || cy >= h {
		return
	}
	v.screen.SetContent(cx, cy, r, nil, style)
}

func (v *View) drawHUD(g *app.Game) {
	w, h := v.screen.Size()
	prog := g.Progression()
	line := fmt.Sprintf(" Level %d | Money $%d | Lives %d | Wave %d/%d | Tower $%d ",
		prog.Level, prog.Money, prog.Lives, prog.Wave, prog.TotalWaves, g.Rules.Tower.Cost)
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, h-1, ' ', nil, styleHUD)
	}
	v.putString(0, h-1, line, styleHUD)
}

func (v *View) drawBanner(text string, style tcell.Style) {
	w, h := v.fieldSize()
	v.putString((w-len(text))/2, h/2, text, style)
}

func (v *View) putString(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
