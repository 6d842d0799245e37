// internal/ui/hud.go
package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/pkg/render"
)

// HUD — строка состояния в левом верхнем углу
type HUD struct {
	X, Y float64
}

func NewHUD() *HUD {
	return &HUD{X: config.HUDX, Y: config.HUDY}
}

// Lines возвращает текст HUD построчно
func (h *HUD) Lines(prog *component.Progression, towerCost int) []string {
	return []string{
		fmt.Sprintf("Level: %d | Money: $%d | Lives: %d | Wave: %d/%d", prog.Level, prog.Money, prog.Lives, prog.Wave, prog.TotalWaves),
		fmt.Sprintf("Click to place towers ($%d each)", towerCost),
	}
}

func (h *HUD) Draw(screen *ebiten.Image, prog *component.Progression, towerCost int) {
	lines := h.Lines(prog, towerCost)
	const lineHeight = 16

	width := 0.0
	for _, l := range lines {
		w, _ := render.MeasureText(l, config.TextScale)
		if w > width {
			width = w
		}
	}
	height := float64(len(lines) * lineHeight)
	vector.DrawFilledRect(screen, float32(h.X), float32(h.Y),
		float32(width+2*config.HUDPadding), float32(height+2*config.HUDPadding-4),
		config.HUDBackgroundColor, false)

	for i, l := range lines {
		render.DrawText(screen, l, h.X+config.HUDPadding, h.Y+config.HUDPadding+float64(i*lineHeight), config.TextScale, config.TextLightColor)
	}
}
