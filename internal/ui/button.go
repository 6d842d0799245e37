// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-path-defense/pkg/render"
)

// Button представляет собой кликабельную кнопку в UI.
// Координаты задают центр кнопки.
type Button struct {
	CX, CY    float32
	W, H      float32
	Text      string
	TextScale float64
	TextColor color.RGBA
	BgColor   color.RGBA
}

// NewButton создает новую кнопку с центром в (cx, cy).
func NewButton(cx, cy, w, h float32, text string, bg, fg color.RGBA) *Button {
	return &Button{
		CX:        cx,
		CY:        cy,
		W:         w,
		H:         h,
		Text:      text,
		TextScale: 2,
		TextColor: fg,
		BgColor:   bg,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.CX-b.W/2 && fx <= b.CX+b.W/2 && fy >= b.CY-b.H/2 && fy <= b.CY+b.H/2
}

// Draw отрисовывает кнопку. scale увеличивает кнопку вокруг центра (пульсация).
func (b *Button) Draw(screen *ebiten.Image, hovered bool, scale float32) {
	bg := b.BgColor
	if hovered {
		bg = render.DarkenColor(bg)
	}
	w, h := b.W*scale, b.H*scale
	vector.DrawFilledRect(screen, b.CX-w/2, b.CY-h/2, w, h, bg, true)
	render.DrawTextCentered(screen, b.Text, float64(b.CX), float64(b.CY), b.TextScale*float64(scale), b.TextColor)
}
