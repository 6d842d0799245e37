// pkg/render/text.go
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Face — растровый шрифт без внешних файлов
var Face font.Face = basicfont.Face7x13

// MeasureText возвращает размер строки при масштабе scale.
func MeasureText(s string, scale float64) (float64, float64) {
	b := text.BoundString(Face, s)
	return float64(b.Dx()) * scale, float64(b.Dy()) * scale
}

// DrawText рисует строку, (x, y) — левый верхний угол.
func DrawText(dst *ebiten.Image, s string, x, y, scale float64, clr color.Color) {
	b := text.BoundString(Face, s)
	op := &ebiten.DrawImageOptions{}
	// text рисует от базовой линии, сдвигаем вниз на высоту над ней
	op.GeoM.Translate(0, float64(-b.Min.Y))
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.DrawWithOptions(dst, s, Face, op)
}

// DrawTextCentered рисует строку с центром в (cx, cy).
func DrawTextCentered(dst *ebiten.Image, s string, cx, cy, scale float64, clr color.Color) {
	w, h := MeasureText(s, scale)
	DrawText(dst, s, cx-w/2, cy-h/2, scale, clr)
}
