// internal/component/visual.go
package component

import (
	"image/color"

	"go-path-defense/internal/utils"
)

// Burst — короткая расходящаяся вспышка на месте уничтоженного врага.
// Только для отрисовки, на симуляцию не влияет.
type Burst struct {
	Position  Position
	Color     color.RGBA
	Timer     float64 // Сколько времени эффект уже активен
	Duration  float64 // Общая продолжительность эффекта
	MaxRadius float64
}

// Progress — доля прошедшего времени, [0, 1]
func (b *Burst) Progress() float64 {
	if b.Duration <= 0 {
		return 1
	}
	return utils.Clamp(b.Timer/b.Duration, 0, 1)
}

// Done — эффект закончился
func (b *Burst) Done() bool {
	return b.Timer >= b.Duration
}
