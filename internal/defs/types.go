// internal/defs/types.go
package defs

import "image/color"

// Millis — длительность в миллисекундах. В таком виде длительности
// хранятся в JSON-файлах правил.
type Millis int

// Seconds возвращает длительность в секундах симуляции.
func (m Millis) Seconds() float64 {
	return float64(m) / 1000
}

// Visuals contains parameters for rendering an entity.
type Visuals struct {
	Color  color.RGBA `json:"color"`
	Radius float64    `json:"radius"`
}
