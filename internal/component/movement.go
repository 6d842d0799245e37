// component/movement.go
package component

import "go-path-defense/pkg/polyline"

// Position — компонент позиции
type Position struct {
	X, Y float64
}

// Point переводит позицию в точку геометрии пути
func (p Position) Point() polyline.Point {
	return polyline.Point{X: p.X, Y: p.Y}
}

// PositionOf — обратное преобразование
func PositionOf(pt polyline.Point) Position {
	return Position{X: pt.X, Y: pt.Y}
}
