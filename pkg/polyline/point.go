// pkg/polyline/point.go
package polyline

import "math"

// Point — точка на плоскости в игровых единицах
type Point struct {
	X, Y float64
}

// DistanceTo возвращает евклидово расстояние до q
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Lerp возвращает точку на отрезке [p, q] с параметром t
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}
