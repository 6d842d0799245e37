// pkg/polyline/path.go
package polyline

import "sort"

// Path — неизменяемая ломаная. Точки проходятся в порядке добавления,
// сортировки по X нет.
type Path struct {
	points []Point
	// cumulative[i] — длина ломаной от начала до points[i]
	cumulative []float64
}

// New строит путь из точек. Срез копируется, поэтому вызывающий может его менять.
func New(points []Point) *Path {
	p := &Path{
		points:     make([]Point, len(points)),
		cumulative: make([]float64, len(points)),
	}
	copy(p.points, points)
	for i := 1; i < len(p.points); i++ {
		p.cumulative[i] = p.cumulative[i-1] + p.points[i-1].DistanceTo(p.points[i])
	}
	return p
}

// Points возвращает копию вершин пути
func (p *Path) Points() []Point {
	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

// Len — количество вершин
func (p *Path) Len() int {
	return len(p.points)
}

// Start — первая вершина
func (p *Path) Start() Point {
	if len(p.points) == 0 {
		return Point{}
	}
	return p.points[0]
}

// End — последняя вершина
func (p *Path) End() Point {
	if len(p.points) == 0 {
		return Point{}
	}
	return p.points[len(p.points)-1]
}

// Length — полная длина ломаной
func (p *Path) Length() float64 {
	if len(p.cumulative) == 0 {
		return 0
	}
	return p.cumulative[len(p.cumulative)-1]
}

// PointAt переводит прогресс t из [0, 1] в точку на пути.
// Прогресс пропорционален пройденной длине, а не номеру отрезка.
// Значения вне [0, 1] прижимаются к концам.
func (p *Path) PointAt(t float64) Point {
	switch {
	case len(p.points) == 0:
		return Point{}
	case len(p.points) == 1 || t <= 0:
		return p.points[0]
	case t >= 1:
		return p.points[len(p.points)-1]
	}

	target := t * p.Length()
	// первый отрезок, конец которого не ближе target
	lo := sort.SearchFloat64s(p.cumulative, target)
	if lo < 1 {
		lo = 1
	}
	if lo > len(p.cumulative)-1 {
		lo = len(p.cumulative) - 1
	}

	segStart, segEnd := p.cumulative[lo-1], p.cumulative[lo]
	segLen := segEnd - segStart
	if segLen == 0 {
		return p.points[lo]
	}
	return p.points[lo-1].Lerp(p.points[lo], (target-segStart)/segLen)
}
