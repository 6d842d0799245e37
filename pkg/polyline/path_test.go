package polyline

import (
	"math"
	"testing"
)

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestPointAtByArcLength(t *testing.T) {
	// Два отрезка разной длины: 100 по X, затем 300 по Y
	p := New([]Point{{0, 0}, {100, 0}, {100, 300}})
	if p.Length() != 400 {
		t.Fatalf("Length() = %v, want 400", p.Length())
	}

	tests := []struct {
		t    float64
		want Point
	}{
		{-0.5, Point{0, 0}},
		{0, Point{0, 0}},
		{0.125, Point{50, 0}},
		{0.25, Point{100, 0}},
		{0.5, Point{100, 100}},
		{1, Point{100, 300}},
		{1.7, Point{100, 300}},
	}
	for _, tt := range tests {
		if got := p.PointAt(tt.t); !near(got, tt.want) {
			t.Errorf("PointAt(%v) = %+v, want %+v", tt.t, got, tt.want)
		}
	}
}

func TestPathKeepsOrder(t *testing.T) {
	// X не монотонен: путь обязан идти в порядке точек, а не по сортировке
	pts := []Point{{0, 0}, {100, 0}, {50, 0}}
	p := New(pts)
	if got := p.PointAt(1); !near(got, Point{50, 0}) {
		t.Errorf("PointAt(1) = %+v, want {50 0}", got)
	}
	if got := p.PointAt(2.0 / 3.0); !near(got, Point{100, 0}) {
		t.Errorf("PointAt(2/3) = %+v, want {100 0}", got)
	}
	if got := p.PointAt(0.9); !near(got, Point{65, 0}) {
		t.Errorf("PointAt(0.9) = %+v, want {65 0}", got)
	}

	pts[0] = Point{999, 999}
	if p.Start() != (Point{0, 0}) {
		t.Error("New must copy its input")
	}
}

func TestDegeneratePaths(t *testing.T) {
	var empty Path
	if got := empty.PointAt(0.5); got != (Point{}) {
		t.Errorf("empty PointAt = %+v, want zero", got)
	}
	single := New([]Point{{3, 4}})
	if got := single.PointAt(0.5); got != (Point{3, 4}) {
		t.Errorf("single PointAt = %+v, want {3 4}", got)
	}
	dup := New([]Point{{0, 0}, {0, 0}, {10, 0}})
	if got := dup.PointAt(0.5); !near(got, Point{5, 0}) {
		t.Errorf("dup PointAt(0.5) = %+v, want {5 0}", got)
	}
	if dup.Len() != 3 || dup.End() != (Point{10, 0}) {
		t.Errorf("Len/End = %d/%+v", dup.Len(), dup.End())
	}
}
