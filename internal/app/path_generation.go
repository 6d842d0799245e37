// internal/app/path_generation.go
package app

import (
	"go-path-defense/internal/defs"
	"go-path-defense/internal/utils"
	"go-path-defense/pkg/polyline"
)

// GeneratePath строит случайный путь уровня: вход за левым краем, 4-5 точек
// примерно равномерно по ширине поля с разбросом, выход за правым краем.
// Разброс может нарушить монотонность X; точки всё равно проходятся в порядке генерации.
func GeneratePath(rng *utils.PRNGService, rules defs.PathRules) *polyline.Path {
	randomY := func() float64 {
		return float64(rng.Between(rules.MinY, rules.MaxY))
	}

	points := []polyline.Point{{X: rules.EntryX, Y: randomY()}}

	numWaypoints := rng.Between(rules.MinWaypoints, rules.MaxWaypoints)
	xStep := rules.Width / float64(numWaypoints+1)
	for i := 1; i <= numWaypoints; i++ {
		x := xStep*float64(i) + float64(rng.Between(-rules.Jitter, rules.Jitter))
		points = append(points, polyline.Point{X: x, Y: randomY()})
	}

	points = append(points, polyline.Point{X: rules.ExitX, Y: randomY()})
	return polyline.New(points)
}
