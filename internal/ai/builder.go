// internal/ai/builder.go
package ai

import (
	"math"

	"go-path-defense/internal/app"
	"go-path-defense/internal/utils"
)

// Builder — простой автоигрок: ставит башни рядом со случайными точками пути,
// пока хватает денег. Нужен для headless-прогонов и демо.
type Builder struct {
	rng       *utils.PRNGService
	minOffset int // расстояние от пути, чтобы башня не стояла прямо на дороге
	maxOffset int
}

func NewBuilder(seed int64) *Builder {
	return &Builder{
		rng:       utils.NewPRNGService(seed),
		minOffset: 20,
		maxOffset: 60,
	}
}

// Act ставит столько башен, сколько позволяют деньги, и возвращает их число.
func (b *Builder) Act(g *app.Game) int {
	placed := 0
	for g.Progression().Running() && g.CanAffordTower() {
		x, y := b.pickSpot(g)
		if !g.PlaceTower(x, y) {
			break
		}
		placed++
	}
	return placed
}

// pickSpot выбирает точку пути и сдвигает её по нормали к пути
func (b *Builder) pickSpot(g *app.Game) (float64, float64) {
	path := g.Path()
	t := 0.05 + 0.9*b.rng.Float64()
	p := path.PointAt(t)
	ahead := path.PointAt(math.Min(t+0.01, 1))

	dx, dy := ahead.X-p.X, ahead.Y-p.Y
	length := utils.Distance(p.X, p.Y, ahead.X, ahead.Y)
	if length == 0 {
		dx, dy, length = 1, 0, 1
	}
	offset := float64(b.rng.Between(b.minOffset, b.maxOffset))
	if b.rng.Intn(2) == 0 {
		offset = -offset
	}
	// нормаль (-dy, dx)
	return p.X - dy/length*offset, p.Y + dx/length*offset
}
