// internal/system/render.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/entity"
	"go-path-defense/pkg/polyline"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem рисует поле и сущности
type RenderSystem struct {
	ecs        *entity.ECS
	background *ebiten.Image // сетка и путь, перерисовываются только при смене пути
	bgPath     *polyline.Path
}

func NewRenderSystem(ecs *entity.ECS) *RenderSystem {
	return &RenderSystem{ecs: ecs}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, path *polyline.Path) {
	if s.background == nil || s.bgPath != path {
		s.renderBackground(path)
	}
	screen.DrawImage(s.background, nil)

	// Башни вместе с радиусом атаки
	for _, tower := range s.ecs.Towers {
		x, y := float32(tower.Position.X), float32(tower.Position.Y)
		vector.StrokeCircle(screen, x, y, float32(tower.Range), config.RangeStrokeWidth, config.RangeColor, true)
		drawRenderable(screen, tower.Position, tower.Render)
	}
	for _, enemy := range s.ecs.Enemies {
		drawRenderable(screen, enemy.Position, enemy.Render)
	}
	for _, proj := range s.ecs.Projectiles {
		drawRenderable(screen, proj.Position, proj.Render)
	}
}

func (s *RenderSystem) renderBackground(path *polyline.Path) {
	if s.background == nil {
		s.background = ebiten.NewImage(config.ScreenWidth, config.ScreenHeight)
	}
	s.bgPath = path
	bg := s.background
	bg.Fill(config.BackgroundColor)

	for x := 0; x < config.ScreenWidth; x += config.GridCellSize {
		vector.StrokeLine(bg, float32(x), 0, float32(x), config.ScreenHeight, 1, config.GridColor, false)
	}
	for y := 0; y < config.ScreenHeight; y += config.GridCellSize {
		vector.StrokeLine(bg, 0, float32(y), config.ScreenWidth, float32(y), 1, config.GridColor, false)
	}

	if path == nil {
		return
	}
	points := path.Points()
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		vector.StrokeLine(bg, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), config.PathStrokeWidth, config.PathColor, true)
	}
}

func drawRenderable(screen *ebiten.Image, pos component.Position, r component.Renderable) {
	vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), r.Radius, r.Color, true)
}

// DrawBursts рисует вспышки: кольцо растёт и гаснет
func (s *RenderSystem) DrawBursts(screen *ebiten.Image, bursts []*component.Burst) {
	for _, b := range bursts {
		p := b.Progress()
		c := b.Color
		c.A = uint8(float64(c.A) * (1 - p))
		vector.StrokeCircle(screen, float32(b.Position.X), float32(b.Position.Y), float32(b.MaxRadius*p)+config.EnemyRadius/2, 2, c, true)
	}
}
