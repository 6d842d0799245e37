package ai

import (
	"math"
	"testing"

	"go-path-defense/internal/app"
	"go-path-defense/internal/defs"
)

func TestBuilderSpendsMoney(t *testing.T) {
	g := app.NewGame(defs.DefaultRules(), 3)
	g.StartRun()
	b := NewBuilder(3)

	if placed := b.Act(g); placed != 2 {
		t.Errorf("placed = %d, want 2", placed)
	}
	if g.Progression().Money != 0 {
		t.Errorf("Money = %d, want 0", g.Progression().Money)
	}
	if placed := b.Act(g); placed != 0 {
		t.Errorf("placed without money: %d", placed)
	}
}

func TestBuilderIdleGame(t *testing.T) {
	g := app.NewGame(defs.DefaultRules(), 3)
	if placed := NewBuilder(1).Act(g); placed != 0 {
		t.Errorf("placed = %d in idle game", placed)
	}
}

func TestBuilderPlacesNearPath(t *testing.T) {
	g := app.NewGame(defs.DefaultRules(), 5)
	g.StartRun()
	b := NewBuilder(5)
	b.Act(g)

	for _, tower := range g.ECS.Towers {
		nearest := math.Inf(1)
		for i := 0; i <= 1000; i++ {
			p := g.Path().PointAt(float64(i) / 1000)
			nearest = math.Min(nearest, math.Hypot(p.X-tower.Position.X, p.Y-tower.Position.Y))
		}
		// башня должна доставать до пути
		if nearest >= tower.Range {
			t.Errorf("tower at %+v is %v away from the path", tower.Position, nearest)
		}
	}
}

func TestBuilderPlaysWholeLevel(t *testing.T) {
	g := app.NewGame(defs.DefaultRules(), 8)
	g.StartRun()
	b := NewBuilder(8)
	prog := g.Progression()

	for i := 0; i < 20000 && prog.Running(); i++ {
		b.Act(g)
		g.Update(0.02)
	}
	if prog.Running() {
		t.Fatalf("level still running: %+v", *prog)
	}
	if prog.Money < 0 || prog.Lives < 0 {
		t.Errorf("invariants broken: %+v", *prog)
	}
}
