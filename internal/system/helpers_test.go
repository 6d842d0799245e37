package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
	"go-path-defense/pkg/polyline"
)

// testGame — минимальный GameContext для тестов систем
type testGame struct {
	path *polyline.Path
	prog component.Progression
}

func newTestGame() *testGame {
	return &testGame{
		path: polyline.New([]polyline.Point{{X: 0, Y: 0}, {X: 300, Y: 0}}),
		prog: component.Progression{
			Money:      100,
			Lives:      20,
			Level:      1,
			Wave:       1,
			TotalWaves: 3,
			Phase:      component.PhaseSpawning,
		},
	}
}

func (g *testGame) Path() *polyline.Path                { return g.path }
func (g *testGame) Progression() *component.Progression { return &g.prog }

// recorder считает события по типам
type recorder map[event.EventType]int

func (r recorder) listen(d *event.Dispatcher, types ...event.EventType) {
	d.SubscribeAll(event.ListenerFunc(func(e event.Event) { r[e.Type]++ }), types...)
}
