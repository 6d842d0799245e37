package system

import (
	"math"
	"testing"

	"go-path-defense/internal/component"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
)

func TestMovementAdvancesProgress(t *testing.T) {
	ecs := entity.NewECS()
	game := newTestGame()
	s := NewMovementSystem(ecs, game, event.NewDispatcher(), 300)
	e := ecs.AddEnemy(&component.Enemy{Speed: 50, Health: 1})

	s.Update(0.3)

	if math.Abs(e.Progress-0.05) > 1e-9 {
		t.Errorf("Progress = %v, want 0.05", e.Progress)
	}
	// путь длиной 300 по оси X
	if math.Abs(e.Position.X-15) > 1e-9 || e.Position.Y != 0 {
		t.Errorf("Position = %+v, want {15 0}", e.Position)
	}
}

func TestMovementEscapes(t *testing.T) {
	tests := []struct {
		name      string
		lives     int
		progress  float64
		wantLives int
		wantLeft  int
	}{
		{"reaches end", 20, 0.99, 19, 0},
		{"still walking", 20, 0.5, 20, 1},
		{"no lives left", 0, 0.99, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ecs := entity.NewECS()
			game := newTestGame()
			game.prog.Lives = tt.lives
			d := event.NewDispatcher()
			rec := recorder{}
			rec.listen(d, event.EnemyEscaped)
			s := NewMovementSystem(ecs, game, d, 300)
			ecs.AddEnemy(&component.Enemy{Speed: 50, Progress: tt.progress, Health: 1})

			s.Update(0.3)

			if game.prog.Lives != tt.wantLives {
				t.Errorf("Lives = %d, want %d", game.prog.Lives, tt.wantLives)
			}
			if len(ecs.Enemies) != tt.wantLeft {
				t.Errorf("enemies = %d, want %d", len(ecs.Enemies), tt.wantLeft)
			}
			if rec[event.EnemyEscaped] != 1-tt.wantLeft {
				t.Errorf("EnemyEscaped events = %d", rec[event.EnemyEscaped])
			}
		})
	}
}

func TestMovementEscapedEnemyUnreachable(t *testing.T) {
	ecs := entity.NewECS()
	s := NewMovementSystem(ecs, newTestGame(), event.NewDispatcher(), 300)
	e := ecs.AddEnemy(&component.Enemy{Speed: 1000, Health: 1})

	s.Update(1)

	if _, ok := ecs.Enemy(e.ID); ok {
		t.Error("escaped enemy still in the index")
	}
}
