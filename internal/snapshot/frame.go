// internal/snapshot/frame.go
package snapshot

import (
	"go-path-defense/internal/app"
	"go-path-defense/internal/types"
)

// Frame — снимок состояния симуляции на один тик.
type Frame struct {
	RunID       string       `json:"run_id" msgpack:"run_id"`
	Tick        int          `json:"tick" msgpack:"tick"`
	Time        float64      `json:"time" msgpack:"time"`
	Phase       string       `json:"phase" msgpack:"phase"`
	Paused      bool         `json:"paused,omitempty" msgpack:"paused,omitempty"`
	Money       int          `json:"money" msgpack:"money"`
	Lives       int          `json:"lives" msgpack:"lives"`
	Level       int          `json:"level" msgpack:"level"`
	Wave        int          `json:"wave" msgpack:"wave"`
	TotalWaves  int          `json:"total_waves" msgpack:"total_waves"`
	Pending     int          `json:"pending_timers" msgpack:"pending_timers"`
	Path        [][2]float64 `json:"path" msgpack:"path"`
	Enemies     []Enemy      `json:"enemies" msgpack:"enemies"`
	Towers      []Tower      `json:"towers" msgpack:"towers"`
	Projectiles []Projectile `json:"projectiles" msgpack:"projectiles"`
}

type Enemy struct {
	ID       types.EntityID `json:"id" msgpack:"id"`
	X        float64        `json:"x" msgpack:"x"`
	Y        float64        `json:"y" msgpack:"y"`
	Progress float64        `json:"progress" msgpack:"progress"`
	Speed    float64        `json:"speed" msgpack:"speed"`
	Health   int            `json:"health" msgpack:"health"`
}

type Tower struct {
	ID       types.EntityID `json:"id" msgpack:"id"`
	X        float64        `json:"x" msgpack:"x"`
	Y        float64        `json:"y" msgpack:"y"`
	Range    float64        `json:"range" msgpack:"range"`
	LastShot float64        `json:"last_shot" msgpack:"last_shot"`
}

type Projectile struct {
	ID       types.EntityID `json:"id" msgpack:"id"`
	X        float64        `json:"x" msgpack:"x"`
	Y        float64        `json:"y" msgpack:"y"`
	TargetID types.EntityID `json:"target_id" msgpack:"target_id"`
}

// Capture снимает состояние игры. Снимок не разделяет память с игрой.
func Capture(g *app.Game, tick int) Frame {
	prog := g.Progression()
	f := Frame{
		RunID:       g.RunID.String(),
		Tick:        tick,
		Time:        g.Now(),
		Phase:       prog.Phase.String(),
		Paused:      prog.Paused,
		Money:       prog.Money,
		Lives:       prog.Lives,
		Level:       prog.Level,
		Wave:        prog.Wave,
		TotalWaves:  prog.TotalWaves,
		Pending:     g.Clock.Pending(),
		Enemies:     make([]Enemy, 0, len(g.ECS.Enemies)),
		Towers:      make([]Tower, 0, len(g.ECS.Towers)),
		Projectiles: make([]Projectile, 0, len(g.ECS.Projectiles)),
	}

	for _, pt := range g.Path().Points() {
		f.Path = append(f.Path, [2]float64{pt.X, pt.Y})
	}
	for _, e := range g.ECS.Enemies {
		f.Enemies = append(f.Enemies, Enemy{
			ID: e.ID, X: e.Position.X, Y: e.Position.Y,
			Progress: e.Progress, Speed: e.Speed, Health: e.Health,
		})
	}
	for _, t := range g.ECS.Towers {
		f.Towers = append(f.Towers, Tower{
			ID: t.ID, X: t.Position.X, Y: t.Position.Y,
			Range: t.Range, LastShot: t.LastShot,
		})
	}
	for _, p := range g.ECS.Projectiles {
		f.Projectiles = append(f.Projectiles, Projectile{
			ID: p.ID, X: p.Position.X, Y: p.Position.Y, TargetID: p.TargetID,
		})
	}
	return f
}
