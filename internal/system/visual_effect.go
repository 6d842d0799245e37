// internal/system/visual_effect.go
package system

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
)

const (
	burstDuration  = 0.25 // секунды
	burstMaxRadius = 18.0
)

// VisualEffectSystem управляет визуальными эффектами, такими как вспышки при уничтожении.
// Эффекты живут в реальном времени кадра, а не на часах симуляции.
type VisualEffectSystem struct {
	bursts []*component.Burst
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem() *VisualEffectSystem {
	return &VisualEffectSystem{}
}

// OnEvent: EnemyKilled рождает вспышку, LevelStarted очищает всё
func (s *VisualEffectSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		if enemy, ok := e.Data.(*component.Enemy); ok {
			s.bursts = append(s.bursts, &component.Burst{
				Position:  enemy.Position,
				Color:     enemy.Render.Color,
				Duration:  burstDuration,
				MaxRadius: burstMaxRadius,
			})
		}
	case event.LevelStarted:
		s.Reset()
	}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	alive := s.bursts[:0]
	for _, b := range s.bursts {
		b.Timer += deltaTime
		if !b.Done() {
			alive = append(alive, b)
		}
	}
	clearTail(s.bursts, len(alive))
	s.bursts = alive
}

// Bursts — активные вспышки
func (s *VisualEffectSystem) Bursts() []*component.Burst {
	return s.bursts
}

func (s *VisualEffectSystem) Reset() {
	s.bursts = nil
}

func clearTail[T any](s []*T, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}
