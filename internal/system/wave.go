// internal/system/wave.go
package system

import (
	"log"

	"go-path-defense/internal/component"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/entity"
	"go-path-defense/internal/event"
	"go-path-defense/internal/interfaces"
	"go-path-defense/internal/utils"
)

// WaveSystem заполняет хранилище врагами текущей волны и планирует следующую.
type WaveSystem struct {
	ecs             *entity.ECS
	clock           *Clock
	rng             *utils.PRNGService
	waves           defs.WaveRules
	enemy           defs.EnemyDefinition
	game            interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(ecs *entity.ECS, clock *Clock, rng *utils.PRNGService, rules defs.Rules, game interfaces.GameContext, eventDispatcher *event.Dispatcher) *WaveSystem {
	return &WaveSystem{
		ecs:             ecs,
		clock:           clock,
		rng:             rng,
		waves:           rules.Waves,
		enemy:           rules.Enemy,
		game:            game,
		eventDispatcher: eventDispatcher,
	}
}

// ScheduleFirstWave запускает первую волну уровня после стартовой задержки
func (s *WaveSystem) ScheduleFirstWave() {
	s.clock.After(s.waves.FirstWaveDelay.Seconds(), func() {
		s.StartWave(s.game.Progression().Wave)
	})
}

// StartWave выпускает волну waveNumber и возвращает число запланированных врагов.
// Номер больше TotalWaves — все волны уже выпущены, ничего не делаем.
func (s *WaveSystem) StartWave(waveNumber int) int {
	prog := s.game.Progression()
	if waveNumber > prog.TotalWaves {
		return 0
	}
	switch prog.Phase {
	case component.PhaseIdle, component.PhaseLevelComplete, component.PhaseGameOver:
		return 0
	}

	prog.Wave = waveNumber
	prog.Phase = component.PhaseWaveActive

	multiplier := s.waves.Multiplier(waveNumber)
	count := s.rng.Between(s.waves.MinEnemies, s.waves.MaxEnemies)
	stagger := s.waves.Stagger.Seconds()
	for i := 0; i < count; i++ {
		s.clock.After(float64(i)*stagger, func() {
			s.spawnEnemy(multiplier)
		})
	}

	// Следующая волна — через интервал от начала текущей.
	// После последней волны ничего не планируем: пустая очередь таймеров
	// означает, что все враги уровня уже выпущены.
	if waveNumber < prog.TotalWaves {
		s.clock.After(s.waves.Interval.Seconds(), func() {
			s.StartWave(waveNumber + 1)
		})
	}

	log.Printf("Wave %d/%d started: %d enemies, speed x%.2f", waveNumber, prog.TotalWaves, count, multiplier)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: waveNumber})
	s.eventDispatcher.Dispatch(event.Event{Type: event.StatsChanged})
	return count
}

func (s *WaveSystem) spawnEnemy(multiplier float64) {
	start := s.game.Path().Start()
	e := s.ecs.AddEnemy(&component.Enemy{
		Position: component.PositionOf(start),
		Speed:    s.enemy.Speed * multiplier,
		Progress: 0,
		Health:   s.enemy.Health,
		Reward:   s.enemy.Reward,
		Render: component.Renderable{
			Color:  s.enemy.Visuals.Color,
			Radius: float32(s.enemy.Visuals.Radius),
		},
	})
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemySpawned, Data: e.ID})
}
