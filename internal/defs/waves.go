// internal/defs/waves.go
package defs

import "math"

// WaveRules описывает, как формируются волны и уровни.
type WaveRules struct {
	MinWaves         int     `json:"min_waves"` // волн на уровень, включительно
	MaxWaves         int     `json:"max_waves"`
	MinEnemies       int     `json:"min_enemies"` // врагов в волне, включительно
	MaxEnemies       int     `json:"max_enemies"`
	Stagger          Millis  `json:"stagger_ms"`          // задержка между появлением врагов
	Interval         Millis  `json:"interval_ms"`         // от начала волны до следующей
	FirstWaveDelay   Millis  `json:"first_wave_delay_ms"` // от начала уровня до первой волны
	DifficultyGrowth float64 `json:"difficulty_growth"`   // множитель скорости за волну
}

// DefaultWaves — темп волн из оригинальной игры.
func DefaultWaves() WaveRules {
	return WaveRules{
		MinWaves:         3,
		MaxWaves:         6,
		MinEnemies:       8,
		MaxEnemies:       15,
		Stagger:          200,
		Interval:         8000,
		FirstWaveDelay:   1000,
		DifficultyGrowth: 1.15,
	}
}

// Multiplier возвращает множитель сложности для волны с номером waveNumber (с единицы).
func (r WaveRules) Multiplier(waveNumber int) float64 {
	return math.Pow(r.DifficultyGrowth, float64(waveNumber-1))
}
