package component

// Progression хранит экономику и счётчики забега.
// Им владеет ядро симуляции; глобального состояния нет.
type Progression struct {
	Money      int
	Lives      int
	Level      int
	Wave       int
	TotalWaves int
	Phase      Phase
	Paused     bool // ручная пауза игрока
}

// WaveActive — идут волны текущего уровня
func (p *Progression) WaveActive() bool {
	return p.Phase == PhaseWaveActive
}

// LevelCompleteShown — защёлка "уровень пройден" сработала
func (p *Progression) LevelCompleteShown() bool {
	return p.Phase == PhaseLevelComplete
}

// GameOverShown — защёлка "игра окончена" сработала
func (p *Progression) GameOverShown() bool {
	return p.Phase == PhaseGameOver
}

// LevelPaused — симуляция заморожена: окно завершения уровня или ручная пауза
func (p *Progression) LevelPaused() bool {
	return p.Phase == PhaseLevelComplete || p.Paused
}

// Running — тик должен менять состояние
func (p *Progression) Running() bool {
	switch p.Phase {
	case PhaseSpawning, PhaseWaveActive:
		return !p.Paused
	default:
		return false
	}
}
