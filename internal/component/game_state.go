package component

// Phase — фаза жизненного цикла уровня.
// LevelComplete и GameOver работают как защёлки: переход в них случается один раз.
type Phase int

const (
	PhaseIdle          Phase = iota // забег не идёт (меню)
	PhaseSpawning                   // уровень начат, ждём первую волну
	PhaseWaveActive                 // волны выпускаются или враги ещё на поле
	PhaseLevelComplete              // все волны пройдены, ждём подтверждения игрока
	PhaseGameOver                   // жизни кончились
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseSpawning:
		return "Spawning"
	case PhaseWaveActive:
		return "WaveActive"
	case PhaseLevelComplete:
		return "LevelComplete"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}
