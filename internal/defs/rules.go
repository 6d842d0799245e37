// internal/defs/rules.go
package defs

// EconomyRules — стартовые ресурсы и награды.
type EconomyRules struct {
	StartingMoney int `json:"starting_money"`
	StartingLives int `json:"starting_lives"`
	LevelBonus    int `json:"level_bonus"` // начисляется при переходе на следующий уровень
}

// PathRules задаёт форму случайного пути.
type PathRules struct {
	Width         float64 `json:"width"`   // ширина игрового поля
	EntryX        float64 `json:"entry_x"` // за левым краем
	ExitX         float64 `json:"exit_x"`  // за правым краем
	MinY          int     `json:"min_y"`
	MaxY          int     `json:"max_y"`
	MinWaypoints  int     `json:"min_waypoints"`
	MaxWaypoints  int     `json:"max_waypoints"`
	Jitter        int     `json:"jitter"`
	NominalLength float64 `json:"nominal_length"` // делитель прогресса: путь считается длиной в столько единиц
}

// Rules — все игровые правила вместе.
type Rules struct {
	Tower   TowerDefinition `json:"tower"`
	Enemy   EnemyDefinition `json:"enemy"`
	Waves   WaveRules       `json:"waves"`
	Economy EconomyRules    `json:"economy"`
	Path    PathRules       `json:"path"`
}

// DefaultRules возвращает правила оригинальной игры.
func DefaultRules() Rules {
	return Rules{
		Tower: DefaultTower(),
		Enemy: DefaultEnemy(),
		Waves: DefaultWaves(),
		Economy: EconomyRules{
			StartingMoney: 100,
			StartingLives: 20,
			LevelBonus:    150,
		},
		Path: PathRules{
			Width:         800,
			EntryX:        -50,
			ExitX:         850,
			MinY:          50,
			MaxY:          550,
			MinWaypoints:  4,
			MaxWaypoints:  5,
			Jitter:        30,
			NominalLength: 300,
		},
	}
}
