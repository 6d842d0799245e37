// internal/defs/enemies.go
package defs

import "go-path-defense/internal/config"

// EnemyDefinition holds all the static data for the enemy.
type EnemyDefinition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Health  int     `json:"health"`
	Speed   float64 `json:"speed"`  // единиц в секунду до множителя волны
	Reward  int     `json:"reward"` // деньги за уничтожение
	Visuals Visuals `json:"visuals"`
}

// DefaultEnemy — все враги убиваются с одного попадания.
func DefaultEnemy() EnemyDefinition {
	return EnemyDefinition{
		ID:      "ENEMY_BASIC",
		Name:    "Runner",
		Health:  1,
		Speed:   50,
		Reward:  10,
		Visuals: Visuals{Color: config.EnemyColor, Radius: config.EnemyRadius},
	}
}
