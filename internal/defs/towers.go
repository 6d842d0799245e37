// internal/defs/towers.go
package defs

import "go-path-defense/internal/config"

// TowerDefinition holds all the static data for the tower.
// В игре один тип башни, поэтому определение одно.
type TowerDefinition struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Cost                int     `json:"cost"`
	Range               float64 `json:"range"`
	FireRate            Millis  `json:"fire_rate_ms"` // минимальный интервал между выстрелами
	Damage              int     `json:"damage"`
	ProjectileSpeed     float64 `json:"projectile_speed"`
	ProjectileHitRadius float64 `json:"projectile_hit_radius"`
	Visuals             Visuals `json:"visuals"`
}

// DefaultTower — башня из оригинальной игры.
func DefaultTower() TowerDefinition {
	return TowerDefinition{
		ID:                  "TOWER_BASIC",
		Name:                "Basic Tower",
		Cost:                50,
		Range:               100,
		FireRate:            500,
		Damage:              1,
		ProjectileSpeed:     400,
		ProjectileHitRadius: 5,
		Visuals:             Visuals{Color: config.TowerColor, Radius: config.TowerRadius},
	}
}
