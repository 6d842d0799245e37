// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
)

// LoadRules reads a rules file. Fields missing from the file keep their default values.
func LoadRules(path string) (Rules, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	rules, err := ParseRules(file)
	if err != nil {
		return Rules{}, err
	}
	log.Printf("Loaded rules from %s", path)
	return rules, nil
}

// ParseRules разбирает JSON поверх правил по умолчанию и проверяет результат.
func ParseRules(data []byte) (Rules, error) {
	rules := DefaultRules()
	if err := json.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to unmarshal rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, fmt.Errorf("invalid rules: %w", err)
	}
	return rules, nil
}

// Validate проверяет, что из правил можно построить игру.
func (r Rules) Validate() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	check(r.Tower.Cost >= 0, "tower.cost must not be negative")
	check(r.Tower.Range > 0, "tower.range must be positive")
	check(r.Tower.FireRate >= 0, "tower.fire_rate_ms must not be negative")
	check(r.Tower.Damage > 0, "tower.damage must be positive")
	check(r.Tower.ProjectileSpeed > 0, "tower.projectile_speed must be positive")
	check(r.Tower.ProjectileHitRadius > 0, "tower.projectile_hit_radius must be positive")

	check(r.Enemy.Health > 0, "enemy.health must be positive")
	check(r.Enemy.Speed > 0, "enemy.speed must be positive")
	check(r.Enemy.Reward >= 0, "enemy.reward must not be negative")

	check(r.Waves.MinWaves >= 1, "waves.min_waves must be at least 1")
	check(r.Waves.MaxWaves >= r.Waves.MinWaves, "waves.max_waves must not be below min_waves")
	check(r.Waves.MinEnemies >= 1, "waves.min_enemies must be at least 1")
	check(r.Waves.MaxEnemies >= r.Waves.MinEnemies, "waves.max_enemies must not be below min_enemies")
	check(r.Waves.Stagger >= 0, "waves.stagger_ms must not be negative")
	check(r.Waves.Interval > 0, "waves.interval_ms must be positive")
	check(r.Waves.FirstWaveDelay >= 0, "waves.first_wave_delay_ms must not be negative")
	check(r.Waves.DifficultyGrowth > 0, "waves.difficulty_growth must be positive")

	check(r.Economy.StartingMoney >= 0, "economy.starting_money must not be negative")
	check(r.Economy.StartingLives > 0, "economy.starting_lives must be positive")
	check(r.Economy.LevelBonus >= 0, "economy.level_bonus must not be negative")

	check(r.Path.Width > 0, "path.width must be positive")
	check(r.Path.EntryX < r.Path.ExitX, "path.entry_x must be left of path.exit_x")
	check(r.Path.MaxY >= r.Path.MinY, "path.max_y must not be below min_y")
	check(r.Path.MinWaypoints >= 0, "path.min_waypoints must not be negative")
	check(r.Path.MaxWaypoints >= r.Path.MinWaypoints, "path.max_waypoints must not be below min_waypoints")
	check(r.Path.Jitter >= 0, "path.jitter must not be negative")
	check(r.Path.NominalLength > 0, "path.nominal_length must be positive")

	return errors.Join(errs...)
}
