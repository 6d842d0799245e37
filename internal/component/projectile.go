// internal/component/projectile.go
package component

import "go-path-defense/internal/types"

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID        types.EntityID
	Position  Position
	TargetID  types.EntityID // слабая ссылка: цель ищется в хранилище каждый тик
	Speed     float64
	Damage    int
	HitRadius float64 // расстояние, на котором снаряд считается попавшим
	Render    Renderable
}
