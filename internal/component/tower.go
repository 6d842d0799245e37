// component/tower.go
package component

import "go-path-defense/internal/types"

// Tower — башня. Цель не хранит: каждый тик ищет врагов в радиусе заново.
type Tower struct {
	ID       types.EntityID
	Position Position
	Range    float64 // радиус стрельбы
	FireRate float64 // минимальный интервал между выстрелами, секунды
	LastShot float64 // время последнего выстрела по часам симуляции
	Damage   int
	Render   Renderable
}

// Ready сообщает, прошёл ли кулдаун к моменту now
func (t *Tower) Ready(now float64) bool {
	return now-t.LastShot >= t.FireRate
}

// InRange — враг строго ближе радиуса
func (t *Tower) InRange(p Position) bool {
	dx := p.X - t.Position.X
	dy := p.Y - t.Position.Y
	return dx*dx+dy*dy < t.Range*t.Range
}
