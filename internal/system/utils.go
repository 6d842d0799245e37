// internal/system/utils.go
package system

import "go-path-defense/internal/component"

// ApplyDamage наносит урон врагу и сообщает, уничтожен ли он.
// Здоровье не опускается ниже нуля.
func ApplyDamage(enemy *component.Enemy, damage int) (killed bool) {
	if damage < 0 {
		damage = 0
	}
	enemy.Health -= damage
	if !enemy.Alive() {
		enemy.Health = 0
		return true
	}
	return false
}

// stepToward сдвигает from к to не дальше чем на maxStep и не перескакивает цель
func stepToward(from, to component.Position, maxStep float64) component.Position {
	a, b := from.Point(), to.Point()
	dist := a.DistanceTo(b)
	if dist <= maxStep || dist == 0 {
		return to
	}
	return component.PositionOf(a.Lerp(b, maxStep/dist))
}

func distance(a, b component.Position) float64 {
	return a.Point().DistanceTo(b.Point())
}
