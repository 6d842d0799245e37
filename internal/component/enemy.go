package component

import "go-path-defense/internal/types"

// Enemy представляет вражескую сущность, идущую по пути уровня.
type Enemy struct {
	ID       types.EntityID
	Position Position
	Speed    float64 // единиц в секунду, уже с множителем волны
	Progress float64 // доля пройденного пути, [0, 1]
	Health   int
	Reward   int // деньги за уничтожение
	Render   Renderable
}

// Alive — враг ещё не уничтожен
func (e *Enemy) Alive() bool {
	return e.Health > 0
}
