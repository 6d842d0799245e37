// internal/app/tower_management.go
package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/event"
)

// PlaceTower ставит башню в точку (x, y).
// Если денег не хватает или уровень не идёт, запрос молча игнорируется:
// состояние не меняется, игроку ничего не сообщается.
func (g *Game) PlaceTower(x, y float64) bool {
	if !g.canPlaceTower() {
		return false
	}

	def := g.Rules.Tower
	fireRate := def.FireRate.Seconds()
	tower := g.ECS.AddTower(&component.Tower{
		Position: component.Position{X: x, Y: y},
		Range:    def.Range,
		FireRate: fireRate,
		LastShot: g.Clock.Now() - fireRate, // готова стрелять сразу
		Damage:   def.Damage,
		Render: component.Renderable{
			Color:  def.Visuals.Color,
			Radius: float32(def.Visuals.Radius),
		},
	})
	g.progression.Money -= def.Cost
	checkInvariants(&g.progression)

	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: tower.ID})
	g.EventDispatcher.Dispatch(event.Event{Type: event.StatsChanged})
	return true
}

// CanAffordTower — хватает ли денег на башню
func (g *Game) CanAffordTower() bool {
	return g.progression.Money >= g.Rules.Tower.Cost
}

func (g *Game) canPlaceTower() bool {
	return g.progression.Running() && g.CanAffordTower()
}
