// internal/entity/ecs.go
package entity

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/types"
)

// ECS владеет живыми врагами, башнями и снарядами.
// Коллекции упорядочены по времени добавления; одна сущность живёт ровно в одной из них.
// Враги дополнительно проиндексированы по ID: снаряды держат только ID цели.
type ECS struct {
	NextID      types.EntityID
	Enemies     []*component.Enemy
	Towers      []*component.Tower
	Projectiles []*component.Projectile

	enemyIndex map[types.EntityID]*component.Enemy
}

func NewECS() *ECS {
	return &ECS{
		NextID:     1,
		enemyIndex: make(map[types.EntityID]*component.Enemy),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// AddEnemy добавляет врага; ID выдаётся, если не задан
func (ecs *ECS) AddEnemy(e *component.Enemy) *component.Enemy {
	if e.ID == 0 {
		e.ID = ecs.NewEntity()
	}
	ecs.Enemies = append(ecs.Enemies, e)
	ecs.enemyIndex[e.ID] = e
	return e
}

func (ecs *ECS) AddTower(t *component.Tower) *component.Tower {
	if t.ID == 0 {
		t.ID = ecs.NewEntity()
	}
	ecs.Towers = append(ecs.Towers, t)
	return t
}

func (ecs *ECS) AddProjectile(p *component.Projectile) *component.Projectile {
	if p.ID == 0 {
		p.ID = ecs.NewEntity()
	}
	ecs.Projectiles = append(ecs.Projectiles, p)
	return p
}

// Enemy ищет живого врага по ID. Удалённый враг не находится.
func (ecs *ECS) Enemy(id types.EntityID) (*component.Enemy, bool) {
	e, ok := ecs.enemyIndex[id]
	return e, ok
}

// RemoveEnemy убирает врага сразу из индекса и из коллекции
func (ecs *ECS) RemoveEnemy(id types.EntityID) bool {
	if _, ok := ecs.enemyIndex[id]; !ok {
		return false
	}
	ecs.RemoveEnemiesIf(func(e *component.Enemy) bool { return e.ID == id })
	return true
}

// RemoveEnemiesIf удаляет врагов, для которых pred вернул true, и возвращает их число.
// Порядок оставшихся сохраняется.
func (ecs *ECS) RemoveEnemiesIf(pred func(*component.Enemy) bool) int {
	kept := ecs.Enemies[:0]
	removed := 0
	for _, e := range ecs.Enemies {
		if pred(e) {
			delete(ecs.enemyIndex, e.ID)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	clearTail(ecs.Enemies, len(kept))
	ecs.Enemies = kept
	return removed
}

func (ecs *ECS) RemoveTowersIf(pred func(*component.Tower) bool) int {
	kept := ecs.Towers[:0]
	for _, t := range ecs.Towers {
		if !pred(t) {
			kept = append(kept, t)
		}
	}
	removed := len(ecs.Towers) - len(kept)
	clearTail(ecs.Towers, len(kept))
	ecs.Towers = kept
	return removed
}

func (ecs *ECS) RemoveProjectilesIf(pred func(*component.Projectile) bool) int {
	kept := ecs.Projectiles[:0]
	for _, p := range ecs.Projectiles {
		if !pred(p) {
			kept = append(kept, p)
		}
	}
	removed := len(ecs.Projectiles) - len(kept)
	clearTail(ecs.Projectiles, len(kept))
	ecs.Projectiles = kept
	return removed
}

// Clear удаляет все сущности. Счётчик ID не сбрасывается,
// чтобы старые ID не совпали с новыми.
func (ecs *ECS) Clear() {
	ecs.Enemies = nil
	ecs.Towers = nil
	ecs.Projectiles = nil
	ecs.enemyIndex = make(map[types.EntityID]*component.Enemy)
}

// clearTail обнуляет хвост после фильтрации на месте, чтобы не держать указатели
func clearTail[T any](s []*T, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}
