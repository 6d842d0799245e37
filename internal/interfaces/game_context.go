// internal/interfaces/game_context.go
package interfaces

import (
	"go-path-defense/internal/component"
	"go-path-defense/pkg/polyline"
)

// GameContext — то, что системам нужно от игры.
// Через интерфейс, чтобы system не зависел от app.
type GameContext interface {
	Path() *polyline.Path
	Progression() *component.Progression
}
