//go:build debug

package app

import (
	"fmt"

	"go-path-defense/internal/component"
)

// checkInvariants падает, если деньги или жизни ушли в минус.
// Собирается только с -tags debug, чтобы ошибки логики всплывали сразу, а не маскировались.
func checkInvariants(p *component.Progression) {
	if p.Money < 0 {
		panic(fmt.Sprintf("invariant violated: money = %d", p.Money))
	}
	if p.Lives < 0 {
		panic(fmt.Sprintf("invariant violated: lives = %d", p.Lives))
	}
}
