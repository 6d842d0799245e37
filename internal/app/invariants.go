//go:build !debug

package app

import "go-path-defense/internal/component"

// checkInvariants в обычной сборке ничего не делает; см. invariants_debug.go
func checkInvariants(*component.Progression) {}
