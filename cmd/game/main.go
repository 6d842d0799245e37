// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	rulesPath := flag.String("rules", "", "path to rules JSON (defaults if empty)")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	flag.Parse()

	rules := defs.DefaultRules()
	if *rulesPath != "" {
		var err error
		rules, err = defs.LoadRules(*rulesPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	sm := state.NewStateMachine(state.Options{Rules: rules, Seed: *seed}) // Создаём машину состояний
	sm.SetState(state.NewMenuState(sm))
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Path Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
