// cmd/tui/main.go
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"

	"go-path-defense/internal/app"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/tui"
)

func main() {
	rulesPath := flag.String("rules", "", "path to rules JSON (defaults if empty)")
	seed := flag.Int64("seed", 0, "random seed (0 = time based)")
	logPath := flag.String("log", "path-defense-tui.log", "log file; the terminal is busy with the game")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	rules := defs.DefaultRules()
	if *rulesPath != "" {
		rules, err = defs.LoadRules(*rulesPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.Clear()

	game := app.NewGame(rules, *seed)
	tui.NewController(game, tui.NewView(screen)).Run()
	game.Cleanup()
}
