// cmd/simulate/main.go
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go-path-defense/internal/ai"
	"go-path-defense/internal/app"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/snapshot"
)

// Headless-прогон: автоигрок проходит уровни, снимки пишутся в файл или stdout.
func main() {
	rulesPath := flag.String("rules", "", "path to rules JSON (defaults if empty)")
	seed := flag.Int64("seed", 1, "random seed (0 = time based)")
	ticks := flag.Int("ticks", 20000, "maximum number of ticks")
	dt := flag.Float64("dt", 1.0/60, "tick length in seconds")
	format := flag.String("format", snapshot.FormatJSON, "snapshot format: json or msgpack")
	out := flag.String("out", "", "snapshot output file (stdout if empty, - to disable)")
	every := flag.Int("every", 60, "write a snapshot every N ticks")
	levels := flag.Int("levels", 3, "stop after this many completed levels")
	flag.Parse()

	rules := defs.DefaultRules()
	if *rulesPath != "" {
		var err error
		rules, err = defs.LoadRules(*rulesPath)
		if err != nil {
			log.Fatal(err)
		}
	}

	w, closeOut, err := openOutput(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer closeOut()

	enc, err := snapshot.NewEncoder(*format, w)
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(rules, *seed)
	builder := ai.NewBuilder(*seed)
	game.StartRun()

	completed := 0
	tick := 0
	for ; tick < *ticks; tick++ {
		prog := game.Progression()
		if prog.GameOverShown() {
			break
		}
		if prog.LevelCompleteShown() {
			completed++
			if completed >= *levels {
				break
			}
			game.AdvanceLevel()
		}

		builder.Act(game)
		game.Update(*dt)

		if *every > 0 && tick%*every == 0 {
			if err := enc.Encode(snapshot.Capture(game, tick)); err != nil {
				log.Fatal(err)
			}
		}
	}
	if err := enc.Encode(snapshot.Capture(game, tick)); err != nil {
		log.Fatal(err)
	}

	prog := game.Progression()
	log.Printf("Run %s finished after %d ticks (%.1fs): phase %s, level %d, levels completed %d, money %d, lives %d",
		game.RunID, tick, game.Now(), prog.Phase, prog.Level, completed, prog.Money, prog.Lives)
}

// openOutput открывает поток для снимков; closeFn сбрасывает буфер и закрывает файл
func openOutput(path string) (io.Writer, func(), error) {
	switch path {
	case "-":
		return io.Discard, func() {}, nil
	case "":
		bw := bufio.NewWriter(os.Stdout)
		return bw, func() { bw.Flush() }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create snapshot file: %w", err)
	}
	bw := bufio.NewWriter(f)
	return bw, func() {
		if err := bw.Flush(); err != nil {
			log.Printf("failed to flush %s: %v", path, err)
		}
		f.Close()
	}, nil
}
