package main

import (
	"log"
	"os"
	"time"

	"rainbow-snake/config"
	"rainbow-snake/game"
	"rainbow-snake/game/manager"
	"rainbow-snake/stats"
	"rainbow-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg, err := config.Load(".env", os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logFile, err := cfg.OpenLog()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	defer logFile.Close()

	history, err := stats.NewGameStats(cfg.StatsFile)
	if err != nil {
		log.Printf("stats: %v, starting a new history", err)
	}

	store := manager.NewStateManager(cfg.ScoreFile)
	g := game.NewGame(game.Config{Grid: game.DefaultConfig().Grid, Seed: cfg.Seed}, store, history)
	log.Printf("session %s, scores in %s", g.UUID, store.Filename())

	renderer := ui.NewRenderer(g.Grid, cfg.CellSize, history)
	width, height := renderer.WindowSize()

	rl.InitWindow(width, height, "Snake Game")
	defer rl.CloseWindow()
	rl.SetExitKey(0) // Esc is handled as a quit event
	rl.SetTargetFPS(int32(cfg.FPS))

	// Input and ticks both run on this goroutine, so they never overlap.
	lastTick := time.Now()
	for !rl.WindowShouldClose() {
		quit := false
		for _, ev := range ui.PollEvents(g.Mode()) {
			if g.HandleEvent(ev) {
				quit = true
				break
			}
		}
		if quit {
			break
		}

		if time.Since(lastTick) >= g.TickInterval() {
			g.Advance()
			lastTick = time.Now()
		}

		renderer.Draw(g)
	}
}
