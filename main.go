package main

import (
	"log"
	"log/slog"
	"os"

	"boomgrid/internal/arena"
	"boomgrid/internal/config"
	"boomgrid/internal/game"
	"boomgrid/internal/sound"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	slog.SetDefault(logger)

	a, err := arena.Load(cfg, arena.WithLogger(logger))
	if err != nil {
		log.Fatalf("load arena: %v", err)
	}

	player := sound.NewPlayer(cfg.Sound, logger)
	if err := player.Init(); err != nil {
		// Non-fatal, the game runs without sound
		logger.Warn("audio disabled", "err", err)
	}
	defer player.Close()

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	ebiten.SetTPS(cfg.Display.TPS)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(cfg, a, game.WithBlaster(player), game.WithLogger(logger))
	if err := ebiten.RunGame(g); err != nil {
		player.Close()
		log.Fatal(err)
	}
}
