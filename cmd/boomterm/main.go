// Command boomterm plays the bomb arena in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"boomgrid/internal/arena"
	"boomgrid/internal/config"
	"boomgrid/internal/monitoring"
	"boomgrid/internal/sound"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "boomterm:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	stats := monitoring.NewStats()
	a, err := arena.Load(cfg, arena.WithLogger(logger), arena.WithStats(stats))
	if err != nil {
		return err
	}

	player := sound.NewPlayer(cfg.Sound, logger)
	if err := player.Init(); err != nil {
		logger.Warn("audio disabled", "err", err)
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	t := &terminal{screen: screen, arena: a, blaster: player, logger: logger}
	t.run(cfg.Display.TPS)

	snap := stats.Snapshot()
	logger.Info("session over",
		"uptime", snap.Uptime, "frames", snap.Frames, "avg_frame", snap.AvgFrame,
		"plants", snap.Plants, "detonations", snap.Detonations, "chains", snap.Propagations)
	return nil
}

// newLogger writes to the configured file; stdout belongs to the screen
func newLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel()}
	if cfg.Logging.File == "" {
		return slog.New(slog.NewTextHandler(io.Discard, opts)), func() {}, nil
	}

	f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, opts)), func() { f.Close() }, nil
}

type terminal struct {
	screen  tcell.Screen
	arena   *arena.Arena
	blaster *sound.Player
	logger  *slog.Logger

	middleHeld bool
}

func (t *terminal) run(tps int) {
	if tps <= 0 {
		tps = 60
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(t.screen, eventChan, done)

	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			if !t.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			t.arena.Tick(now.Sub(last).Seconds())
			last = now
			for _, e := range t.arena.Drain() {
				if e.Kind == arena.EventDetonated {
					t.blaster.PlayBlast()
				}
			}
			t.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleInput returns false when the player quits
func (t *terminal) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			t.arena.MovePlayer(-1, 0)
		case tcell.KeyRight:
			t.arena.MovePlayer(1, 0)
		case tcell.KeyUp:
			t.arena.MovePlayer(0, -1)
		case tcell.KeyDown:
			t.arena.MovePlayer(0, 1)
		case tcell.KeyRune:
			t.handleRune(ev.Rune())
		}

	case *tcell.EventMouse:
		middle := ev.Buttons()&tcell.ButtonMiddle != 0
		if middle && !t.middleHeld {
			t.arena.Activate()
		}
		t.middleHeld = middle

	case *tcell.EventResize:
		t.screen.Sync()
	}
	return true
}

func (t *terminal) handleRune(r rune) {
	switch r {
	case 'a', 'h':
		t.arena.MovePlayer(-1, 0)
	case 'd', 'l':
		t.arena.MovePlayer(1, 0)
	case 'w', 'k':
		t.arena.MovePlayer(0, -1)
	case 's', 'j':
		t.arena.MovePlayer(0, 1)
	case ' ':
		t.arena.Activate()
	case 'r':
		if err := t.arena.Reset(); err != nil {
			t.logger.Error("reset failed", "err", err)
		}
	}
}
