package game

import (
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"boomgrid/internal/arena"
	"boomgrid/internal/config"
	"boomgrid/internal/game/keytracker"
)

// flashDuration is how long a detonated tile stays highlighted, in seconds
const flashDuration = 0.3

// Blaster plays the explosion cue.
type Blaster interface {
	PlayBlast()
}

type silentBlaster struct{}

func (silentBlaster) PlayBlast() {}

// Game is the windowed frontend. It drives the arena at a fixed tick rate
// and draws it with vector shapes.
type Game struct {
	cfg     *config.Config
	arena   *arena.Arena
	blaster Blaster
	logger  *slog.Logger
	keys    *keytracker.Tracker
	dt      float64

	flashes map[arena.Cell]float64 // seconds left per tile
}

// Option configures a Game.
type Option func(*Game)

func WithBlaster(b Blaster) Option {
	return func(g *Game) {
		if b != nil {
			g.blaster = b
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGame wraps a loaded arena.
func NewGame(cfg *config.Config, a *arena.Arena, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		arena:   a,
		blaster: silentBlaster{},
		logger:  slog.Default(),
		keys:    keytracker.New(watchedKeys()...),
		dt:      cfg.GetTickDelta(),
		flashes: make(map[arena.Cell]float64),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Game) Update() error {
	g.keys.Update()
	if g.keys.IsKeyJustPressed(ebiten.KeyEscape) {
		g.logger.Info("quit requested")
		return ebiten.Termination
	}

	if err := g.handleInput(); err != nil {
		return err
	}

	g.arena.Tick(g.dt)
	g.handleEvents(g.arena.Drain())
	g.fadeFlashes(g.dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.drawTiles(screen)
	g.drawBombs(screen)
	g.drawEnemies(screen)
	g.drawPlayer(screen)
	g.drawHUD(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetScreenWidth(), g.cfg.GetScreenHeight()
}

// handleEvents turns arena events into sound and tile flashes
func (g *Game) handleEvents(events []arena.Event) {
	for _, e := range events {
		switch e.Kind {
		case arena.EventDetonated:
			g.blaster.PlayBlast()
			g.flashes[e.Cell] = flashDuration
		case arena.EventEnemyRemoved:
			g.flashes[e.Cell] = flashDuration
		case arena.EventPlayerDied:
			g.logger.Info("player died", "cell", e.Cell)
		}
	}

	if g.arena.Won() && len(events) > 0 {
		g.logger.Info("arena cleared")
	}
}

func (g *Game) fadeFlashes(dt float64) {
	for cell, left := range g.flashes {
		if left -= dt; left <= 0 {
			delete(g.flashes, cell)
		} else {
			g.flashes[cell] = left
		}
	}
}

func (g *Game) reset() error {
	if err := g.arena.Reset(); err != nil {
		return err
	}
	clear(g.flashes)
	return nil
}
