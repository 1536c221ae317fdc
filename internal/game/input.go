package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Held movement keys repeat after repeatDelay frames, every repeatInterval
const (
	repeatDelay    = 12
	repeatInterval = 6
)

type moveBinding struct {
	keys   []ebiten.Key
	dx, dy int
}

var moveBindings = []moveBinding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, dx: -1},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, dx: 1},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, dy: -1},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, dy: 1},
}

func watchedKeys() []ebiten.Key {
	keys := []ebiten.Key{ebiten.KeySpace, ebiten.KeyR, ebiten.KeyEscape}
	for _, b := range moveBindings {
		keys = append(keys, b.keys...)
	}
	return keys
}

// handleInput processes movement, activation and reset for this frame
func (g *Game) handleInput() error {
	for _, b := range moveBindings {
		for _, key := range b.keys {
			if g.keys.IsKeyRepeated(key, repeatDelay, repeatInterval) {
				g.arena.MovePlayer(b.dx, b.dy)
				break
			}
		}
	}

	if g.keys.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) {
		planted := g.arena.Activate()
		g.logger.Debug("activate", "planted", planted)
	}

	if g.keys.IsKeyJustPressed(ebiten.KeyR) {
		return g.reset()
	}
	return nil
}
