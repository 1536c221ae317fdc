// keytracker.go - edge and repeat detection for a fixed set of keys.
package keytracker

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Tracker remembers how long each watched key has been held.
type Tracker struct {
	keys []ebiten.Key
	held map[ebiten.Key]int // frames held, 0 when up
}

// New watches keys.
func New(keys ...ebiten.Key) *Tracker {
	return &Tracker{
		keys: keys,
		held: make(map[ebiten.Key]int, len(keys)),
	}
}

// Update samples the keyboard. Call it once per frame.
func (t *Tracker) Update() {
	t.UpdateWith(ebiten.IsKeyPressed)
}

// UpdateWith samples key state from pressed instead of the keyboard.
func (t *Tracker) UpdateWith(pressed func(ebiten.Key) bool) {
	for _, key := range t.keys {
		if pressed(key) {
			t.held[key]++
		} else {
			t.held[key] = 0
		}
	}
}

// IsKeyJustPressed returns true if the key was not pressed last frame but is pressed this frame.
func (t *Tracker) IsKeyJustPressed(key ebiten.Key) bool {
	return t.held[key] == 1
}

// IsKeyRepeated fires on the first frame, then every interval frames once
// the key has been held for delay frames.
func (t *Tracker) IsKeyRepeated(key ebiten.Key, delay, interval int) bool {
	frames := t.held[key]
	switch {
	case frames == 1:
		return true
	case frames <= delay || interval <= 0:
		return false
	default:
		return (frames-delay-1)%interval == 0
	}
}
