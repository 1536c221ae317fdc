package arena

import (
	"math"

	"boomgrid/internal/bomb"
)

// Player is the bomb activator. It plants every bomb within Reach.
type Player struct {
	ID           string
	X, Y         float64
	Reach        float64
	Propagations uint

	alive     bool
	listeners []func(*Player)
}

func (p *Player) Alive() bool { return p.alive }
func (p *Player) Cell() Cell  { return cellOf(p.X, p.Y) }

// Die marks the player dead and notifies the death listeners once.
func (p *Player) Die() {
	if !p.alive {
		return
	}
	p.alive = false
	for _, listener := range p.listeners {
		listener(p)
	}
}

// Enemy walks towards the player one tile at a time.
type Enemy struct {
	ID    string
	X, Y  float64
	Speed float64

	waypoint    Cell
	hasWaypoint bool
}

func (e *Enemy) Cell() Cell { return cellOf(e.X, e.Y) }

// Block is a crate that stops chain reactions and movement.
type Block struct {
	ID   string
	Cell Cell
}

// Bomb is an engine bomb placed on a tile. It doubles as the bomb's
// presenter, recording what a renderer needs to draw it.
type Bomb struct {
	*bomb.Bomb
	Cell Cell

	arena   *Arena
	visible bool
	effects int
}

// Visible reports whether the armed bomb should be drawn.
func (b *Bomb) Visible() bool { return b.visible }

// EffectsPlayed counts detonation effects since the arena was loaded.
func (b *Bomb) EffectsPlayed() int { return b.effects }

// PlayEffect implements bomb.Presenter.
func (b *Bomb) PlayEffect() {
	b.effects++
	b.arena.stats.RecordDetonation()
	b.arena.emit(Event{Kind: EventDetonated, ID: b.ID(), Cell: b.Cell})
}

// SetVisualVisible implements bomb.Presenter.
func (b *Bomb) SetVisualVisible(visible bool) {
	b.visible = visible
}

// propagationTarget records a chain hop before forwarding it to the bomb.
// Hits on a bomb that is already booming are ignored by the bomb and are not
// recorded.
type propagationTarget struct {
	arena *Arena
	bomb  *Bomb
}

func (t propagationTarget) ForceDetonate(dir bomb.Direction, budget uint) {
	if t.bomb.State() == bomb.Booming {
		return
	}
	t.arena.stats.RecordPropagation()
	t.arena.emit(Event{Kind: EventPropagated, ID: t.bomb.ID(), Cell: t.bomb.Cell, Direction: dir, Budget: budget})
	t.bomb.ForceDetonate(dir, budget)
}

// center returns the middle of a tile in tile units
func center(c Cell) (float64, float64) {
	return float64(c.X) + 0.5, float64(c.Y) + 0.5
}

func cellOf(x, y float64) Cell {
	return Cell{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}
