package bomb

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrBusy is returned when planting a bomb that has not re-armed yet.
var ErrBusy = errors.New("bomb is busy")

// Bomb is a single plantable bomb. It has no clock of its own: the host calls
// Tick once per frame and answers its spatial questions through Space.
type Bomb struct {
	id        string
	pos       Point
	settings  Settings
	space     Space
	presenter Presenter
	logger    *slog.Logger

	state                 State
	stateElapsed          float64
	remainingPropagations uint
	pendingDirections     Directions
}

// Option configures a Bomb.
type Option func(*Bomb)

// WithPresenter attaches the visual/effect hooks.
func WithPresenter(p Presenter) Option {
	return func(b *Bomb) {
		b.presenter = p
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bomb) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates a halting bomb at pos.
func New(id string, pos Point, settings Settings, space Space, opts ...Option) *Bomb {
	b := &Bomb{
		id:       id,
		pos:      pos,
		settings: settings,
		space:    space,
		logger:   slog.Default(),
		state:    Halting,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.logger = b.logger.With("bomb", id)
	return b
}

func (b *Bomb) ID() string                    { return b.id }
func (b *Bomb) Position() Point               { return b.pos }
func (b *Bomb) State() State                  { return b.state }
func (b *Bomb) Elapsed() float64              { return b.stateElapsed }
func (b *Bomb) RemainingPropagations() uint   { return b.remainingPropagations }
func (b *Bomb) PendingDirections() Directions { return b.pendingDirections }
func (b *Bomb) Settings() Settings            { return b.settings }

// IsEmpty reports whether the bomb can be planted.
func (b *Bomb) IsEmpty() bool {
	return b.state == Halting
}

// Plant arms the bomb with a chain budget. A bomb that is still ticking or
// booming is left untouched and ErrBusy is returned.
func (b *Bomb) Plant(budget uint) error {
	if b.state != Halting {
		b.logger.Info("can't plant bomb while busy", "state", b.state)
		return fmt.Errorf("plant %s: %w in %s state", b.id, ErrBusy, b.state)
	}

	b.remainingPropagations = budget
	b.state = Ticking
	b.stateElapsed = 0
	b.pendingDirections = DirNone
	b.setVisible(true)
	return nil
}

// Tick advances the bomb by dt seconds. Negative deltas are ignored.
func (b *Bomb) Tick(dt float64) {
	if dt > 0 {
		b.stateElapsed += dt
	}

	switch b.state {
	case Ticking:
		if b.stateElapsed >= b.settings.FuseDelay {
			b.startBoom(DirAll)
		}

	case Booming:
		if !b.pendingDirections.Empty() && b.stateElapsed >= b.settings.NeighborDelay {
			b.dispatch()
		}
		if b.stateElapsed >= b.settings.BoomDuration {
			b.startHalting()
		}
	}
}

// ForceDetonate is called by a neighbouring blast. A halting bomb goes off
// towards dir only, carrying budget. A ticking bomb goes off at once in every
// direction with the default budget, whatever it was handed. A booming bomb
// ignores the call.
func (b *Bomb) ForceDetonate(dir Direction, budget uint) {
	switch b.state {
	case Halting:
		b.remainingPropagations = budget
		b.startBoom(Of(dir))
	case Ticking:
		b.logger.Debug("forced full detonation while ticking",
			"from", dir, "offered_budget", budget, "budget", b.settings.DefaultPropagation)
		b.remainingPropagations = b.settings.DefaultPropagation
		b.startBoom(DirAll)
	case Booming:
	}
}

func (b *Bomb) startBoom(dirs Directions) {
	b.state = Booming
	b.stateElapsed = 0
	b.pendingDirections = dirs

	b.setVisible(false)
	if b.presenter != nil {
		b.presenter.PlayEffect()
	} else {
		b.logger.Debug("no presenter assigned, skipping effect")
	}

	b.applyBlast()
}

// applyBlast removes enemies and kills players inside the blast radius.
func (b *Bomb) applyBlast() {
	if b.space == nil {
		b.logger.Warn("no space assigned, skipping blast damage")
		return
	}

	for _, id := range b.space.Overlap(b.pos, b.settings.BlastRadius) {
		switch b.space.Category(id) {
		case CategoryEnemy:
			b.space.Remove(id)
		case CategoryPlayer:
			b.space.NotifyDeath(id)
		}
	}
}

// dispatch runs the single propagation pass of a detonation.
func (b *Bomb) dispatch() {
	pending := b.pendingDirections
	b.pendingDirections = DirNone

	if b.remainingPropagations == 0 {
		return
	}
	b.remainingPropagations--

	if b.space == nil {
		b.logger.Warn("no space assigned, skipping propagation")
		return
	}

	budget := b.remainingPropagations
	pending.Each(func(dir Direction) {
		target, ok := b.space.Probe(b.pos, dir, b.settings.ProbeDistance, b.id)
		if !ok {
			return
		}
		b.logger.Debug("propagating blast", "direction", dir, "budget", budget)
		target.ForceDetonate(dir, budget)
	})
}

func (b *Bomb) startHalting() {
	b.state = Halting
	b.stateElapsed = 0
	b.pendingDirections = DirNone
	b.setVisible(false)
}

func (b *Bomb) setVisible(visible bool) {
	if b.presenter == nil {
		b.logger.Debug("no presenter assigned, skipping visual", "visible", visible)
		return
	}
	b.presenter.SetVisualVisible(visible)
}
