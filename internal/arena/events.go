package arena

import "boomgrid/internal/bomb"

// EventKind identifies what happened in the arena.
type EventKind int

const (
	EventPlanted EventKind = iota
	EventDetonated
	EventPropagated
	EventEnemyRemoved
	EventPlayerDied
)

func (k EventKind) String() string {
	switch k {
	case EventPlanted:
		return "planted"
	case EventDetonated:
		return "detonated"
	case EventPropagated:
		return "propagated"
	case EventEnemyRemoved:
		return "enemy_removed"
	case EventPlayerDied:
		return "player_died"
	default:
		return "unknown"
	}
}

// Event is a presentation-facing record of an arena change. Frontends drain
// them once per frame to trigger sounds and flashes.
type Event struct {
	Kind      EventKind
	ID        string
	Cell      Cell
	Direction bomb.Direction // EventPropagated only
	Budget    uint           // EventPlanted and EventPropagated
}

func (a *Arena) emit(e Event) {
	a.events = append(a.events, e)
}

// Drain returns the events recorded since the last call.
func (a *Arena) Drain() []Event {
	events := a.events
	a.events = nil
	return events
}
