package bomb

// State is the phase of a bomb's fuse cycle.
type State int

const (
	Halting State = iota
	Ticking
	Booming
)

func (s State) String() string {
	switch s {
	case Halting:
		return "halting"
	case Ticking:
		return "ticking"
	case Booming:
		return "booming"
	default:
		return "unknown"
	}
}
