package bomb

import (
	"errors"
	"fmt"
)

// DefaultPropagationLength is the chain budget a ticking bomb gets when a
// neighbour forces it to go off early.
const DefaultPropagationLength uint = 3

// Settings holds the timing and reach of a bomb. Durations are in seconds,
// distances in tiles.
type Settings struct {
	FuseDelay          float64
	BoomDuration       float64
	NeighborDelay      float64
	BlastRadius        float64
	ProbeDistance      float64
	DefaultPropagation uint
}

// DefaultSettings returns the stock bomb tuning.
func DefaultSettings() Settings {
	return Settings{
		FuseDelay:          1.0,
		BoomDuration:       1.0,
		NeighborDelay:      0.5,
		BlastRadius:        1.5,
		ProbeDistance:      1.0,
		DefaultPropagation: DefaultPropagationLength,
	}
}

var ErrInvalidSettings = errors.New("invalid bomb settings")

// Validate rejects tunings the state machine cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.FuseDelay <= 0:
		return fmt.Errorf("%w: fuse delay %v must be positive", ErrInvalidSettings, s.FuseDelay)
	case s.BoomDuration <= 0:
		return fmt.Errorf("%w: boom duration %v must be positive", ErrInvalidSettings, s.BoomDuration)
	case s.NeighborDelay < 0:
		return fmt.Errorf("%w: neighbor delay %v must not be negative", ErrInvalidSettings, s.NeighborDelay)
	case s.BlastRadius <= 0:
		return fmt.Errorf("%w: blast radius %v must be positive", ErrInvalidSettings, s.BlastRadius)
	case s.ProbeDistance <= 0:
		return fmt.Errorf("%w: probe distance %v must be positive", ErrInvalidSettings, s.ProbeDistance)
	}
	return nil
}
