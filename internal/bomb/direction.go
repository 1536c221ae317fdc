package bomb

import (
	"fmt"
	"strings"
)

// Direction is a single propagation heading on the grid.
type Direction uint8

const (
	Left Direction = 1 << iota
	Right
	Up
	Down
)

// Directions is a set of Direction values.
type Directions uint8

const (
	DirNone Directions = 0
	DirAll  Directions = Directions(Left | Right | Up | Down)
)

// orderedDirections fixes the dispatch order so chain reactions are deterministic
var orderedDirections = [...]Direction{Left, Right, Up, Down}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

// Valid reports whether d names exactly one heading.
func (d Direction) Valid() bool {
	switch d {
	case Left, Right, Up, Down:
		return true
	}
	return false
}

// Offset returns the unit step for d in grid space, with Up towards smaller Y.
// Passing anything but a single heading is a programming error and panics.
func (d Direction) Offset() (dx, dy float64) {
	switch d {
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	}
	panic(fmt.Sprintf("bomb: no offset for composite or empty %v", d))
}

// Of returns a set holding only d.
func Of(d Direction) Directions {
	return Directions(d)
}

// Has reports whether d is in the set.
func (s Directions) Has(d Direction) bool {
	return d.Valid() && s&Directions(d) != 0
}

// Empty reports whether no heading is pending.
func (s Directions) Empty() bool {
	return s&DirAll == 0
}

// Each calls fn for every heading in the set in Left, Right, Up, Down order.
func (s Directions) Each(fn func(Direction)) {
	for _, d := range orderedDirections {
		if s.Has(d) {
			fn(d)
		}
	}
}

func (s Directions) String() string {
	switch s & DirAll {
	case DirNone:
		return "none"
	case DirAll:
		return "all"
	}
	parts := make([]string, 0, 4)
	s.Each(func(d Direction) { parts = append(parts, d.String()) })
	return strings.Join(parts, "|")
}
