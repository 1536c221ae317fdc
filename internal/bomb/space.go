package bomb

//go:generate go tool mockgen -destination=./mocks/space_mock.go -package=mocks . Space,Target,Presenter

// Point is a position in tile units.
type Point struct {
	X, Y float64
}

// Add returns p moved by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Category classifies what a blast does to an entity.
type Category int

const (
	CategoryOther Category = iota
	CategoryBomb
	CategoryEnemy
	CategoryPlayer
	CategoryBlock
)

func (c Category) String() string {
	switch c {
	case CategoryBomb:
		return "bomb"
	case CategoryEnemy:
		return "enemy"
	case CategoryPlayer:
		return "player"
	case CategoryBlock:
		return "block"
	default:
		return "other"
	}
}

// Target is anything a propagating blast can set off.
type Target interface {
	ForceDetonate(dir Direction, budget uint)
}

// Space is the host world as seen by a bomb.
type Space interface {
	// Probe looks maxDistance along dir from origin and returns the first
	// bomb found there, skipping excludeID. Walls and blocks yield no target.
	Probe(origin Point, dir Direction, maxDistance float64, excludeID string) (Target, bool)
	// Overlap returns the IDs of every entity touching the circle.
	Overlap(center Point, radius float64) []string
	Category(id string) Category
	// Remove takes an entity out of the world.
	Remove(id string)
	// NotifyDeath tells a player it was caught in a blast.
	NotifyDeath(id string)
}

// Presenter receives fire-and-forget presentation cues.
type Presenter interface {
	PlayEffect()
	SetVisualVisible(visible bool)
}
