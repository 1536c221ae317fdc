package collision

import (
	"math"
)

// probeSamplesPerTile controls how finely Probe marches along its segment
const probeSamplesPerTile = 10

// TileChecker interface for checking if tiles block movement
type TileChecker interface {
	IsTileBlocking(tileX, tileY int) bool
	GetWorldBounds() (width, height int)
}

// CollisionSystem manages all collision detection in the arena
type CollisionSystem struct {
	tileChecker TileChecker
	entities    map[string]*Entity
	order       []string // registration order, keeps queries deterministic
	tileSize    float64
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(tileChecker TileChecker, tileSize float64) *CollisionSystem {
	return &CollisionSystem{
		tileChecker: tileChecker,
		entities:    make(map[string]*Entity),
		tileSize:    tileSize,
	}
}

// RegisterEntity adds an entity to the collision system
func (cs *CollisionSystem) RegisterEntity(entity *Entity) {
	if _, exists := cs.entities[entity.ID]; !exists {
		cs.order = append(cs.order, entity.ID)
	}
	cs.entities[entity.ID] = entity
}

// UnregisterEntity removes an entity from the collision system
func (cs *CollisionSystem) UnregisterEntity(id string) {
	if _, exists := cs.entities[id]; !exists {
		return
	}
	delete(cs.entities, id)
	for i, ordered := range cs.order {
		if ordered == id {
			cs.order = append(cs.order[:i], cs.order[i+1:]...)
			break
		}
	}
}

// UpdateEntity updates an entity's position in the collision system
func (cs *CollisionSystem) UpdateEntity(id string, x, y float64) {
	if entity, exists := cs.entities[id]; exists {
		entity.BoundingBox.MoveTo(x, y)
	}
}

// GetEntityByID returns the entity with the given ID, or nil if not found
func (cs *CollisionSystem) GetEntityByID(id string) *Entity {
	if entity, ok := cs.entities[id]; ok {
		return entity
	}
	return nil
}

// GetAllEntities returns every entity in registration order
func (cs *CollisionSystem) GetAllEntities() []*Entity {
	entities := make([]*Entity, 0, len(cs.order))
	for _, id := range cs.order {
		entities = append(entities, cs.entities[id])
	}
	return entities
}

// CanMoveTo checks if an entity can move to the specified position
func (cs *CollisionSystem) CanMoveTo(entityID string, newX, newY float64) bool {
	entity, exists := cs.entities[entityID]
	if !exists {
		return false
	}

	// Create a temporary bounding box at the new position
	tempBox := NewBoundingBox(newX, newY, entity.BoundingBox.Width, entity.BoundingBox.Height)

	if !cs.canMoveToWorldPosition(tempBox) {
		return false
	}

	return cs.canMoveToEntityPosition(entityID, tempBox)
}

// canMoveToWorldPosition checks collision with world tiles
func (cs *CollisionSystem) canMoveToWorldPosition(boundingBox *BoundingBox) bool {
	minX, minY, maxX, maxY := boundingBox.GetBounds()

	startTileX, startTileY := cs.tileAt(minX, minY)
	endTileX, endTileY := cs.tileAt(maxX, maxY)

	for tileY := startTileY; tileY <= endTileY; tileY++ {
		for tileX := startTileX; tileX <= endTileX; tileX++ {
			if cs.isBlocked(tileX, tileY) {
				return false
			}
		}
	}

	return true
}

// canMoveToEntityPosition checks collision with other entities
func (cs *CollisionSystem) canMoveToEntityPosition(movingEntityID string, boundingBox *BoundingBox) bool {
	for _, id := range cs.order {
		if id == movingEntityID {
			continue
		}

		entity := cs.entities[id]
		if !entity.Solid {
			continue
		}

		if boundingBox.Intersects(entity.BoundingBox) {
			return false
		}
	}

	return true
}

// Overlap returns the entities whose box touches the circle at (x, y)
func (cs *CollisionSystem) Overlap(x, y, radius float64, excludeID string) []*Entity {
	var hits []*Entity
	center := Point{X: x, Y: y}

	for _, id := range cs.order {
		if id == excludeID {
			continue
		}

		entity := cs.entities[id]
		if entity.BoundingBox.EdgeDistanceToPoint(center) <= radius {
			hits = append(hits, entity)
		}
	}

	return hits
}

// ExcludeID returns a Probe filter that skips a single entity.
func ExcludeID(id string) func(*Entity) bool {
	return func(e *Entity) bool { return e.ID == id }
}

// Probe marches from (x, y) along (dx, dy) for maxDistance and returns the
// first entity under the segment that skip does not reject. A blocking or
// out-of-bounds tile ends the probe with no hit. The starting point itself
// is not sampled.
func (cs *CollisionSystem) Probe(x, y, dx, dy, maxDistance float64, skip func(*Entity) bool) (*Entity, bool) {
	length := math.Hypot(dx, dy)
	if length == 0 || maxDistance <= 0 {
		return nil, false
	}
	dx /= length
	dy /= length

	steps := int(math.Ceil(maxDistance / cs.tileSize * probeSamplesPerTile))
	stepLength := maxDistance / float64(steps)

	for i := 1; i <= steps; i++ {
		sample := Point{X: x + dx*stepLength*float64(i), Y: y + dy*stepLength*float64(i)}

		if cs.isBlocked(cs.tileAt(sample.X, sample.Y)) {
			return nil, false
		}

		for _, id := range cs.order {
			entity := cs.entities[id]
			if skip != nil && skip(entity) {
				continue
			}
			if entity.BoundingBox.Contains(sample) {
				return entity, true
			}
		}
	}

	return nil, false
}

func (cs *CollisionSystem) tileAt(x, y float64) (int, int) {
	return int(math.Floor(x / cs.tileSize)), int(math.Floor(y / cs.tileSize))
}

// isBlocked treats tiles outside the world as walls
func (cs *CollisionSystem) isBlocked(tileX, tileY int) bool {
	width, height := cs.tileChecker.GetWorldBounds()
	if tileX < 0 || tileX >= width || tileY < 0 || tileY >= height {
		return true
	}
	return cs.tileChecker.IsTileBlocking(tileX, tileY)
}
