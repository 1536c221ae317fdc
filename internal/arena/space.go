package arena

import (
	"boomgrid/internal/bomb"
	"boomgrid/internal/collision"
)

var _ bomb.Space = (*Arena)(nil)

// Probe implements bomb.Space. Creatures do not stop a probe; a crate does.
func (a *Arena) Probe(origin bomb.Point, dir bomb.Direction, maxDistance float64, excludeID string) (bomb.Target, bool) {
	dx, dy := dir.Offset()
	skip := func(e *collision.Entity) bool {
		if e.ID == excludeID {
			return true
		}
		return e.CollisionType == collision.CollisionTypePlayer || e.CollisionType == collision.CollisionTypeEnemy
	}

	hit, ok := a.collision.Probe(origin.X, origin.Y, dx, dy, maxDistance, skip)
	if !ok || hit.CollisionType != collision.CollisionTypeBomb {
		return nil, false
	}
	return propagationTarget{arena: a, bomb: a.bombIndex[hit.ID]}, true
}

// Overlap implements bomb.Space.
func (a *Arena) Overlap(c bomb.Point, radius float64) []string {
	hits := a.collision.Overlap(c.X, c.Y, radius, "")
	ids := make([]string, 0, len(hits))
	for _, e := range hits {
		ids = append(ids, e.ID)
	}
	return ids
}

// Category implements bomb.Space.
func (a *Arena) Category(id string) bomb.Category {
	e := a.collision.GetEntityByID(id)
	if e == nil {
		return bomb.CategoryOther
	}
	switch e.CollisionType {
	case collision.CollisionTypeBomb:
		return bomb.CategoryBomb
	case collision.CollisionTypeEnemy:
		return bomb.CategoryEnemy
	case collision.CollisionTypePlayer:
		return bomb.CategoryPlayer
	case collision.CollisionTypeBlock:
		return bomb.CategoryBlock
	default:
		return bomb.CategoryOther
	}
}

// Remove implements bomb.Space. Only enemies can be removed.
func (a *Arena) Remove(id string) {
	for i, e := range a.enemies {
		if e.ID != id {
			continue
		}
		a.enemies = append(a.enemies[:i], a.enemies[i+1:]...)
		a.collision.UnregisterEntity(id)
		a.stats.RecordEnemyRemoved()
		a.emit(Event{Kind: EventEnemyRemoved, ID: id, Cell: e.Cell()})
		a.logger.Debug("enemy removed", "enemy", id, "left", len(a.enemies))
		return
	}
	a.logger.Warn("remove of unknown entity ignored", "id", id)
}

// NotifyDeath implements bomb.Space.
func (a *Arena) NotifyDeath(id string) {
	if id != a.player.ID || !a.player.Alive() {
		return
	}
	a.stats.RecordDeath()
	a.emit(Event{Kind: EventPlayerDied, ID: id, Cell: a.player.Cell()})
	a.logger.Info("player died", "cell", a.player.Cell())
	a.player.Die()
}
