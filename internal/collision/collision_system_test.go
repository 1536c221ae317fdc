package collision

import (
	"testing"
)

// mockTileChecker implements TileChecker for testing
type mockTileChecker struct {
	width, height int
	blockingTiles map[int]map[int]bool
}

func newMockTileChecker(width, height int) *mockTileChecker {
	return &mockTileChecker{
		width:         width,
		height:        height,
		blockingTiles: make(map[int]map[int]bool),
	}
}

func (m *mockTileChecker) IsTileBlocking(tileX, tileY int) bool {
	if row, ok := m.blockingTiles[tileY]; ok {
		return row[tileX]
	}
	return false
}

func (m *mockTileChecker) GetWorldBounds() (width, height int) {
	return m.width, m.height
}

func (m *mockTileChecker) setBlocking(tileX, tileY int, blocking bool) {
	if m.blockingTiles[tileY] == nil {
		m.blockingTiles[tileY] = make(map[int]bool)
	}
	m.blockingTiles[tileY][tileX] = blocking
}

// tileEntity places a 0.6 wide entity at the centre of a tile
func tileEntity(id string, tileX, tileY int, kind CollisionType) *Entity {
	return NewEntity(id, float64(tileX)+0.5, float64(tileY)+0.5, 0.6, 0.6, kind, kind != CollisionTypeBomb)
}

func TestProbe_FindsAdjacentEntity(t *testing.T) {
	cs := NewCollisionSystem(newMockTileChecker(10, 10), 1.0)
	cs.RegisterEntity(tileEntity("origin", 2, 2, CollisionTypeBomb))
	cs.RegisterEntity(tileEntity("right", 3, 2, CollisionTypeBomb))

	hit, ok := cs.Probe(2.5, 2.5, 1, 0, 1.0, ExcludeID("origin"))
	if !ok {
		t.Fatal("expected a hit to the right")
	}
	if hit.ID != "right" {
		t.Errorf("hit %q, want right", hit.ID)
	}
}

func TestProbe_ExcludesOrigin(t *testing.T) {
	cs := NewCollisionSystem(newMockTileChecker(10, 10), 1.0)
	cs.RegisterEntity(tileEntity("origin", 2, 2, CollisionTypeBomb))

	if hit, ok := cs.Probe(2.5, 2.5, 0, 1, 1.0, ExcludeID("origin")); ok {
		t.Errorf("expected no hit, got %q", hit.ID)
	}
}

func TestProbe_StopsAtWall(t *testing.T) {
	checker := newMockTileChecker(10, 10)
	cs := NewCollisionSystem(checker, 1.0)
	cs.RegisterEntity(tileEntity("origin", 2, 2, CollisionTypeBomb))
	cs.RegisterEntity(tileEntity("beyond", 4, 2, CollisionTypeBomb))
	checker.setBlocking(3, 2, true)

	if hit, ok := cs.Probe(2.5, 2.5, 1, 0, 2.0, ExcludeID("origin")); ok {
		t.Errorf("wall should stop the probe, got %q", hit.ID)
	}
}

func TestProbe_StopsAtWorldEdge(t *testing.T) {
	cs := NewCollisionSystem(newMockTileChecker(3, 3), 1.0)
	cs.RegisterEntity(tileEntity("origin", 0, 0, CollisionTypeBomb))

	if _, ok := cs.Probe(0.5, 0.5, -1, 0, 1.0, ExcludeID("origin")); ok {
		t.Error("probe leaving the world should not hit")
	}
}

func TestProbe_ReturnsNearestFirst(t *testing.T) {
	cs := NewCollisionSystem(newMockTileChecker(10, 10), 1.0)
	cs.RegisterEntity(tileEntity("origin", 1, 1, CollisionTypeBomb))
	cs.RegisterEntity(tileEntity("far", 1, 3, CollisionTypeBomb))
	cs.RegisterEntity(tileEntity("crate", 1, 2, CollisionTypeBlock))

	hit, ok := cs.Probe(1.5, 1.5, 0, 1, 2.0, ExcludeID("origin"))
	if !ok || hit.ID != "crate" {
		t.Fatalf("expected the crate first, got %v", hit)
	}
}

func TestProbe_ShortSegmentMissesDistantEntity(t *testing.T) {
	cs := NewCollisionSystem(newMockTileChecker(10, 10), 1.0)
	cs.RegisterEntity(tileEntity("origin", 1, 1, CollisionTypeBomb))
	cs.RegisterEntity(tileEntity("two-away", 3, 1, CollisionTypeBomb))

	if hit, ok := cs.Probe(1.5, 1.5, 1, 0, 1.0, ExcludeID("origin")); ok {
		t.Errorf("one-tile probe should not reach two tiles, got %q", hit.ID)
	}
}

func TestOverlap_UsesBoxEdges(t *testing.T) {
	cs := NewCollisionSystem(newMockTileChecker(10, 10), 1.0)
	cs.RegisterEntity(tileEntity("adjacent", 5, 4, CollisionTypeEnemy))
	cs.RegisterEntity(tileEntity("diagonal", 5, 5, CollisionTypeEnemy))
	cs.RegisterEntity(tileEntity("two-away", 6, 4, CollisionTypeEnemy))
	cs.RegisterEntity(tileEntity("self", 4, 4, CollisionTypeBomb))

	hits := cs.Overlap(4.5, 4.5, 1.5, "self")
	got := make(map[string]bool)
	for _, e := range hits {
		got[e.ID] = true
	}

	if !got["adjacent"] || !got["diagonal"] {
		t.Errorf("expected adjacent and diagonal hits, got %v", got)
	}
	if got["two-away"] {
		t.Error("entity two tiles away should be outside a 1.5 radius")
	}
	if got["self"] {
		t.Error("excluded entity returned")
	}
}

func TestCanMoveTo_RespectsSolidsAndTiles(t *testing.T) {
	checker := newMockTileChecker(5, 5)
	checker.setBlocking(2, 1, true)
	cs := NewCollisionSystem(checker, 1.0)
	cs.RegisterEntity(tileEntity("enemy", 1, 1, CollisionTypeEnemy))
	cs.RegisterEntity(tileEntity("crate", 1, 2, CollisionTypeBlock))
	cs.RegisterEntity(tileEntity("bomb", 0, 1, CollisionTypeBomb))

	if cs.CanMoveTo("enemy", 2.5, 1.5) {
		t.Error("moved into a wall tile")
	}
	if cs.CanMoveTo("enemy", 1.5, 2.5) {
		t.Error("moved into a solid crate")
	}
	if !cs.CanMoveTo("enemy", 0.5, 1.5) {
		t.Error("bombs are not solid and should not block")
	}
	if cs.CanMoveTo("ghost", 1.5, 1.5) {
		t.Error("unknown entity should not move")
	}
}

func TestUnregisterEntity_KeepsOrder(t *testing.T) {
	cs := NewCollisionSystem(newMockTileChecker(5, 5), 1.0)
	for _, id := range []string{"a", "b", "c"} {
		cs.RegisterEntity(tileEntity(id, 1, 1, CollisionTypeEnemy))
	}
	cs.UnregisterEntity("b")
	cs.UnregisterEntity("missing")

	all := cs.GetAllEntities()
	if len(all) != 2 || all[0].ID != "a" || all[1].ID != "c" {
		t.Errorf("unexpected entities after unregister: %v", all)
	}
	if cs.GetEntityByID("b") != nil {
		t.Error("b should be gone")
	}
}
