package arena

import (
	"fmt"
	"io"
	"log/slog"
	"testing"

	"boomgrid/internal/bomb"
	"boomgrid/internal/config"
)

const step = 0.25

func loadTestArena(t *testing.T, rows []string, opts ...Option) *Arena {
	t.Helper()

	cfg := config.Default()
	cfg.Arena.Layout = rows

	n := 0
	opts = append([]Option{
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
	}, opts...)

	a, err := Load(cfg, opts...)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return a
}

func tickN(a *Arena, n int) {
	for i := 0; i < n; i++ {
		a.Tick(step)
	}
}

func eventKinds(events []Event) []EventKind {
	kinds := make([]EventKind, 0, len(events))
	for _, e := range events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

func TestArena_Load(t *testing.T) {
	a := loadTestArena(t, []string{
		"######",
		"#PBXE#",
		"######",
	})

	if a.Width() != 6 || a.Height() != 3 {
		t.Errorf("size = %dx%d, want 6x3", a.Width(), a.Height())
	}
	if len(a.Bombs()) != 1 || len(a.Enemies()) != 1 || len(a.Blocks()) != 1 {
		t.Fatalf("bombs=%d enemies=%d blocks=%d", len(a.Bombs()), len(a.Enemies()), len(a.Blocks()))
	}
	if p := a.Player(); p.Cell() != (Cell{X: 1, Y: 1}) || !p.Alive() {
		t.Errorf("player = %+v", p)
	}
	if b := a.BombAt(Cell{X: 2, Y: 1}); b == nil || !b.IsEmpty() {
		t.Errorf("expected an empty bomb at (2, 1)")
	}
	if !a.IsWall(0, 0) || a.IsWall(1, 1) {
		t.Errorf("wall lookup mismatch")
	}
	if !a.IsBlock(Cell{X: 3, Y: 1}) {
		t.Errorf("expected a block at (3, 1)")
	}
}

func TestArena_LoadRejectsBadSettings(t *testing.T) {
	cfg := config.Default()
	cfg.Bomb.BlastRadius = -1

	if _, err := Load(cfg); err == nil {
		t.Fatal("expected invalid bomb settings to fail")
	}
}

func TestArena_ChainReactionFromActivation(t *testing.T) {
	a := loadTestArena(t, []string{
		"#########",
		"#..PBBB.#",
		"#########",
	})

	if planted := a.Activate(); planted != 1 {
		t.Fatalf("planted = %d, want 1", planted)
	}
	// walk out of the blast
	a.MovePlayer(-1, 0)
	a.MovePlayer(-1, 0)

	tickN(a, 8)

	snap := a.Stats().Snapshot()
	if snap.Plants != 1 || snap.Detonations != 3 || snap.Propagations != 2 {
		t.Errorf("stats = %+v, want 1 plant, 3 detonations, 2 propagations", snap)
	}

	want := []EventKind{EventPlanted, EventDetonated, EventPropagated, EventDetonated, EventPropagated, EventDetonated}
	events := a.Drain()
	if got := eventKinds(events); fmt.Sprint(got) != fmt.Sprint(want) {
		t.Fatalf("events = %v, want %v", got, want)
	}
	if events[2].Direction != bomb.Right || events[2].Budget != 2 {
		t.Errorf("first hop = (%v, %d), want (right, 2)", events[2].Direction, events[2].Budget)
	}
	if events[4].Direction != bomb.Right || events[4].Budget != 1 {
		t.Errorf("second hop = (%v, %d), want (right, 1)", events[4].Direction, events[4].Budget)
	}
	if a.Lost() {
		t.Error("player should have escaped the blast")
	}
	if len(a.Drain()) != 0 {
		t.Error("Drain should clear the event queue")
	}

	tickN(a, 8)
	for _, b := range a.Bombs() {
		if b.State() != bomb.Halting || b.Visible() {
			t.Errorf("bomb at %v: state=%v visible=%v, want hidden and halting", b.Cell, b.State(), b.Visible())
		}
		if b.EffectsPlayed() != 1 {
			t.Errorf("bomb at %v played %d effects, want 1", b.Cell, b.EffectsPlayed())
		}
	}
}

func TestArena_BlockStopsChain(t *testing.T) {
	a := loadTestArena(t, []string{
		"#########",
		"#..PBXB.#",
		"#########",
	})

	a.Activate()
	a.MovePlayer(-1, 0)
	a.MovePlayer(-1, 0)
	tickN(a, 16)

	far := a.BombAt(Cell{X: 6, Y: 1})
	if far.EffectsPlayed() != 0 || far.State() != bomb.Halting {
		t.Errorf("bomb behind block went off: effects=%d state=%v", far.EffectsPlayed(), far.State())
	}
	if snap := a.Stats().Snapshot(); snap.Propagations != 0 {
		t.Errorf("propagations = %d, want 0", snap.Propagations)
	}
}

func TestArena_EnemyInBlastIsRemoved(t *testing.T) {
	a := loadTestArena(t, []string{
		"########",
		"#..PBE.#",
		"########",
	})

	a.Activate()
	a.MovePlayer(-1, 0)
	a.MovePlayer(-1, 0)

	if a.Won() {
		t.Fatal("arena with an enemy should not be won yet")
	}
	tickN(a, 4)

	if len(a.Enemies()) != 0 {
		t.Fatalf("enemies = %d, want 0", len(a.Enemies()))
	}
	if !a.Won() || a.Lost() {
		t.Errorf("won=%v lost=%v, want won", a.Won(), a.Lost())
	}
	if snap := a.Stats().Snapshot(); snap.EnemiesRemoved != 1 {
		t.Errorf("enemies removed = %d, want 1", snap.EnemiesRemoved)
	}
}

func TestArena_PlayerInBlastDies(t *testing.T) {
	var deaths []*Player
	a := loadTestArena(t, []string{
		"#######",
		"#.PB..#",
		"#######",
	}, WithDeathListener(func(p *Player) { deaths = append(deaths, p) }))

	a.Activate()
	tickN(a, 4)

	if !a.Lost() {
		t.Fatal("player next to the bomb should have died")
	}
	if len(deaths) != 1 || deaths[0] != a.Player() {
		t.Fatalf("death listener calls = %d, want 1 with the player", len(deaths))
	}

	var died bool
	for _, e := range a.Drain() {
		if e.Kind == EventPlayerDied {
			died = true
		}
	}
	if !died {
		t.Error("expected a player_died event")
	}

	if a.MovePlayer(1, 0) {
		t.Error("dead player moved")
	}
	if a.Activate() != 0 {
		t.Error("dead player planted a bomb")
	}

	// a second blast must not notify again
	a.NotifyDeath(a.Player().ID)
	if len(deaths) != 1 {
		t.Errorf("death listener calls = %d after repeat, want 1", len(deaths))
	}
}

func TestArena_ActivateSkipsBusyAndDistantBombs(t *testing.T) {
	a := loadTestArena(t, []string{
		"#######",
		"#PB.B.#",
		"#######",
	})

	if got := a.Activate(); got != 1 {
		t.Fatalf("first activation planted %d, want 1", got)
	}
	if got := a.Activate(); got != 0 {
		t.Fatalf("second activation planted %d, want 0", got)
	}

	near := a.BombAt(Cell{X: 2, Y: 1})
	if near.State() != bomb.Ticking || near.RemainingPropagations() != config.Default().Player.Propagations {
		t.Errorf("near bomb state=%v budget=%d", near.State(), near.RemainingPropagations())
	}
	if !near.Visible() {
		t.Error("planted bomb should be visible")
	}
	if far := a.BombAt(Cell{X: 4, Y: 1}); far.State() != bomb.Halting {
		t.Errorf("distant bomb state = %v, want halting", far.State())
	}
	if snap := a.Stats().Snapshot(); snap.Plants != 1 {
		t.Errorf("plants = %d, want 1", snap.Plants)
	}
}

func TestArena_MovePlayer(t *testing.T) {
	a := loadTestArena(t, []string{
		"######",
		"#PBX.#",
		"#.####",
		"######",
	})

	tests := []struct {
		name   string
		dx, dy int
		moved  bool
		want   Cell
	}{
		{"into wall", 0, -1, false, Cell{X: 1, Y: 1}},
		{"diagonal", 1, 1, false, Cell{X: 1, Y: 1}},
		{"no input", 0, 0, false, Cell{X: 1, Y: 1}},
		{"onto bomb", 3, 0, true, Cell{X: 2, Y: 1}},
		{"into block", 1, 0, false, Cell{X: 2, Y: 1}},
		{"back", -1, 0, true, Cell{X: 1, Y: 1}},
		{"down", 0, 1, true, Cell{X: 1, Y: 2}},
	}

	for _, tc := range tests {
		if got := a.MovePlayer(tc.dx, tc.dy); got != tc.moved {
			t.Errorf("%s: moved = %v, want %v", tc.name, got, tc.moved)
		}
		if cell := a.Player().Cell(); cell != tc.want {
			t.Errorf("%s: player at %v, want %v", tc.name, cell, tc.want)
		}
	}
}

func TestArena_EnemyChasesPlayer(t *testing.T) {
	a := loadTestArena(t, []string{
		"########",
		"#P....E#",
		"########",
	})
	enemy := a.Enemies()[0]

	tickN(a, 4)
	// snapping to each tile centre drops the rest of that frame's step
	if enemy.X != 5.125 {
		t.Errorf("enemy x after 1s = %v, want 5.125", enemy.X)
	}

	tickN(a, 40)
	gap := enemy.X - a.Player().X
	if gap < a.cfg.Player.Size/2+a.cfg.Enemy.Size/2 {
		t.Errorf("enemy overlaps player: gap %v", gap)
	}
	if gap > 1 {
		t.Errorf("enemy stopped short: gap %v", gap)
	}
}

func TestArena_EnemiesStayPutAfterDeath(t *testing.T) {
	a := loadTestArena(t, []string{
		"########",
		"#P....E#",
		"########",
	})
	enemy := a.Enemies()[0]

	a.NotifyDeath(a.Player().ID)
	tickN(a, 4)

	if enemy.X != 6.5 {
		t.Errorf("enemy moved to %v after the player died", enemy.X)
	}
}

func TestArena_Reset(t *testing.T) {
	a := loadTestArena(t, []string{
		"#######",
		"#.PB.E#",
		"#######",
	})

	a.Activate()
	tickN(a, 6)
	if !a.Lost() {
		t.Fatal("setup: player should be dead")
	}

	if err := a.Reset(); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}

	if a.Lost() || len(a.Enemies()) != 1 {
		t.Errorf("after reset lost=%v enemies=%d", a.Lost(), len(a.Enemies()))
	}
	for _, b := range a.Bombs() {
		if !b.IsEmpty() || b.EffectsPlayed() != 0 {
			t.Errorf("bomb %v not reset", b.Cell)
		}
	}
	if snap := a.Stats().Snapshot(); snap.Plants != 0 || snap.Detonations != 0 || snap.Deaths != 0 {
		t.Errorf("stats not reset: %+v", snap)
	}
	if len(a.Drain()) != 0 {
		t.Error("events survived reset")
	}
}

func TestArena_Category(t *testing.T) {
	a := loadTestArena(t, []string{
		"######",
		"#PBXE#",
		"######",
	})

	tests := []struct {
		id   string
		want bomb.Category
	}{
		{a.Blocks()[0].ID, bomb.CategoryBlock},
		{a.Bombs()[0].ID(), bomb.CategoryBomb},
		{a.Enemies()[0].ID, bomb.CategoryEnemy},
		{a.Player().ID, bomb.CategoryPlayer},
		{"missing", bomb.CategoryOther},
	}
	for _, tc := range tests {
		if got := a.Category(tc.id); got != tc.want {
			t.Errorf("Category(%q) = %v, want %v", tc.id, got, tc.want)
		}
	}
}

func TestArena_ProbeSkipsCreatures(t *testing.T) {
	a := loadTestArena(t, []string{
		"#######",
		"#BEB.P#",
		"#######",
	})

	first := a.BombAt(Cell{X: 1, Y: 1})
	target, ok := a.Probe(first.Position(), bomb.Right, 2, first.ID())
	if !ok {
		t.Fatal("probe should pass the enemy and find the bomb")
	}
	if pt := target.(propagationTarget); pt.bomb.Cell != (Cell{X: 3, Y: 1}) {
		t.Errorf("probe hit %v, want (3, 1)", pt.bomb.Cell)
	}

	if _, ok := a.Probe(first.Position(), bomb.Left, 2, first.ID()); ok {
		t.Error("probe into a wall should find nothing")
	}
}

func TestArena_HitOnBoomingBombIsNotCounted(t *testing.T) {
	a := loadTestArena(t, []string{
		"#######",
		"#.PBB.#",
		"#######",
	})

	if planted := a.Activate(); planted != 1 {
		t.Fatalf("planted = %d, want 1", planted)
	}
	// the fuse expires after four steps and the first hop lands two later
	tickN(a, 6)
	left, right := a.BombAt(Cell{X: 3, Y: 1}), a.BombAt(Cell{X: 4, Y: 1})
	if left.State() != bomb.Booming || right.State() != bomb.Booming {
		t.Fatalf("states = %v, %v, want both booming", left.State(), right.State())
	}
	a.Drain()
	before := a.Stats().Snapshot().Propagations

	target, ok := a.Probe(right.Position(), bomb.Left, 1, right.ID())
	if !ok {
		t.Fatal("expected the left bomb as a chain target")
	}
	target.ForceDetonate(bomb.Left, 2)

	if got := a.Stats().Snapshot().Propagations; got != before {
		t.Errorf("propagations = %d, want %d", got, before)
	}
	for _, e := range a.Drain() {
		if e.Kind == EventPropagated {
			t.Errorf("unexpected propagated event for %v", e.Cell)
		}
	}
	if left.Elapsed() != 0.5 || left.RemainingPropagations() != 2 {
		t.Errorf("left bomb changed: elapsed %v, budget %d", left.Elapsed(), left.RemainingPropagations())
	}
}
