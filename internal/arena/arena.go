package arena

import (
	"log/slog"
	"math"

	"github.com/google/uuid"

	"boomgrid/internal/bomb"
	"boomgrid/internal/collision"
	"boomgrid/internal/config"
	"boomgrid/internal/mathutil"
	"boomgrid/internal/monitoring"
)

// tileSize is one world unit; every coordinate in the arena is in tiles
const tileSize = 1.0

// Arena hosts the bombs, the player and the enemies of one level. It is the
// Space every bomb queries and it is driven by a single goroutine.
type Arena struct {
	cfg      *config.Config
	settings bomb.Settings
	logger   *slog.Logger
	stats    *monitoring.Stats
	newID    func() string

	deathListeners []func(*Player)

	layout    *layout
	collision *collision.CollisionSystem
	paths     *pathfinder
	crates    map[Cell]bool

	player    *Player
	bombs     []*Bomb
	bombIndex map[string]*Bomb
	enemies   []*Enemy
	blocks    []Block
	events    []Event
}

// Option configures an Arena.
type Option func(*Arena)

func WithLogger(l *slog.Logger) Option {
	return func(a *Arena) {
		if l != nil {
			a.logger = l
		}
	}
}

func WithStats(s *monitoring.Stats) Option {
	return func(a *Arena) {
		if s != nil {
			a.stats = s
		}
	}
}

// WithIDGenerator replaces the random entity IDs, mostly for tests.
func WithIDGenerator(next func() string) Option {
	return func(a *Arena) {
		if next != nil {
			a.newID = next
		}
	}
}

// WithDeathListener registers a callback fired when the player dies.
func WithDeathListener(fn func(*Player)) Option {
	return func(a *Arena) {
		if fn != nil {
			a.deathListeners = append(a.deathListeners, fn)
		}
	}
}

// Load builds an arena from the configured layout.
func Load(cfg *config.Config, opts ...Option) (*Arena, error) {
	a := &Arena{
		cfg:      cfg,
		settings: cfg.BombSettings(),
		logger:   slog.Default(),
		stats:    monitoring.NewStats(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}

	if err := a.settings.Validate(); err != nil {
		return nil, err
	}
	if err := a.populate(); err != nil {
		return nil, err
	}

	a.logger.Info("arena loaded",
		"width", a.layout.width, "height", a.layout.height,
		"bombs", len(a.bombs), "enemies", len(a.enemies), "blocks", len(a.blocks))
	return a, nil
}

func (a *Arena) populate() error {
	l, err := parseLayout(a.cfg.Arena.Layout)
	if err != nil {
		return err
	}

	a.layout = l
	a.collision = collision.NewCollisionSystem(l, tileSize)
	a.crates = make(map[Cell]bool, len(l.blocks))
	a.bombs = nil
	a.bombIndex = make(map[string]*Bomb, len(l.bombs))
	a.enemies = nil
	a.blocks = nil
	a.events = nil

	for _, cell := range l.blocks {
		block := Block{ID: a.newID(), Cell: cell}
		x, y := center(cell)
		a.collision.RegisterEntity(collision.NewEntity(block.ID, x, y, tileSize, tileSize, collision.CollisionTypeBlock, true))
		a.crates[cell] = true
		a.blocks = append(a.blocks, block)
	}

	bombSize := a.cfg.Bomb.Size
	for _, cell := range l.bombs {
		x, y := center(cell)
		wrapper := &Bomb{Cell: cell, arena: a}
		id := a.newID()
		wrapper.Bomb = bomb.New(id, bomb.Point{X: x, Y: y}, a.settings, a,
			bomb.WithPresenter(wrapper), bomb.WithLogger(a.logger))
		a.collision.RegisterEntity(collision.NewEntity(id, x, y, bombSize, bombSize, collision.CollisionTypeBomb, false))
		a.bombs = append(a.bombs, wrapper)
		a.bombIndex[id] = wrapper
	}

	enemySize := a.cfg.Enemy.Size
	for _, cell := range l.enemies {
		x, y := center(cell)
		enemy := &Enemy{ID: a.newID(), X: x, Y: y, Speed: a.cfg.Enemy.Speed}
		a.collision.RegisterEntity(collision.NewEntity(enemy.ID, x, y, enemySize, enemySize, collision.CollisionTypeEnemy, true))
		a.enemies = append(a.enemies, enemy)
	}

	x, y := center(l.player)
	a.player = &Player{
		ID:           a.newID(),
		X:            x,
		Y:            y,
		Reach:        a.cfg.Player.Reach,
		Propagations: a.cfg.Player.Propagations,
		alive:        true,
		listeners:    a.deathListeners,
	}
	playerSize := a.cfg.Player.Size
	a.collision.RegisterEntity(collision.NewEntity(a.player.ID, x, y, playerSize, playerSize, collision.CollisionTypePlayer, true))

	a.paths = newPathfinder(l.width, l.height, a.walkable)
	return nil
}

// Reset reloads the layout and clears the arena counters.
func (a *Arena) Reset() error {
	if err := a.populate(); err != nil {
		return err
	}
	a.stats.Reset()
	a.logger.Info("arena reset")
	return nil
}

// Tick advances enemies and then every bomb, in layout order, by dt seconds.
func (a *Arena) Tick(dt float64) {
	frame := a.stats.StartFrame()
	defer frame.EndFrame()

	if dt < 0 {
		dt = 0
	}

	if a.player.Alive() {
		// copy: a bomb may remove enemies while we iterate below
		for _, enemy := range append([]*Enemy(nil), a.enemies...) {
			a.moveEnemy(enemy, dt)
		}
	}

	for _, b := range a.bombs {
		b.Tick(dt)
	}
}

// Activate plants every halting bomb within the player's reach and returns
// how many were planted. Busy bombs are skipped.
func (a *Arena) Activate() int {
	if !a.player.Alive() {
		return 0
	}

	hits := a.collision.Overlap(a.player.X, a.player.Y, a.player.Reach, a.player.ID)
	planted := 0
	for _, entity := range hits {
		if entity.CollisionType != collision.CollisionTypeBomb {
			continue
		}
		b := a.bombIndex[entity.ID]
		if err := b.Plant(a.player.Propagations); err != nil {
			continue
		}
		planted++
		a.stats.RecordPlant()
		a.emit(Event{Kind: EventPlanted, ID: b.ID(), Cell: b.Cell, Budget: a.player.Propagations})
	}

	a.logger.Debug("activated bombs", "in_reach", len(hits), "planted", planted)
	return planted
}

// MovePlayer steps the player one tile along a single axis. Only the sign of
// dx and dy is used. It reports whether the player moved.
func (a *Arena) MovePlayer(dx, dy int) bool {
	dx, dy = mathutil.IntSign(dx), mathutil.IntSign(dy)
	if !a.player.Alive() || (dx == 0) == (dy == 0) {
		return false
	}

	cell := a.player.Cell()
	x, y := center(Cell{X: cell.X + dx, Y: cell.Y + dy})
	if !a.collision.CanMoveTo(a.player.ID, x, y) {
		return false
	}

	a.player.X, a.player.Y = x, y
	a.collision.UpdateEntity(a.player.ID, x, y)
	return true
}

// moveEnemy walks an enemy towards the player one tile centre at a time
func (a *Arena) moveEnemy(e *Enemy, dt float64) {
	if !e.hasWaypoint {
		next, ok := a.paths.nextStep(e.Cell(), a.player.Cell())
		if !ok {
			return
		}
		e.waypoint, e.hasWaypoint = next, true
	}

	tx, ty := center(e.waypoint)
	dx, dy := tx-e.X, ty-e.Y
	dist := math.Hypot(dx, dy)
	step := e.Speed * dt

	nx, ny := tx, ty
	if step < dist {
		nx, ny = e.X+dx/dist*step, e.Y+dy/dist*step
	}
	if !a.collision.CanMoveTo(e.ID, nx, ny) {
		// wait at the current tile and pick a fresh route next frame
		if e.X == math.Floor(e.X)+0.5 && e.Y == math.Floor(e.Y)+0.5 {
			e.hasWaypoint = false
		}
		return
	}

	e.X, e.Y = nx, ny
	a.collision.UpdateEntity(e.ID, nx, ny)
	if nx == tx && ny == ty {
		e.hasWaypoint = false
	}
}

// walkable reports whether enemies may path through a tile
func (a *Arena) walkable(c Cell) bool {
	return !a.layout.IsTileBlocking(c.X, c.Y) && !a.crates[c]
}

// Won reports whether every enemy is gone while the player lives.
func (a *Arena) Won() bool { return a.player.Alive() && len(a.enemies) == 0 }

// Lost reports whether the player died.
func (a *Arena) Lost() bool { return !a.player.Alive() }

func (a *Arena) Width() int               { return a.layout.width }
func (a *Arena) Height() int              { return a.layout.height }
func (a *Arena) Player() *Player          { return a.player }
func (a *Arena) Bombs() []*Bomb           { return a.bombs }
func (a *Arena) Enemies() []*Enemy        { return a.enemies }
func (a *Arena) Blocks() []Block          { return a.blocks }
func (a *Arena) Stats() *monitoring.Stats { return a.stats }
func (a *Arena) Settings() bomb.Settings  { return a.settings }
func (a *Arena) IsWall(x, y int) bool     { return a.layout.IsTileBlocking(x, y) }
func (a *Arena) IsBlock(c Cell) bool      { return a.crates[c] }

// BombAt returns the bomb on a tile, or nil.
func (a *Arena) BombAt(c Cell) *Bomb {
	for _, b := range a.bombs {
		if b.Cell == c {
			return b
		}
	}
	return nil
}
