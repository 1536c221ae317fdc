package arena

import (
	"errors"
	"fmt"
)

// Layout glyphs
const (
	glyphFloor  = '.'
	glyphWall   = '#'
	glyphBlock  = 'X'
	glyphBomb   = 'B'
	glyphEnemy  = 'E'
	glyphPlayer = 'P'
)

var ErrLayout = errors.New("invalid arena layout")

// Cell is a tile coordinate.
type Cell struct {
	X, Y int
}

// layout is the parsed form of the configured rows
type layout struct {
	width, height int
	walls         [][]bool
	player        Cell
	bombs         []Cell
	enemies       []Cell
	blocks        []Cell
}

func parseLayout(rows []string) (*layout, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrLayout)
	}

	l := &layout{
		width:  len(rows[0]),
		height: len(rows),
		walls:  make([][]bool, len(rows)),
	}
	if l.width == 0 {
		return nil, fmt.Errorf("%w: empty first row", ErrLayout)
	}

	players := 0
	for y, row := range rows {
		if len(row) != l.width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrLayout, y, len(row), l.width)
		}
		l.walls[y] = make([]bool, l.width)

		for x, glyph := range []byte(row) {
			cell := Cell{X: x, Y: y}
			switch glyph {
			case glyphFloor:
			case glyphWall:
				l.walls[y][x] = true
			case glyphBlock:
				l.blocks = append(l.blocks, cell)
			case glyphBomb:
				l.bombs = append(l.bombs, cell)
			case glyphEnemy:
				l.enemies = append(l.enemies, cell)
			case glyphPlayer:
				l.player = cell
				players++
			default:
				return nil, fmt.Errorf("%w: unknown glyph %q at (%d, %d)", ErrLayout, glyph, x, y)
			}
		}
	}

	if players != 1 {
		return nil, fmt.Errorf("%w: found %d players, want exactly 1", ErrLayout, players)
	}
	return l, nil
}

// IsTileBlocking implements collision.TileChecker
func (l *layout) IsTileBlocking(tileX, tileY int) bool {
	if tileX < 0 || tileY < 0 || tileY >= l.height || tileX >= l.width {
		return true
	}
	return l.walls[tileY][tileX]
}

// GetWorldBounds implements collision.TileChecker
func (l *layout) GetWorldBounds() (width, height int) {
	return l.width, l.height
}
