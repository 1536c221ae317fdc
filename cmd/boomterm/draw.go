package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"boomgrid/internal/arena"
	"boomgrid/internal/bomb"
)

// cellWidth keeps tiles roughly square in a terminal
const cellWidth = 2

var (
	styleFloor   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorSlateGray)
	styleBlock   = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown)
	styleIdle    = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleTicking = tcell.StyleDefault.Foreground(tcell.ColorOrange).Bold(true)
	styleBooming = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleEnemy   = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleDead    = tcell.StyleDefault.Foreground(tcell.ColorGray).Reverse(true)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

func (t *terminal) draw() {
	t.screen.Clear()
	a := t.arena

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			switch {
			case a.IsWall(x, y):
				t.put(x, y, '█', styleWall)
			case a.IsBlock(arena.Cell{X: x, Y: y}):
				t.put(x, y, '▒', styleBlock)
			default:
				t.put(x, y, '·', styleFloor)
			}
		}
	}

	for _, b := range a.Bombs() {
		switch b.State() {
		case bomb.Halting:
			t.put(b.Cell.X, b.Cell.Y, 'o', styleIdle)
		case bomb.Ticking:
			t.put(b.Cell.X, b.Cell.Y, 'O', styleTicking)
		case bomb.Booming:
			t.put(b.Cell.X, b.Cell.Y, '*', styleBooming)
		}
	}

	for _, e := range a.Enemies() {
		c := e.Cell()
		t.put(c.X, c.Y, 'E', styleEnemy)
	}

	p := a.Player()
	if p.Alive() {
		t.put(p.Cell().X, p.Cell().Y, '@', stylePlayer)
	} else {
		t.put(p.Cell().X, p.Cell().Y, 'x', styleDead)
	}

	snap := a.Stats().Snapshot()
	row := a.Height() + 1
	t.text(0, row, fmt.Sprintf("enemies %d  plants %d  detonations %d  chains %d",
		len(a.Enemies()), snap.Plants, snap.Detonations, snap.Propagations))
	t.text(0, row+1, "move: arrows/wasd/hjkl  activate: space  reset: r  quit: esc")

	switch {
	case a.Lost():
		t.text(0, row+3, "BOOM. You were caught in the blast. Press r.")
	case a.Won():
		t.text(0, row+3, "Arena cleared! Press r to play again.")
	}

	t.screen.Show()
}

func (t *terminal) put(x, y int, r rune, style tcell.Style) {
	for i := 0; i < cellWidth; i++ {
		t.screen.SetContent(x*cellWidth+i, y, r, nil, style)
	}
}

func (t *terminal) text(x, y int, s string) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, styleText)
	}
}
