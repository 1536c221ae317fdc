package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"boomgrid/internal/arena"
	"boomgrid/internal/bomb"
)

const hudPadding = 8

var (
	hudText   = color.RGBA{220, 220, 230, 255}
	hudWin    = color.RGBA{120, 255, 140, 255}
	hudLose   = color.RGBA{255, 90, 90, 255}
	hudShadow = color.RGBA{0, 0, 0, 180}
)

// stateCounts tallies bombs per state
func stateCounts(a *arena.Arena) map[bomb.State]int {
	counts := make(map[bomb.State]int, 3)
	for _, b := range a.Bombs() {
		counts[b.State()]++
	}
	return counts
}

// hudLines builds the status text shown under the arena
func hudLines(a *arena.Arena) []string {
	counts := stateCounts(a)
	snap := a.Stats().Snapshot()

	return []string{
		fmt.Sprintf("bombs  idle %d  ticking %d  booming %d    enemies %d",
			counts[bomb.Halting], counts[bomb.Ticking], counts[bomb.Booming], len(a.Enemies())),
		fmt.Sprintf("plants %d  detonations %d  chains %d  kills %d    frame %.2fms",
			snap.Plants, snap.Detonations, snap.Propagations, snap.EnemiesRemoved,
			float64(snap.AvgFrame.Microseconds())/1000),
		"move: arrows/WASD   activate: space/middle click   reset: R   quit: Esc",
	}
}

// banner returns the end-of-round message, if any
func banner(a *arena.Arena) (string, color.Color) {
	switch {
	case a.Lost():
		return "BOOM. You were caught in the blast. Press R.", hudLose
	case a.Won():
		return "Arena cleared! Press R to play again.", hudWin
	default:
		return "", nil
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	face := basicfont.Face7x13
	top := g.arena.Height()*g.cfg.World.TileSize + hudPadding

	for i, line := range hudLines(g.arena) {
		ebitext.Draw(screen, line, face, hudPadding, top+face.Ascent+i*(face.Height+2), hudText)
	}

	msg, clr := banner(g.arena)
	if msg == "" {
		return
	}
	width := font.MeasureString(face, msg).Round()
	sw, sh := g.cfg.GetScreenWidth(), g.arena.Height()*g.cfg.World.TileSize
	x, y := (sw-width)/2, sh/2
	vector.DrawFilledRect(screen, float32(x-hudPadding), float32(y-face.Ascent-hudPadding),
		float32(width+2*hudPadding), float32(face.Height+2*hudPadding), hudShadow, false)
	ebitext.Draw(screen, msg, face, x, y, clr)
}
