package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"boomgrid/internal/arena"
	"boomgrid/internal/bomb"
)

var (
	colorBackground = color.RGBA{18, 18, 24, 255}
	colorFloor      = color.RGBA{40, 42, 54, 255}
	colorWall       = color.RGBA{90, 90, 110, 255}
	colorBlock      = color.RGBA{140, 100, 60, 255}
	colorBombIdle   = color.RGBA{70, 70, 80, 255}
	colorBombArmed  = color.RGBA{255, 160, 40, 255}
	colorBlastRing  = color.RGBA{255, 70, 40, 255}
	colorFlash      = color.RGBA{255, 240, 180, 255}
	colorEnemy      = color.RGBA{200, 60, 200, 255}
	colorPlayer     = color.RGBA{60, 200, 255, 255}
	colorDeadPlayer = color.RGBA{90, 90, 90, 255}
)

func (g *Game) tile() float32 {
	return float32(g.cfg.GetTileSize())
}

// toScreen converts a tile-space point to pixels
func (g *Game) toScreen(x, y float64) (float32, float32) {
	ts := g.tile()
	return float32(x) * ts, float32(y) * ts
}

func (g *Game) drawTiles(screen *ebiten.Image) {
	ts := g.tile()
	for y := 0; y < g.arena.Height(); y++ {
		for x := 0; x < g.arena.Width(); x++ {
			c := colorFloor
			if g.arena.IsWall(x, y) {
				c = colorWall
			}
			vector.DrawFilledRect(screen, float32(x)*ts, float32(y)*ts, ts-1, ts-1, c, false)

			if left, ok := g.flashes[arena.Cell{X: x, Y: y}]; ok {
				alpha := uint8(255 * left / flashDuration)
				flash := color.RGBA{colorFlash.R, colorFlash.G, colorFlash.B, alpha}
				vector.DrawFilledRect(screen, float32(x)*ts, float32(y)*ts, ts-1, ts-1, flash, false)
			}
		}
	}

	for _, b := range g.arena.Blocks() {
		pad := ts * 0.08
		vector.DrawFilledRect(screen, float32(b.Cell.X)*ts+pad, float32(b.Cell.Y)*ts+pad, ts-2*pad, ts-2*pad, colorBlock, false)
	}
}

func (g *Game) drawBombs(screen *ebiten.Image) {
	ts := g.tile()
	settings := g.arena.Settings()

	for _, b := range g.arena.Bombs() {
		pos := b.Position()
		cx, cy := g.toScreen(pos.X, pos.Y)
		radius := float32(g.cfg.Bomb.Size/2) * ts

		switch b.State() {
		case bomb.Halting:
			vector.DrawFilledCircle(screen, cx, cy, radius, colorBombIdle, true)

		case bomb.Ticking:
			// pulse faster as the fuse burns down
			progress := b.Elapsed() / settings.FuseDelay
			pulse := 0.5 + 0.5*math.Sin(progress*progress*8*math.Pi)
			c := colorBombArmed
			c.G = uint8(float64(colorBombArmed.G) * pulse)
			if b.Visible() {
				vector.DrawFilledCircle(screen, cx, cy, radius, c, true)
			}

		case bomb.Booming:
			fade := 1 - b.Elapsed()/settings.BoomDuration
			ring := colorBlastRing
			ring.A = uint8(255 * math.Max(fade, 0))
			vector.StrokeCircle(screen, cx, cy, float32(settings.BlastRadius)*ts, 2, ring, true)
			vector.DrawFilledCircle(screen, cx, cy, radius*0.5, ring, true)
		}
	}
}

func (g *Game) drawEnemies(screen *ebiten.Image) {
	ts := g.tile()
	size := float32(g.cfg.Enemy.Size) * ts
	for _, e := range g.arena.Enemies() {
		x, y := g.toScreen(e.X, e.Y)
		vector.DrawFilledRect(screen, x-size/2, y-size/2, size, size, colorEnemy, true)
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	ts := g.tile()
	p := g.arena.Player()
	x, y := g.toScreen(p.X, p.Y)

	c := colorPlayer
	if !p.Alive() {
		c = colorDeadPlayer
	}
	vector.DrawFilledCircle(screen, x, y, float32(g.cfg.Player.Size/2)*ts, c, true)
	vector.StrokeCircle(screen, x, y, float32(p.Reach)*ts, 1, color.RGBA{60, 200, 255, 60}, true)
}
