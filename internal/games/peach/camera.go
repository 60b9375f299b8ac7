package peach

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// camera maps grid cells to screen cells. One sprite is one cell. Grid rows
// count up from the bottom; screen rows count down from the top.
type camera struct {
	viewW, viewH int
	x, y         int // Top-left visible cell; y counts rows from the top of the level
	offX, offY   int // Padding when the level is smaller than the view
}

func (c *camera) resize(w, h int) {
	c.viewW = core.Max(w, 0)
	c.viewH = core.Max(h, 0)
}

// follow centers the view on (col, row) without scrolling past the level edges.
func (c *camera) follow(col, row, gridW, gridH int) {
	top := gridH - 1 - row
	c.x = core.Clamp(col-c.viewW/2, 0, core.Max(gridW-c.viewW, 0))
	c.y = core.Clamp(top-c.viewH/2, 0, core.Max(gridH-c.viewH, 0))
	c.offX = core.Max((c.viewW-gridW)/2, 0)
	c.offY = core.Max(c.viewH-gridH, 0)
}

// project returns the screen cell of grid cell (col, row).
func (c *camera) project(col, row, gridH int) (int, int, bool) {
	sx := col - c.x + c.offX
	sy := gridH - 1 - row - c.y + c.offY
	if sx < 0 || sx >= c.viewW || sy < 0 || sy >= c.viewH {
		return 0, 0, false
	}
	return sx, sy + hudRows, true
}

// cellOf converts world units to a grid cell.
func cellOf(x, y, spriteW, spriteH float64) (int, int) {
	return int(math.Floor(x / spriteW)), int(math.Floor(y / spriteH))
}

// followPeach recenters the camera on Peach, if she is on the field.
func (g *Game) followPeach() {
	if g.world == nil || g.grid == nil {
		return
	}
	p := g.world.Player()
	if p == nil {
		return
	}
	col, row := cellOf(p.X(), p.Y(), g.cfg.Sprite.Width, g.cfg.Sprite.Height)
	g.camera.follow(col, row, g.grid.Width, g.grid.Height)
}
