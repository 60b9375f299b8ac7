package peach

import (
	"fmt"
	"sort"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/peach/world"
)

// sprite is how one kind looks on screen.
type sprite struct {
	glyph rune
	color core.Color
}

var sprites = map[world.Kind]sprite{
	world.KindPeach:           {'P', core.ColorPink},
	world.KindGoomba:          {'g', core.ColorBrown},
	world.KindKoopa:           {'k', core.ColorGreen},
	world.KindPiranha:         {'p', core.ColorBrightRed},
	world.KindBlock:           {'█', core.ColorBrown},
	world.KindPipe:            {'▓', core.ColorDarkGreen},
	world.KindStarBlock:       {'?', core.ColorGold},
	world.KindFlowerBlock:     {'?', core.ColorGold},
	world.KindMushroomBlock:   {'?', core.ColorGold},
	world.KindStar:            {'*', core.ColorBrightYellow},
	world.KindFlower:          {'%', core.ColorRed},
	world.KindMushroom:        {'^', core.ColorBrightRed},
	world.KindShell:           {'o', core.ColorGreen},
	world.KindPeachFireball:   {'●', core.ColorYellow},
	world.KindPiranhaFireball: {'●', core.ColorRed},
	world.KindFlag:            {'F', core.ColorBrightWhite},
	world.KindMario:           {'M', core.ColorBrightRed},
}

// starColors cycle while Peach is star-powered.
var starColors = []core.Color{
	core.ColorBrightYellow,
	core.ColorBrightCyan,
	core.ColorBrightMagenta,
	core.ColorBrightGreen,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	if g.hud != nil {
		dst.DrawTextColored(0, 0, g.StatusLine(), core.ColorBrightWhite)
	}

	if g.world != nil && g.grid != nil {
		g.renderEntities(dst)
	}

	g.renderOverlay(dst)
}

// renderEntities draws back to front so creatures stay visible in front of
// blocks and pickups.
func (g *Game) renderEntities(dst *core.Screen) {
	entities := g.world.Entities()
	sort.SliceStable(entities, func(i, j int) bool {
		return entities[i].Depth() > entities[j].Depth()
	})

	for _, e := range entities {
		if !e.Alive() {
			continue
		}
		col, row := cellOf(e.X(), e.Y(), g.cfg.Sprite.Width, g.cfg.Sprite.Height)
		sx, sy, ok := g.camera.project(col, row, g.grid.Height)
		if !ok {
			continue
		}

		sp := sprites[e.Kind()]
		if e.IsPlayer() {
			var visible bool
			sp, visible = g.peachSprite(sp)
			if !visible {
				continue
			}
		}
		dst.SetColored(sx, sy, sp.glyph, sp.color)
	}
}

// peachSprite applies the power-up look. Peach blinks while invincible.
func (g *Game) peachSprite(sp sprite) (sprite, bool) {
	p := g.world.Peach()
	if p == nil {
		return sp, true
	}
	if p.Invincible() && g.ticks%2 == 1 {
		return sp, false
	}
	switch {
	case p.HasStarPower():
		sp.color = starColors[g.ticks%len(starColors)]
	case p.HasShootPower():
		sp.color = core.ColorBrightRed
	}
	return sp, true
}

// renderOverlay draws run state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Points: %d  |  Press R to restart", g.hud.score)
		g.drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWon:
		subtitle := fmt.Sprintf("Final Points: %d  |  Press R to restart", g.hud.score)
		g.drawCenteredBox(dst, "YOU SAVED MARIO!", subtitle)

	case StateError:
		subtitle := fmt.Sprintf("Level %02d could not be loaded", g.level)
		g.drawCenteredBox(dst, "LEVEL ERROR", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
