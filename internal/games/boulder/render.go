package boulder

import (
	"fmt"

	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/sim"
)

// glyphs holds the two-column terminal form of each visible tile.
var glyphs = map[sim.Kind][2]rune{
	sim.KindFlux:        {'░', '░'},
	sim.KindUnbreakable: {'█', '█'},
	sim.KindStone:       {'(', ')'},
	sim.KindBox:         {'[', ']'},
	sim.KindKey:         {'o', '='},
	sim.KindLock:        {'▐', '▌'},
	sim.KindPlayer:      {'@', '@'},
}

// Render draws the HUD and the board.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.sim == nil {
		msg := "Level failed to load"
		if g.err != nil {
			msg = g.err.Error()
		}
		g.renderOverlay(dst, msg, "Fix the level file or press B")
		return
	}

	w, h := g.sim.Size()
	boardW, boardH := w*g.cellW, h*g.cellH
	needW, needH := boardW+2, boardH+g.hudHeight+2
	if needW > dst.Width() || needH > dst.Height() {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	originX := (dst.Width() - boardW) / 2
	originY := g.hudHeight + 1 + (dst.Height()-needH)/2

	dst.DrawBox(core.NewRect(originX-1, originY-1, boardW+2, boardH+2), core.ColorDim)
	g.renderBoard(dst, originX, originY)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderBoard paints every tile from its draw descriptor, then the player.
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	w, h := g.sim.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := sim.C(x, y)
			t := g.sim.Tile(c)
			g.paint(dst, ox, oy, t.Kind, t.DrawDescriptor(c))
		}
	}
	player := sim.Player{Pos: g.sim.Player()}
	g.paint(dst, ox, oy, sim.KindPlayer, player.DrawDescriptor())
}

func (g *Game) paint(dst *core.Screen, ox, oy int, k sim.Kind, d sim.Draw) {
	if !d.Visible {
		return
	}
	r := d.Rect.Scale(sim.TileSize, g.cellW, g.cellH)
	color := g.theme.colorFor(k, d.Color)
	pair := glyphs[k]
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dst.SetColored(ox+x, oy+y, pair[(x-r.X)%2], color)
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.State()
	hud := fmt.Sprintf(" Boulder | %s | Tick: %d | Moves: %d | Pushes: %d | Keys: %d",
		g.Title(), s.Tick, s.Moves, s.Pushes, s.Keys)
	dst.DrawTextColored(0, 0, hud, core.ColorAccent)

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect((dst.Width()-maxLen-4)/2, (dst.Height()-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorWarn)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorWhite)
}
