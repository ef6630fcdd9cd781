package sim

import (
	"fmt"
	"strings"
)

// RenderASCII creates an ASCII representation of the current state.
// This is used for debugging, testing (golden outputs) and the headless runner.
//
// Format:
//   - Header line with tick, player position and pending inputs
//   - One line per row using the level glyphs ('#' wall, '.' air, '@' player,
//     'o'/'O' stone resting/falling, 'x'/'X' box, 'a'/'A' key/lock 1,
//     'b'/'B' key/lock 2, ':' flux)
func RenderASCII(s *Simulator) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Tick: %d | Player: %v | Pending: %d\n",
		s.tick, s.player.Pos, len(s.inputs)))
	sb.WriteString(RenderGrid(s.grid))
	return sb.String()
}

// RenderGrid renders just the grid without state info.
func RenderGrid(g *Grid) string {
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			sb.WriteRune(Glyph(g.Get(C(x, y))))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderGridCompact renders the grid as a single line (for hashing/comparison).
func RenderGridCompact(g *Grid) string {
	return strings.ReplaceAll(RenderGrid(g), "\n", "")
}
