package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boulder/internal/core"
)

// styleCache holds one foreground style per color seen so far.
// Level colors come from files, so the set is not known up front.
type styleCache struct {
	mu     sync.Mutex
	styles map[core.Color]lipgloss.Style
}

var colorStyles = &styleCache{styles: map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
}}

func (c *styleCache) get(color core.Color) lipgloss.Style {
	c.mu.Lock()
	defer c.mu.Unlock()

	if s, ok := c.styles[color]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(string(color)))
	c.styles[color] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(colorStyles.get(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
