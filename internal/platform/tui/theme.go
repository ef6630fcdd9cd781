package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains the styles for the menu and journal screens.
// The board itself is colored cell by cell in RenderScreen.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style

	ItemNormal lipgloss.Style
	ItemActive lipgloss.Style
	ItemMeta   lipgloss.Style

	Panel     lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	Empty     lipgloss.Style
	Help      lipgloss.Style
	Error     lipgloss.Style
}

// DefaultStyles returns the default screen styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		ItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
		ItemMeta:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		TabActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1),
		TabIdle: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2),
		Help:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error: lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
}
