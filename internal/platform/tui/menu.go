package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/registry"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

// MenuItem represents a selectable level in the menu.
type MenuItem struct {
	LevelID  string
	Title    string
	Sessions int // Journal sessions recorded for the level
}

// MenuModel is the Bubble Tea model for the level picker.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	offset    int // First visible item
	width     int
	height    int
	config    core.RuntimeConfig
	keys      KeyMap
	help      help.Model
	styles    Styles
	quitting  bool
	selected  *MenuItem
	openStats bool
}

// NewMenuModel creates a level menu. summaries may be nil when the journal
// is disabled.
func NewMenuModel(games []registry.GameInfo, summaries []storage.Summary, keys KeyMap, cfg core.RuntimeConfig) MenuModel {
	plays := make(map[string]int, len(summaries))
	for _, s := range summaries {
		plays[s.LevelID] = s.Sessions
	}

	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			LevelID:  g.ID,
			Title:    g.Title,
			Sessions: plays[g.ID],
		})
	}

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   keys,
		help:   help.New(),
		styles: DefaultStyles(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.ensureVisible()
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}

	case MenuActionStats:
		m.openStats = true
		return m, tea.Quit
	}

	m.ensureVisible()
	return m, nil
}

// visibleItems is the number of list rows that fit under the header.
func (m MenuModel) visibleItems() int {
	// title, subtitle, blank lines and help footer
	return max(1, m.height-8)
}

func (m *MenuModel) ensureVisible() {
	n := m.visibleItems()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+n {
		m.offset = m.cursor - n + 1
	}
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil || m.openStats {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Title.Render("B O U L D E R"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.styles.Subtitle.Render("Select a level"), m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(m.styles.Empty.Render("No levels found."), m.width))
		b.WriteString("\n")
	}

	end := min(len(m.items), m.offset+m.visibleItems())
	for i := m.offset; i < end; i++ {
		b.WriteString(centerText(m.renderItem(i), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Help.Render(m.help.View(menuHelp{m.keys})), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) renderItem(i int) string {
	item := m.items[i]

	var meta string
	switch item.Sessions {
	case 0:
		meta = "new"
	case 1:
		meta = "1 session"
	default:
		meta = fmt.Sprintf("%d sessions", item.Sessions)
	}

	if i == m.cursor {
		return m.styles.ItemActive.Render("> "+item.Title) + " " + m.styles.ItemMeta.Render("("+meta+")")
	}
	return m.styles.ItemNormal.Render("  "+item.Title) + " " + m.styles.ItemMeta.Render("("+meta+")")
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsStats returns true if user asked for the journal.
func (m MenuModel) WantsStats() bool {
	return m.openStats
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult contains the result of running the menu.
type MenuResult struct {
	LevelID    string
	Quit       bool
	WantsStats bool
	Config     core.RuntimeConfig
}

// RunMenu shows the level picker and returns the player's choice.
func RunMenu(games []registry.GameInfo, summaries []storage.Summary, keys KeyMap, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(games, summaries, keys, cfg), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	result := MenuResult{
		Quit:       m.IsQuitting(),
		WantsStats: m.WantsStats(),
		Config:     m.Config(),
	}
	if sel := m.Selected(); sel != nil {
		result.LevelID = sel.LevelID
	}
	return result, nil
}

// centerText centers text within given width. Styled text is measured
// by its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
