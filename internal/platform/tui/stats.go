package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-boulder/internal/registry"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

const (
	maxSessions        = 50
	sidebarWidth       = 24
	minWidthForSidebar = 90
)

// StatsModel is the Bubble Tea model for the play journal screen.
type StatsModel struct {
	levels      []registry.GameInfo
	cursor      int
	store       *storage.Store
	sessions    []storage.Session
	summary     storage.Summary
	loadErr     error
	table       table.Model
	help        help.Model
	keys        KeyMap
	styles      Styles
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewStatsModel creates a journal view over the given levels.
func NewStatsModel(store *storage.Store, levels []registry.GameInfo, keys KeyMap, width, height int) StatsModel {
	m := StatsModel{
		levels:      levels,
		store:       store,
		keys:        keys,
		help:        help.New(),
		styles:      DefaultStyles(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	if len(m.levels) > 0 {
		m.load(m.levels[0].ID)
	}
	return m
}

func (m *StatsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Ticks", Width: 7},
		{Title: "Moves", Width: 6},
		{Title: "Bumps", Width: 6},
		{Title: "Pushes", Width: 7},
		{Title: "Keys", Width: 5},
		{Title: "Time", Width: 8},
		{Title: "Played", Width: 13},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the journal for one level.
func (m *StatsModel) load(levelID string) {
	m.sessions, m.summary, m.loadErr = nil, storage.Summary{LevelID: levelID}, nil
	if m.store != nil {
		m.sessions, m.loadErr = m.store.RecentSessions(levelID, maxSessions)
		if m.loadErr == nil {
			m.summary, m.loadErr = m.store.LevelSummary(levelID)
		}
	}
	m.updateRows()
}

func (m *StatsModel) updateRows() {
	rows := make([]table.Row, len(m.sessions))
	for i, s := range m.sessions {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", s.Ticks),
			fmt.Sprintf("%d", s.Moves),
			fmt.Sprintf("%d", s.Rejected),
			fmt.Sprintf("%d", s.Pushes),
			fmt.Sprintf("%d", s.Keys),
			s.Duration().Round(time.Second).String(),
			s.StartedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *StatsModel) move(delta int) {
	if len(m.levels) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.levels)) % len(m.levels)
	m.load(m.levels[m.cursor].ID)
}

// Init initializes the journal model.
func (m StatsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the journal screen.
func (m StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextLevel), key.Matches(msg, m.keys.Right):
			m.move(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel), key.Matches(msg, m.keys.Left):
			m.move(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the journal screen.
func (m StatsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "JOURNAL"
	if len(m.levels) > 0 {
		title = "JOURNAL - " + m.levels[m.cursor].Title
	}
	b.WriteString(centerText(m.styles.Title.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.styles.Subtitle.Render(m.summaryLine()), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render(m.help.View(statsHelp{m.keys})))

	return b.String()
}

func (m StatsModel) summaryLine() string {
	s := m.summary
	if s.Sessions == 0 {
		return "not played yet"
	}
	return fmt.Sprintf("%d sessions | %d ticks | %d moves | %d pushes | %d keys | last %s",
		s.Sessions, s.Ticks, s.Moves, s.Pushes, s.Keys, s.LastPlayed.Local().Format("Jan 02 15:04"))
}

// renderWideLayout renders the level list beside the table.
func (m StatsModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Levels\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, lvl := range m.levels {
		name := truncate(lvl.Title, sidebarWidth-6)
		if i == m.cursor {
			sidebar.WriteString(m.styles.ItemActive.Render("> " + name))
		} else {
			sidebar.WriteString(m.styles.ItemNormal.Render("  " + name))
		}
		sidebar.WriteString("\n")
	}

	left := m.styles.Panel.Width(sidebarWidth).Render(sidebar.String())
	right := m.styles.Panel.Render(m.renderTableContent())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// renderNarrowLayout shows the current level between arrows above the table.
func (m StatsModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.levels) > 0 {
		tab := m.styles.TabActive.Render(truncate(m.levels[m.cursor].Title, 20))
		b.WriteString(centerText(m.styles.TabIdle.Render("< ")+tab+m.styles.TabIdle.Render(" >"), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(m.styles.Panel.Render(m.renderTableContent()), m.width))
	return b.String()
}

func (m StatsModel) renderTableContent() string {
	switch {
	case m.store == nil:
		return m.styles.Empty.Render("The journal is disabled.")
	case m.loadErr != nil:
		return m.styles.Error.Render("Could not read the journal:\n" + m.loadErr.Error())
	case len(m.sessions) == 0:
		return m.styles.Empty.Render("No sessions recorded yet.\nPlay the level to start its journal.")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m StatsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m StatsModel) IsQuitting() bool {
	return m.quitting
}

// RunStats runs the journal screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunStats(store *storage.Store, levels []registry.GameInfo, keys KeyMap, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewStatsModel(store, levels, keys, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(StatsModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
