package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/registry"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

var testGames = []registry.GameInfo{
	{ID: "ch02", Title: "Chapter 2"},
	{ID: "intro", Title: "Intro"},
	{ID: "pushing", Title: "Pushing"},
}

func menuSend(m MenuModel, msgs ...tea.Msg) MenuModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}
	return m
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(testGames, nil, DefaultKeyMap(), core.DefaultConfig())

	m = menuSend(m, tea.KeyMsg{Type: tea.KeyDown}, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.cursor)
	}

	m = menuSend(m, tea.KeyMsg{Type: tea.KeyEnter})
	sel := m.Selected()
	if sel == nil || sel.LevelID != "intro" {
		t.Fatalf("expected intro selected, got %+v", sel)
	}
	if m.IsQuitting() {
		t.Error("selecting is not quitting")
	}
}

func TestMenuQuitAndStats(t *testing.T) {
	m := menuSend(NewMenuModel(testGames, nil, DefaultKeyMap(), core.DefaultConfig()), runes("q"))
	if !m.IsQuitting() || m.Selected() != nil {
		t.Error("q should quit without a selection")
	}

	m = menuSend(NewMenuModel(testGames, nil, DefaultKeyMap(), core.DefaultConfig()), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsStats() {
		t.Error("tab should open the journal")
	}
}

func TestMenuShowsJournalCounts(t *testing.T) {
	summaries := []storage.Summary{
		{LevelID: "ch02", Sessions: 3, LastPlayed: time.Now()},
		{LevelID: "pushing", Sessions: 1},
	}
	m := NewMenuModel(testGames, summaries, DefaultKeyMap(), core.DefaultConfig())
	view := m.View()

	for _, want := range []string{"Chapter 2", "(3 sessions)", "(new)", "(1 session)", "B O U L D E R"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestMenuScrollsToCursor(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 9, TickRate: 30}
	m := NewMenuModel(testGames, nil, DefaultKeyMap(), cfg)
	if m.visibleItems() != 1 {
		t.Fatalf("expected one visible item, got %d", m.visibleItems())
	}

	m = menuSend(m, runes("j"), runes("j"))
	if m.offset != 2 {
		t.Errorf("expected offset 2, got %d", m.offset)
	}
	view := m.View()
	if !strings.Contains(view, "Pushing") || strings.Contains(view, "Intro") {
		t.Error("only the cursor item should be visible")
	}

	m = menuSend(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.Config().ScreenW != 100 || m.Config().ScreenH != 40 {
		t.Errorf("resize not tracked: %+v", m.Config())
	}
}

func TestCenterText(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText = %q", got)
	}
}
