package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boulder/internal/storage"
)

func statsSend(m StatsModel, msgs ...tea.Msg) StatsModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(StatsModel)
	}
	return m
}

func TestStatsLoadsSessionsPerLevel(t *testing.T) {
	store := openStore(t)
	start := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, id := range []string{"ch02", "ch02", "pushing"} {
		_, err := store.SaveSession(storage.Session{
			LevelID:   id,
			Ticks:     uint64(100 * (i + 1)),
			Moves:     10 + i,
			StartedAt: start.Add(time.Duration(i) * time.Hour),
			EndedAt:   start.Add(time.Duration(i)*time.Hour + time.Minute),
		})
		if err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}
	}

	m := NewStatsModel(store, testGames, DefaultKeyMap(), 120, 30)
	if len(m.sessions) != 2 || m.summary.Sessions != 2 {
		t.Fatalf("expected 2 ch02 sessions, got %d (summary %d)", len(m.sessions), m.summary.Sessions)
	}
	if !strings.Contains(m.View(), "JOURNAL - Chapter 2") {
		t.Error("title should name the level")
	}

	m = statsSend(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.cursor != 1 || len(m.sessions) != 0 {
		t.Errorf("intro has no sessions, got cursor %d with %d", m.cursor, len(m.sessions))
	}
	if !strings.Contains(m.View(), "No sessions recorded yet") {
		t.Error("empty level should say so")
	}

	m = statsSend(m, tea.KeyMsg{Type: tea.KeyTab})
	if len(m.sessions) != 1 || m.sessions[0].Moves != 12 {
		t.Errorf("unexpected pushing sessions %+v", m.sessions)
	}

	m = statsSend(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.cursor != 0 {
		t.Errorf("cursor should wrap to 0, got %d", m.cursor)
	}
	m = statsSend(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.cursor != 2 {
		t.Errorf("cursor should wrap to 2, got %d", m.cursor)
	}
}

func TestStatsBackAndQuit(t *testing.T) {
	m := statsSend(NewStatsModel(nil, testGames, DefaultKeyMap(), 60, 20), runes("b"))
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("b should go back")
	}

	m = statsSend(NewStatsModel(nil, testGames, DefaultKeyMap(), 60, 20), runes("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}

func TestStatsWithoutJournal(t *testing.T) {
	m := NewStatsModel(nil, testGames, DefaultKeyMap(), 60, 20)
	if !strings.Contains(m.View(), "The journal is disabled.") {
		t.Error("missing disabled notice")
	}

	m = statsSend(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if !m.showSidebar {
		t.Error("wide window should show the sidebar")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Chapter", 5); got != "Chap." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("Chap", 5); got != "Chap" {
		t.Errorf("truncate = %q", got)
	}
}
