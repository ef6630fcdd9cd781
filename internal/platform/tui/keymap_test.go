package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boulder/internal/config"
	"github.com/vovakirdan/tui-boulder/internal/core"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestDefaultKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runes("w"), core.ActionUp},
		{"k", runes("k"), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runes("a"), core.ActionLeft},
		{"l", runes("l"), core.ActionRight},
		{"p", runes("p"), core.ActionPause},
		{"r", runes("r"), core.ActionRestart},
		{"q", runes("q"), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"unbound", runes("z"), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestCustomBindings(t *testing.T) {
	b := config.DefaultBoulderConfig().Keys
	b.Up = []string{"i"}
	b.Quit = []string{"x"}
	km := NewKeyMap(b)

	if got := km.Action(runes("i")); got != core.ActionUp {
		t.Errorf("i should move up, got %v", got)
	}
	if got := km.Action(runes("w")); got != core.ActionNone {
		t.Errorf("w is no longer bound, got %v", got)
	}
	if got := km.Action(runes("x")); got != core.ActionQuit {
		t.Errorf("x should quit, got %v", got)
	}
	if got := km.Action(runes("q")); got != core.ActionNone {
		t.Errorf("q is no longer bound, got %v", got)
	}
}

func TestMenuActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runes("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeySpace}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionStats},
		{runes("b"), MenuActionBack},
		{runes("q"), MenuActionQuit},
		{runes("z"), MenuActionNone},
	}

	for _, tc := range tests {
		if got := km.MenuAction(tc.msg); got != tc.want {
			t.Errorf("MenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestHelpLabel(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{[]string{"up", "w", "k"}, "↑/w"},
		{[]string{"p"}, "p"},
		{[]string{" ", "enter"}, "space/enter"},
	}
	for _, tc := range tests {
		if got := helpLabel(tc.keys); got != tc.want {
			t.Errorf("helpLabel(%q) = %q, expected %q", tc.keys, got, tc.want)
		}
	}
}
