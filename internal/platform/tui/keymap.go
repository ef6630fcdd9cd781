package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-boulder/internal/config"
	"github.com/vovakirdan/tui-boulder/internal/core"
)

// KeyMap holds the key bindings shared by the game, the level menu and the
// journal view. Movement and game keys come from the configuration; the rest
// are fixed.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
	Back    key.Binding

	Select     key.Binding
	Stats      key.Binding
	NextLevel  key.Binding
	PrevLevel  key.Binding
	Help       key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds the key map from configured bindings.
func NewKeyMap(b config.KeyBindings) KeyMap {
	return KeyMap{
		Up:      bind(b.Up, "move up"),
		Down:    bind(b.Down, "move down"),
		Left:    bind(b.Left, "move left"),
		Right:   bind(b.Right, "move right"),
		Pause:   bind(b.Pause, "pause"),
		Restart: bind(b.Restart, "restart"),
		Quit:    bind(b.Quit, "quit"),
		Back:    bind(b.Back, "back"),

		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Stats: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "journal"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "n"),
			key.WithHelp("tab/n", "next level"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "N"),
			key.WithHelp("shift+tab/N", "prev level"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// DefaultKeyMap returns the key map for the built-in bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultBoulderConfig().Keys)
}

func bind(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpLabel(keys), desc),
	)
}

// helpLabel shows at most the first two keys of a binding.
func helpLabel(keys []string) string {
	if len(keys) > 2 {
		keys = keys[:2]
	}
	labels := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case "up":
			labels[i] = "↑"
		case "down":
			labels[i] = "↓"
		case "left":
			labels[i] = "←"
		case "right":
			labels[i] = "→"
		case " ":
			labels[i] = "space"
		default:
			labels[i] = k
		}
	}
	return strings.Join(labels, "/")
}

// ShortHelp implements help.KeyMap for the in-game footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Back, k.Help}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Pause, k.Restart, k.Screenshot},
		{k.Back, k.Quit, k.Help},
	}
}

// Action translates a key press to a game action.
// Unbound keys map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionStats
	MenuActionBack
	MenuActionQuit
)

// MenuAction translates a key press to a menu action.
func (k KeyMap) MenuAction(msg tea.KeyMsg) MenuAction {
	switch {
	case key.Matches(msg, k.Quit):
		return MenuActionQuit
	case key.Matches(msg, k.Select):
		return MenuActionSelect
	case key.Matches(msg, k.Stats):
		return MenuActionStats
	case key.Matches(msg, k.Back):
		return MenuActionBack
	case key.Matches(msg, k.Up):
		return MenuActionUp
	case key.Matches(msg, k.Down):
		return MenuActionDown
	}
	return MenuActionNone
}

// menuHelp is the help.KeyMap shown under the level list.
type menuHelp struct{ k KeyMap }

func (h menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.Select, h.k.Stats, h.k.Quit}
}

func (h menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// statsHelp is the help.KeyMap shown under the journal table.
type statsHelp struct{ k KeyMap }

func (h statsHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.k.Up, h.k.Down, h.k.NextLevel, h.k.PrevLevel, h.k.Back, h.k.Quit}
}

func (h statsHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
