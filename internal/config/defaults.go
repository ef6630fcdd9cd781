package config

import (
	_ "embed"
)

//go:embed defaults/boulder.yaml
var defaultBoulderYAML []byte

// DefaultBoulderConfig returns the hard-coded configuration, used when the
// embedded default cannot be parsed.
func DefaultBoulderConfig() BoulderConfig {
	return BoulderConfig{
		Sim: SimConfig{
			TickRate: 30,
		},
		Levels: LevelsConfig{
			Dir:   "~/.boulder/levels",
			Watch: false,
		},
		Journal: JournalConfig{
			Enabled: true,
			Path:    "~/.boulder/journal.db",
		},
		Keys: KeyBindings{
			Up:      []string{"up", "w", "k"},
			Down:    []string{"down", "s", "j"},
			Left:    []string{"left", "a", "h"},
			Right:   []string{"right", "d", "l"},
			Pause:   []string{"p"},
			Restart: []string{"r"},
			Quit:    []string{"q", "ctrl+c"},
			Back:    []string{"b", "esc"},
		},
		Theme: ThemeConfig{
			Flux:        "#ccffcc",
			Unbreakable: "#999999",
			Stone:       "#0000cc",
			Box:         "#8b4513",
			Player:      "#ff0000",
		},
	}
}
