// Package config provides YAML-based configuration loading for boulder.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// BoulderConfig contains all user-tunable settings.
type BoulderConfig struct {
	Sim     SimConfig     `yaml:"sim"`
	Levels  LevelsConfig  `yaml:"levels"`
	Journal JournalConfig `yaml:"journal"`
	Keys    KeyBindings   `yaml:"keys"`
	Theme   ThemeConfig   `yaml:"theme"`
}

// SimConfig defines simulation timing.
type SimConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second
}

// LevelsConfig defines where user levels come from.
type LevelsConfig struct {
	Dir   string `yaml:"dir"`   // Directory of YAML level files, "~" expanded
	Watch bool   `yaml:"watch"` // Reload levels when files change
}

// JournalConfig defines the play journal.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"` // SQLite file, "~" expanded
}

// KeyBindings maps each action to the key names that trigger it.
// Names follow Bubble Tea's KeyMsg.String() form ("up", "ctrl+c", "w").
type KeyBindings struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
	Back    []string `yaml:"back"`
}

// ThemeConfig overrides tile colors. Values are hex ("#ccffcc") or ANSI
// 256 indexes ("245"); empty keeps the built-in color.
type ThemeConfig struct {
	Flux        string `yaml:"flux"`
	Unbreakable string `yaml:"unbreakable"`
	Stone       string `yaml:"stone"`
	Box         string `yaml:"box"`
	Player      string `yaml:"player"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Bindings returns the bindings keyed by action name, in a fixed order.
func (k KeyBindings) Bindings() []NamedBinding {
	return []NamedBinding{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"pause", k.Pause},
		{"restart", k.Restart},
		{"quit", k.Quit},
		{"back", k.Back},
	}
}

// NamedBinding is one action and its keys.
type NamedBinding struct {
	Action string
	Keys   []string
}

// Validate checks the configuration for values the game cannot run with.
func (c BoulderConfig) Validate() error {
	if c.Sim.TickRate <= 0 {
		return fmt.Errorf("%w: sim.tick_rate must be positive, got %d", ErrInvalid, c.Sim.TickRate)
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return fmt.Errorf("%w: journal.path is required when the journal is enabled", ErrInvalid)
	}

	owner := make(map[string]string)
	for _, b := range c.Keys.Bindings() {
		if len(b.Keys) == 0 {
			return fmt.Errorf("%w: keys.%s has no bindings", ErrInvalid, b.Action)
		}
		for _, key := range b.Keys {
			if key == "" {
				return fmt.Errorf("%w: keys.%s contains an empty key", ErrInvalid, b.Action)
			}
			if prev, ok := owner[key]; ok && prev != b.Action {
				actions := []string{prev, b.Action}
				sort.Strings(actions)
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, key, actions[0], actions[1])
			}
			owner[key] = b.Action
		}
	}
	return nil
}
