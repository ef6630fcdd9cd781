// Package formats provides level file format parsers.
package formats

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-boulder/internal/games/boulder/sim"
)

// YAMLLevel is the on-disk layout of a level file.
// Exactly one of Tiles (raw codes) or Rows (ASCII glyphs) must be set.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Tiles    [][]int           `yaml:"tiles,omitempty"`
	Rows     []string          `yaml:"rows,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// Level is a parsed level, not yet validated against the simulator.
type Level struct {
	ID       string
	Name     string
	Tiles    [][]int
	Metadata map[string]string
}

var (
	ErrMissingID    = errors.New("level has no id")
	ErrNoLayout     = errors.New("level has neither tiles nor rows")
	ErrDoubleLayout = errors.New("level has both tiles and rows")
)

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if yl.ID == "" {
		return Level{}, ErrMissingID
	}

	tiles := yl.Tiles
	switch {
	case len(yl.Tiles) > 0 && len(yl.Rows) > 0:
		return Level{}, ErrDoubleLayout
	case len(yl.Rows) > 0:
		parsed, err := sim.ParseRows(yl.Rows)
		if err != nil {
			return Level{}, fmt.Errorf("rows: %w", err)
		}
		tiles = parsed
	case len(yl.Tiles) == 0:
		return Level{}, ErrNoLayout
	}

	name := yl.Name
	if name == "" {
		name = yl.ID
	}

	return Level{
		ID:       yl.ID,
		Name:     name,
		Tiles:    tiles,
		Metadata: yl.Metadata,
	}, nil
}

// MarshalYAML encodes a level using the ASCII row layout.
func MarshalYAML(l Level) ([]byte, error) {
	rows := make([]string, len(l.Tiles))
	for y, row := range l.Tiles {
		rs := make([]rune, len(row))
		for x, code := range row {
			t, ok := sim.TileFromCode(sim.Code(code))
			if !ok {
				return nil, fmt.Errorf("unknown tile code %d at (%d,%d)", code, x, y)
			}
			rs[x] = sim.Glyph(t)
		}
		rows[y] = string(rs)
	}

	return yaml.Marshal(YAMLLevel{
		ID:       l.ID,
		Name:     l.Name,
		Rows:     rows,
		Metadata: l.Metadata,
	})
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
