// Package levels loads boulder levels from YAML files, both bundled with the
// binary and from a user directory.
// This package depends on sim but sim does not depend on levels.
package levels

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels/formats"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/sim"
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Tiles    [][]int
	Metadata map[string]string
	FilePath string
}

// Size returns the level dimensions.
func (l Level) Size() (w, h int) {
	if len(l.Tiles) == 0 {
		return 0, 0
	}
	return len(l.Tiles[0]), len(l.Tiles)
}

// NewSimulator builds a fresh simulator at the level's start state.
func (l Level) NewSimulator() (*sim.Simulator, error) {
	s, err := sim.Initialize(l.Tiles)
	if err != nil {
		return nil, fmt.Errorf("levels: %s: %w", l.ID, err)
	}
	return s, nil
}

// Validate checks that the level can start a simulation.
func (l Level) Validate() error {
	_, err := l.NewSimulator()
	return err
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger
}

// NewLoader creates a new level loader. A nil logger discards warnings.
func NewLoader(root string, logger *log.Logger) *Loader {
	return &Loader{Root: root, Logger: logger}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse or validate are skipped with a warning.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	return loadFS(os.DirFS(l.Root), l.Root, l.Logger)
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("levels: reading file %s: %w", path, err)
	}
	return parseLevel(data, path)
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}
	return find(levels, id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	return ids(levels), nil
}

// loadFS walks fsys and loads every supported file. prefix is joined to
// each relative path to form Level.FilePath.
func loadFS(fsys fs.FS, prefix string, logger *log.Logger) ([]Level, error) {
	var levels []Level
	seen := make(map[string]string)

	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsLevelFile(path) {
			return nil
		}

		full := filepath.Join(prefix, filepath.FromSlash(path))
		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			warn(logger, "skipping unreadable level", "path", full, "error", err)
			return nil
		}
		level, err := parseLevel(data, full)
		if err != nil {
			warn(logger, "skipping invalid level", "path", full, "error", err)
			return nil
		}
		if other, dup := seen[level.ID]; dup {
			warn(logger, "skipping duplicate level id", "id", level.ID, "path", full, "first", other)
			return nil
		}
		seen[level.ID] = full

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking %s: %w", prefix, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})
	return levels, nil
}

func parseLevel(data []byte, path string) (Level, error) {
	parsed, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Level{}, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}

	level := Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Tiles:    parsed.Tiles,
		Metadata: parsed.Metadata,
		FilePath: path,
	}
	if err := level.Validate(); err != nil {
		return Level{}, err
	}
	return level, nil
}

// IsLevelFile reports whether path has a supported level extension.
func IsLevelFile(path string) bool {
	return slices.Contains(formats.FormatExtensions(), strings.ToLower(filepath.Ext(path)))
}

func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}

func find(levels []Level, id string) (Level, error) {
	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}
	return Level{}, fmt.Errorf("levels: level not found: %s", id)
}

func ids(levels []Level) []string {
	out := make([]string, len(levels))
	for i, lvl := range levels {
		out[i] = lvl.ID
	}
	return out
}

func warn(logger *log.Logger, msg string, keyvals ...any) {
	if logger != nil {
		logger.Warn(msg, keyvals...)
	}
}
