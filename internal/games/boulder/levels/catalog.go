package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
)

// Catalog is the set of playable levels: the bundled ones plus any found in
// a user directory. A directory level replaces a bundled level with the same ID.
// It is safe for concurrent use.
type Catalog struct {
	dir    string
	logger *log.Logger

	mu     sync.RWMutex
	levels []Level
}

// NewCatalog creates a catalog. dir may be empty for bundled levels only.
func NewCatalog(dir string, logger *log.Logger) *Catalog {
	return &Catalog{dir: dir, logger: logger}
}

// Dir returns the user level directory, or "" if none.
func (c *Catalog) Dir() string {
	return c.dir
}

// Load (re)reads all levels.
// A missing user directory is not an error; the bundled levels are used alone.
func (c *Catalog) Load() ([]Level, error) {
	bundled, err := Bundled(c.logger)
	if err != nil {
		return nil, fmt.Errorf("levels: bundled: %w", err)
	}

	merged := bundled
	if c.dir != "" {
		local, err := NewLoader(c.dir, c.logger).LoadAll()
		switch {
		case errors.Is(err, fs.ErrNotExist):
			warn(c.logger, "level directory not found", "dir", c.dir)
		case err != nil:
			return nil, err
		default:
			merged = Merge(bundled, local, c.logger)
		}
	}

	c.mu.Lock()
	c.levels = merged
	c.mu.Unlock()

	return c.Levels(), nil
}

// Levels returns a copy of the loaded levels, sorted by ID.
func (c *Catalog) Levels() []Level {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Level, len(c.levels))
	copy(out, c.levels)
	return out
}

// Get returns the level with the given ID.
func (c *Catalog) Get(id string) (Level, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return find(c.levels, id)
}

// IDs returns the loaded level IDs in sorted order.
func (c *Catalog) IDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return ids(c.levels)
}

// ReloadFile re-reads one changed level file and updates the catalog.
// Whatever the file provided before is replaced, so a changed id does not
// leave the old level behind. If the file was removed, the level it provided
// is dropped and the bundled level with the same ID, if any, comes back.
func (c *Catalog) ReloadFile(path string) (Level, error) {
	abs := filepath.Clean(path)

	level, err := NewLoader(c.dir, c.logger).LoadFile(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return Level{}, c.dropFile(abs)
	}
	if err != nil {
		return Level{}, err
	}
	bundled, err := Bundled(c.logger)
	if err != nil {
		return Level{}, err
	}

	c.mu.Lock()
	c.levels = Merge(withoutFile(c.levels, bundled, abs), []Level{level}, nil)
	c.mu.Unlock()

	if c.logger != nil {
		c.logger.Info("level reloaded", "id", level.ID, "path", abs)
	}
	return level, nil
}

func (c *Catalog) dropFile(path string) error {
	bundled, err := Bundled(c.logger)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.levels = withoutFile(c.levels, bundled, path)
	c.mu.Unlock()

	return fmt.Errorf("levels: %s: %w", path, os.ErrNotExist)
}

// withoutFile removes the levels loaded from path, putting back the bundled
// level each one overrode.
func withoutFile(lvls, bundled []Level, path string) []Level {
	kept := make([]Level, 0, len(lvls))
	for _, lvl := range lvls {
		if lvl.FilePath != path {
			kept = append(kept, lvl)
			continue
		}
		if orig, err := find(bundled, lvl.ID); err == nil {
			kept = append(kept, orig)
		}
	}
	return kept
}

// Merge combines two level lists. Levels in overrides replace levels in base
// with the same ID. The result is sorted by ID.
func Merge(base, overrides []Level, logger *log.Logger) []Level {
	byID := make(map[string]Level, len(base)+len(overrides))
	for _, lvl := range base {
		byID[lvl.ID] = lvl
	}
	for _, lvl := range overrides {
		if prev, ok := byID[lvl.ID]; ok && logger != nil && prev.FilePath != lvl.FilePath {
			logger.Info("level overridden", "id", lvl.ID, "by", lvl.FilePath, "was", prev.FilePath)
		}
		byID[lvl.ID] = lvl
	}

	out := make([]Level, 0, len(byID))
	for _, lvl := range byID {
		out = append(out, lvl)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}
