package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-boulder/internal/config"
	"github.com/vovakirdan/tui-boulder/internal/core"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder"
	"github.com/vovakirdan/tui-boulder/internal/games/boulder/levels"
	"github.com/vovakirdan/tui-boulder/internal/platform/tui"
	"github.com/vovakirdan/tui-boulder/internal/registry"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

// app holds what every command needs: config, logger and the level catalog.
type app struct {
	cfg     config.BoulderConfig
	logger  *log.Logger
	logFile *os.File
	catalog *levels.Catalog
	theme   boulder.Theme
}

// setup loads the configuration and the levels. Interactive commands log to
// ~/.boulder/boulder.log so the alternate screen stays clean; the others log
// to stderr.
func setup(interactive bool) (*app, error) {
	a := &app{}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	if interactive {
		out = io.Discard
		if f, ferr := openLogFile(); ferr == nil {
			a.logFile = f
			out = f
		}
	}
	a.logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "boulder",
		Level:           level,
	})

	cfg, src, err := config.LoadBoulder(flagConfig)
	if err != nil {
		a.close()
		return nil, err
	}
	if flagFPS > 0 {
		cfg.Sim.TickRate = flagFPS
	}
	if flagDBPath != "" {
		cfg.Journal.Path = config.ExpandHome(flagDBPath)
	}
	if flagLevelsDir != "" {
		cfg.Levels.Dir = config.ExpandHome(flagLevelsDir)
	}
	a.cfg = cfg
	a.logger.Debug("config loaded", "source", src, "tick_rate", cfg.Sim.TickRate, "levels", cfg.Levels.Dir)

	a.theme = boulder.Theme{
		Flux:        core.Color(cfg.Theme.Flux),
		Unbreakable: core.Color(cfg.Theme.Unbreakable),
		Stone:       core.Color(cfg.Theme.Stone),
		Box:         core.Color(cfg.Theme.Box),
		Player:      core.Color(cfg.Theme.Player),
	}

	a.catalog = levels.NewCatalog(cfg.Levels.Dir, a.logger)
	if _, err := a.catalog.Load(); err != nil {
		a.close()
		return nil, err
	}
	return a, nil
}

func openLogFile() (*os.File, error) {
	dir := config.HomeDir()
	if dir == "" {
		return nil, os.ErrNotExist
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, "boulder.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

func (a *app) close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}

// buildRegistry builds one registry entry per level currently in the catalog.
func (a *app) buildRegistry() (*registry.Registry, error) {
	reg := registry.New()
	if err := boulder.RegisterAll(reg, a.catalog.Levels(), a.theme); err != nil {
		return nil, err
	}
	return reg, nil
}

// openJournal opens the play journal. A journal that cannot be opened is
// logged and play continues without it.
func (a *app) openJournal() *storage.Store {
	if !a.cfg.Journal.Enabled {
		return nil
	}
	store, err := storage.Open(a.cfg.Journal.Path)
	if err != nil {
		a.logger.Warn("could not open journal", "path", a.cfg.Journal.Path, "error", err)
		return nil
	}
	return store
}

// watcher starts watching the level directory when enabled.
func (a *app) watcher(enabled bool) *levels.Watcher {
	if !enabled || a.cfg.Levels.Dir == "" {
		return nil
	}
	w, err := levels.NewWatcher(a.cfg.Levels.Dir)
	if err != nil {
		a.logger.Warn("could not watch level directory", "dir", a.cfg.Levels.Dir, "error", err)
		return nil
	}
	a.logger.Info("watching levels", "dir", a.cfg.Levels.Dir)
	return w
}

// runtimeConfig sizes the game to the terminal.
func (a *app) runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = a.cfg.Sim.TickRate
	return cfg
}

func (a *app) keys() tui.KeyMap {
	return tui.NewKeyMap(a.cfg.Keys)
}
