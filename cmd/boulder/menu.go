package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boulder/internal/platform/tui"
	"github.com/vovakirdan/tui-boulder/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive menu",
	Long: `Start boulder in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level, Tab for the
journal. Leaving a level with B/Esc returns to the menu.

Examples:
  boulder menu
  boulder menu --levels ./levels --watch
  boulder menu --db ./journal.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	a, err := setup(true)
	if err != nil {
		return err
	}
	defer a.close()

	store := a.openJournal()
	if store != nil {
		defer store.Close()
	}
	w := a.watcher(flagWatch || a.cfg.Levels.Watch)
	if w != nil {
		defer w.Close()
	}

	cfg := a.runtimeConfig()
	keys := a.keys()

	for {
		// Re-read each round so edited level files show up.
		if _, err := a.catalog.Load(); err != nil {
			a.logger.Warn("could not reload levels", "error", err)
		}
		reg, err := a.buildRegistry()
		if err != nil {
			return err
		}

		var summaries []storage.Summary
		if store != nil {
			if summaries, err = store.Summaries(); err != nil {
				a.logger.Warn("could not read journal", "error", err)
			}
		}

		menuResult, err := tui.RunMenu(reg.List(), summaries, keys, cfg)
		if err != nil {
			return err
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return nil
		}

		if menuResult.WantsStats {
			goBack, err := tui.RunStats(store, reg.List(), keys, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if goBack {
				continue
			}
			return nil
		}

		if menuResult.LevelID == "" {
			return nil
		}

		game, err := reg.Create(menuResult.LevelID)
		if err != nil {
			return err
		}

		a.logger.Info("playing", "level", menuResult.LevelID)
		result, err := tui.Run(game, tui.Options{
			Config:  cfg,
			Keys:    keys,
			Store:   store,
			Catalog: a.catalog,
			Watcher: w,
			Logger:  a.logger,
		})
		if err != nil {
			return err
		}
		if !result.Back {
			return nil
		}
	}
}
