package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boulder/internal/platform/tui"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Default controls (change them under "keys" in the config):
  Arrows/WASD/HJKL - Move, push stones and boxes sideways
  P                - Pause
  R                - Restart the level
  B/Esc            - Back
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot
  ?                - All keys

Examples:
  boulder play ch02
  boulder play mylevel --levels ./levels --watch
  boulder play ch02 --fps 15`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level when its file changes")
	menuCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload levels when their files change")
}

func runPlay(_ *cobra.Command, args []string) error {
	levelID := args[0]

	a, err := setup(true)
	if err != nil {
		return err
	}
	defer a.close()

	reg, err := a.buildRegistry()
	if err != nil {
		return err
	}
	if !reg.Exists(levelID) {
		return fmt.Errorf("unknown level %q (run 'boulder list' to see available levels)", levelID)
	}
	game, err := reg.Create(levelID)
	if err != nil {
		return err
	}

	store := a.openJournal()
	if store != nil {
		defer store.Close()
	}
	w := a.watcher(flagWatch || a.cfg.Levels.Watch)
	if w != nil {
		defer w.Close()
	}

	a.logger.Info("playing", "level", levelID)
	_, err = tui.Run(game, tui.Options{
		Config:  a.runtimeConfig(),
		Keys:    a.keys(),
		Store:   store,
		Catalog: a.catalog,
		Watcher: w,
		Logger:  a.logger,
	})
	if err != nil {
		return fmt.Errorf("running level: %w", err)
	}
	return nil
}
