// boulder is a falling-block puzzle played in the terminal.
//
// Usage:
//
//	boulder list               - List available levels
//	boulder play <level>       - Play a level
//	boulder menu               - Pick levels interactively
//	boulder run <level>        - Apply moves headlessly and print the grid
//	boulder stats [level]      - Show the play journal
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.boulder/configs/boulder.yaml)
//	--fps <rate>        - Tick rate override (default from config: 30)
//	--db <path>         - Journal database override
//	--levels <dir>      - Level directory override
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagFPS       int
	flagDBPath    string
	flagLevelsDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "boulder",
	Short: "Boulder - a falling-block puzzle for the terminal",
	Long: `Boulder is a grid puzzle: walk through flux, push stones and boxes,
pick up keys to open their locks, and mind what falls.

Available commands:
  list     - Show all available levels
  play     - Play a specific level
  menu     - Interactive level picker
  run      - Apply a move string headlessly and print the result
  stats    - View the play journal

Examples:
  boulder list
  boulder play ch02
  boulder menu --levels ./levels --watch
  boulder run ch02 --inputs "rrdl"
  boulder stats ch02`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate in ticks per second (0 = from config)")
	pf.StringVar(&flagDBPath, "db", "", "Path to journal database (default from config)")
	pf.StringVar(&flagLevelsDir, "levels", "", "Directory of level files (default from config)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(statsCmd)
}
