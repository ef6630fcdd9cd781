package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boulder/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [level]",
	Short: "Show the play journal",
	Long: `Without a level, shows totals for every level played.
With a level, shows its most recent sessions.

Examples:
  boulder stats
  boulder stats ch02 --limit 5
  boulder stats ch02 --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	statsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the level's journal entries")
}

func runStats(_ *cobra.Command, args []string) error {
	a, err := setup(false)
	if err != nil {
		return err
	}
	defer a.close()

	if !a.cfg.Journal.Enabled && flagDBPath == "" {
		return errors.New("the journal is disabled (journal.enabled in the config)")
	}
	store, err := storage.Open(a.cfg.Journal.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			return errors.New("--clear needs a level")
		}
		return printSummaries(store)
	}

	levelID := args[0]
	if flagClear {
		if err := store.ClearLevel(levelID); err != nil {
			return err
		}
		fmt.Printf("Journal cleared for %s.\n", levelID)
		return nil
	}

	sum, err := store.LevelSummary(levelID)
	if err != nil {
		return err
	}
	title := levelID
	if lvl, err := a.catalog.Get(levelID); err == nil {
		title = lvl.Name
	}

	fmt.Printf("Journal - %s\n", title)
	fmt.Println()

	if sum.Sessions == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'boulder play %s' to start its journal.\n", levelID)
		return nil
	}

	sessions, err := store.RecentSessions(levelID, flagLimit)
	if err != nil {
		return err
	}

	fmt.Printf("  %-4s  %-16s  %7s  %6s  %6s  %6s  %4s  %s\n",
		"#", "Played", "Ticks", "Moves", "Bumps", "Pushes", "Keys", "Time")
	fmt.Printf("  %-4s  %-16s  %7s  %6s  %6s  %6s  %4s  %s\n",
		"-", "------", "-----", "-----", "-----", "------", "----", "----")
	for i, s := range sessions {
		fmt.Printf("  %-4d  %-16s  %7d  %6d  %6d  %6d  %4d  %s\n",
			i+1, s.StartedAt.Local().Format("2006-01-02 15:04"),
			s.Ticks, s.Moves, s.Rejected, s.Pushes, s.Keys, s.Duration().Round(time.Second))
	}

	fmt.Println()
	fmt.Printf("Total: %d sessions, %d moves, %d pushes, %d keys\n", sum.Sessions, sum.Moves, sum.Pushes, sum.Keys)
	return nil
}

func printSummaries(store *storage.Store) error {
	sums, err := store.Summaries()
	if err != nil {
		return err
	}
	if len(sums) == 0 {
		fmt.Println("No sessions recorded yet.")
		return nil
	}

	fmt.Printf("  %-16s  %8s  %8s  %6s  %6s  %s\n", "Level", "Sessions", "Ticks", "Moves", "Keys", "Last played")
	fmt.Printf("  %-16s  %8s  %8s  %6s  %6s  %s\n", "-----", "--------", "-----", "-----", "----", "-----------")
	for _, s := range sums {
		fmt.Printf("  %-16s  %8d  %8d  %6d  %6d  %s\n",
			s.LevelID, s.Sessions, s.Ticks, s.Moves, s.Keys, s.LastPlayed.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
