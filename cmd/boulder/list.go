package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long: `Shows the bundled levels and the levels found in the level directory.
A level file with the same ID as a bundled level replaces it.`,
	RunE: runList,
}

func runList(_ *cobra.Command, _ []string) error {
	a, err := setup(false)
	if err != nil {
		return err
	}
	defer a.close()

	lvls := a.catalog.Levels()
	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return nil
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen, maxNameLen := 2, 5 // "ID", "Title"
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "ID", maxNameLen, "Title", "Size", "Source")
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "--", maxNameLen, "-----", "----", "------")

	for _, l := range lvls {
		w, h := l.Size()
		source := l.FilePath
		if l.IsBundled() {
			source = "bundled"
		}
		fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, l.ID, maxNameLen, l.Name, fmt.Sprintf("%dx%d", w, h), source)
	}

	fmt.Println()
	fmt.Println("Run 'boulder play <id>' to play a level.")
	return nil
}
