package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsPrune int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List journaled runs",
	Long: `Show the most recent runs in the journal, newest first.

Examples:
  flappy runs
  flappy runs --limit 50
  flappy runs --prune 100`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to show")
	runsCmd.Flags().IntVar(&flagRunsPrune, "prune", -1, "Delete all but the newest N runs before listing")
}

func runRuns(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening run journal: %v", err)
	}
	defer store.Close()

	if flagRunsPrune >= 0 {
		removed, err := store.PruneRuns(flagRunsPrune)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("Pruned %d runs\n", removed)
	}

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		fatalf("%v", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'flappy play' or 'flappy sim --save' to record one.")
		return
	}

	fmt.Println(tui.RunsTable(runs))
}
