package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagReplayPaced bool

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-simulate a journaled run",
	Long: `Re-simulate a journaled run from its seed, config and recorded input,
and check that it ends with the same report.

Examples:
  flappy runs
  flappy replay 7`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayPaced, "paced", false, "Replay at the recorded tick rate")
}

func runReplay(cmd *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fatalf("invalid run id %q", args[0])
	}
	logger := newLogger(os.Stderr)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening run journal: %v", err)
	}
	defer store.Close()

	run, err := store.GetRun(id)
	if errors.Is(err, storage.ErrRunNotFound) {
		fatalf("no run #%d; run 'flappy runs' to list journaled runs", id)
	}
	if err != nil {
		fatalf("%v", err)
	}

	got, err := replay(context.Background(), run, flagReplayPaced)
	if err != nil {
		fatalf("%v", err)
	}
	logger.Debug("replayed", "id", id, "ticks", got.Ticks)

	printReport(got)
	if got != run.Report {
		fatalf("replay diverged from run #%d: recorded %+v", id, run.Report)
	}
	fmt.Printf("Run #%d reproduced exactly\n", id)
}

// replay re-simulates a journaled run and returns the report it ends with.
func replay(ctx context.Context, run storage.Run, paced bool) (flappy.Report, error) {
	cfg, err := config.Parse(run.Config)
	if err != nil {
		return flappy.Report{}, fmt.Errorf("run #%d has an unreadable config: %w", run.ID, err)
	}

	session, err := flappy.NewSession(cfg, run.Report.Seed)
	if err != nil {
		return flappy.Report{}, err
	}

	// Quits that came from outside the input stream (tick limit, signal)
	// happened on the tick the report ends on.
	rec := run.Recording
	if run.Report.Reason == flappy.ReasonQuit && rec.QuitTick < 0 {
		rec.QuitTick = run.Report.Ticks
	}

	loop := flappy.Loop{
		Session: session,
		Input:   flappy.NewReplaySource(rec),
	}
	if paced {
		pacer := flappy.NewTickerPacer(cfg.World.TickRate)
		defer pacer.Stop()
		loop.Pacer = pacer
	}
	return loop.Run(ctx)
}
