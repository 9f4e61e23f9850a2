package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagSimTicks  int
	flagSimPaced  bool
	flagSimSave   bool
	flagSimOffset float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the autopilot without a display",
	Long: `Run a session driven by the autopilot, which flaps whenever the bird
drops below the centre of the next gap. The session ends on a crash or after
--ticks ticks. Ctrl+C quits the session cleanly.

Examples:
  flappy sim
  flappy sim --ticks 10000 --seed 7
  flappy sim --paced --log-level debug
  flappy sim --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Stop after this many ticks (0 = until the bird crashes)")
	simCmd.Flags().BoolVar(&flagSimPaced, "paced", false, "Run at the configured tick rate instead of as fast as possible")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Save the run to the journal")
	simCmd.Flags().Float64Var(&flagSimOffset, "offset", flappy.DefaultAutopilotOffset, "Autopilot flap threshold below the gap centre")
}

func runSim(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(os.Stderr)

	session, err := flappy.NewSession(cfg, seed())
	if err != nil {
		fatalf("%v", err)
	}

	pilot := flappy.NewAutopilot(session)
	pilot.Offset = flagSimOffset
	recorder := flappy.NewRecorder(pilot)

	loop := flappy.Loop{
		Session:  session,
		Input:    recorder,
		Logger:   logger,
		MaxTicks: flagSimTicks,
	}
	if flagSimPaced {
		pacer := flappy.NewTickerPacer(cfg.World.TickRate)
		defer pacer.Stop()
		loop.Pacer = pacer
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := loop.Run(ctx)
	if err != nil {
		fatalf("simulation failed: %v", err)
	}
	printReport(report)

	if !flagSimSave {
		return
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening run journal: %v", err)
	}
	defer store.Close()

	cfgYAML, err := cfg.Marshal()
	if err != nil {
		fatalf("%v", err)
	}
	id, err := store.SaveRun(storage.Run{
		Report:    report,
		Recording: recorder.Recording(),
		Config:    cfgYAML,
	})
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("Saved as run #%d\n", id)
}

func printReport(r flappy.Report) {
	fmt.Printf("Score:  %d (%.1f)\n", r.Score, r.Raw)
	fmt.Printf("Passed: %d\n", r.Passed)
	fmt.Printf("Ticks:  %d\n", r.Ticks)
	fmt.Printf("Reason: %s\n", r.Reason)
	fmt.Printf("Seed:   %d\n", r.Seed)
}
