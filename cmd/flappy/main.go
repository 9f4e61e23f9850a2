// flappy is a terminal Flappy Bird: a fixed-timestep simulation with a
// Bubble Tea frontend, a headless autopilot runner and a replayable run journal.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy sim               - Run the autopilot headless
//	flappy replay <id>       - Re-simulate a journaled run and verify its report
//	flappy runs              - List journaled runs
//	flappy texture           - Write an obstacle texture as PNG
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Override the configured tick rate
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Path to a flappy.yaml
//	--db <path>          - Set database path (default: ~/.flappy/runs.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfigPath string
	flagDBPath     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy - guide a falling bird through scrolling pipes",
	Long: `Flappy is a terminal Flappy Bird built on a deterministic,
fixed-timestep simulation.

Available commands:
  play     - Play in the terminal
  sim      - Run the autopilot without a display
  replay   - Re-simulate a journaled run
  runs     - List journaled runs
  texture  - Write an obstacle texture as PNG
  config   - Print the effective configuration

Examples:
  flappy play
  flappy play --seed 42
  flappy sim --ticks 3600
  flappy replay 7
  flappy texture -o pipe.png`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config, default 60)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom flappy.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.flappy/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(textureCmd)
	rootCmd.AddCommand(configCmd)
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fatalf("invalid --log-level %q: %v", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "flappy",
		Level:           level,
	})
}

// loadConfig loads and validates the world configuration, applying --fps.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fatalf("%v", err)
	}
	if flagFPS > 0 {
		cfg.World.TickRate = flagFPS
	}
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}
	return cfg
}

// seed returns --seed, or a clock-derived seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}
