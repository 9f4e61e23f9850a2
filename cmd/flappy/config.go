package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Load the configuration the way 'play' does, validate it and print it
as YAML. Search order: --config, ~/.flappy/flappy.yaml,
./configs/flappy.yaml, built-in defaults.

Examples:
  flappy config > ~/.flappy/flappy.yaml
  flappy config --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	data, err := cfg.Marshal()
	if err != nil {
		fatalf("%v", err)
	}
	fmt.Print(string(data))
}
