// lifepaint is Conway's Game of Life with a pannable, zoomable view and paint
// tools for editing the grid.
//
// Usage:
//
//	lifepaint play               - Open the GUI (build with -tags ebiten)
//	lifepaint headless           - Run without a window and write CSV stats
//	lifepaint patterns           - List stamp patterns
//	lifepaint config <path>      - Write the effective config as YAML
//
// Global flags:
//
//	--config <path>     - YAML config merged over the built-in defaults
//	--seed <value>      - RNG seed (0 = time-based)
//	--log-level <level> - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"lifepaint/internal/config"
)

var (
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lifepaint",
	Short: "Game of Life with paint tools",
	Long: `lifepaint runs Conway's Game of Life on a bounded grid. Cells fade from
white to green as they survive. The grid can be edited while paused with a
single-cell brush, an eraser, a spray can, rectangles, and pattern stamps.

Examples:
  lifepaint play
  lifepaint play --config ./big.yaml --seed 42
  lifepaint headless --generations 500 --out stats.csv
  lifepaint patterns`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config value or time-based)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(configCmd)
}

// setup loads the config, applies global flag overrides, and builds the
// logger.
func setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if flagSeed != 0 {
		cfg.Simulation.Seed = flagSeed
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "lifepaint",
		Level:           level,
	})
	return cfg, logger, nil
}
