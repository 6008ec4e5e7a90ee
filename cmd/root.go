// Package cmd is the chainsim command line: a headless driver for the Chain
// simulation core.
package cmd

import (
	"os"

	"github.com/automoto/chain/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "chainsim"})
)

var rootCmd = &cobra.Command{
	Use:   "chainsim",
	Short: "Chain - headless side-scroller simulation",
	Long: `chainsim runs the Chain simulation core without a renderer.

Levels are Tiled TMX maps. With no levels given, a built-in demo level and
boss arena are played.

Examples:
  chainsim run --ticks 600 --script "right:120,jump:1,right:60"
  chainsim run levels/*.tmx --dump report.yaml
  chainsim run --realtime --config tuning.yaml --watch
  chainsim levels ./levels
  chainsim config > tuning.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML tuning file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "chainsim",
		Level:           level,
	})

	if flagConfig == "" {
		return nil
	}
	if err := config.Load(flagConfig); err != nil {
		return err
	}
	logger.Debug("config loaded", "path", flagConfig)
	return nil
}
