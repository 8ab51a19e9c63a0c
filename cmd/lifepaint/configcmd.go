package main

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config <path>",
	Short: "Write the effective configuration to a YAML file",
	Long: `Writes the built-in defaults, merged with --config and the global flag
overrides, to path. The result is a starting point for a custom config.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		if err := cfg.WriteYAML(args[0]); err != nil {
			return err
		}
		logger.Info("config written", "path", args[0])
		return nil
	},
}
