package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodger/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config
file, the difficulty preset and the command-line flags are applied.

Save the output to ~/.dodger/configs/dodger.yaml to make it your default.

Examples:
  dodger config
  dodger config --difficulty hard --fps 30
  dodger config --defaults > ~/.dodger/configs/dodger.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
