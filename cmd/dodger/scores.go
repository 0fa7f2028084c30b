package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/storage"
)

var flagReset bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the stored highscore",
	Long: `Display the highscore stored in the highscore file.

Examples:
  dodger scores
  dodger scores --highscore ~/.dodger/save.txt
  dodger scores --reset`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the stored highscore")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadDodger(flagConfig)
	if err != nil {
		return err
	}
	if flagHighscore != "" {
		cfg.Highscore.Path = flagHighscore
	}

	store, err := storage.OpenHighscore(cfg.Highscore.Path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if flagReset {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Fprintf(out, "Highscore reset (%s)\n", store.Path())
		return nil
	}

	best, err := store.Load()
	if errors.Is(err, storage.ErrCorrupt) {
		fmt.Fprintf(out, "Highscore file %s is corrupt; it will be overwritten by the next record.\n", store.Path())
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Highscore - Dodger\n\n")
	if best == 0 {
		fmt.Fprintln(out, "No highscore recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'dodger' to set the first one!")
		return nil
	}
	fmt.Fprintf(out, "Best: %d\n", best)
	fmt.Fprintf(out, "File: %s\n", store.Path())
	return nil
}
