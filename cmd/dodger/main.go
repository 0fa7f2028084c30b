// dodger is a lane-based arcade game: dodge the racers coming at you.
//
// Usage:
//
//	dodger                   - Play in a desktop window
//	dodger play              - Play in a desktop window
//	dodger term              - Play in the terminal
//	dodger scores            - Show the stored highscore
//	dodger config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - easy, normal, hard or fixed
//	--fps <rate>          - Frames per second (default: from config, 60)
//	--seed <value>        - RNG seed for reproducible runs
//	--highscore <path>    - Highscore file (default: save.txt)
//	--music-dir <path>    - Music directory (default: Music)
//	--mute                - Disable music
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagHighscore  string
	flagMusicDir   string
	flagMute       bool
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodger",
	Short: "Dodger - dodge the racers coming down the road",
	Long: `Dodger is a three-lane arcade game. Racers approach from the horizon;
shift lanes to let them pass. Every racer you dodge scores a point and
makes that racer a little faster.

Available commands:
  play     - Play in a desktop window (default)
  term     - Play in the terminal
  scores   - Show the stored highscore
  config   - Print the effective configuration

Examples:
  dodger
  dodger --difficulty hard
  dodger term --mute
  dodger scores
  dodger config --defaults`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	flags.IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagHighscore, "highscore", "", "Path to the highscore file (default from config)")
	flags.StringVar(&flagMusicDir, "music-dir", "", "Directory with .mp3/.ogg/.wav tracks (default from config)")
	flags.BoolVar(&flagMute, "mute", false, "Disable background music")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(termCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
