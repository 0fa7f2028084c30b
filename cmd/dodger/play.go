package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodger/internal/music"
	"github.com/vovakirdan/dodger/internal/platform/window"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in a desktop window",
	Long: `Open a 960x720 window and play.

Controls:
  A/Left     - Shift one lane left
  D/Right    - Shift one lane right
  W/Up       - Speed up every racer (on release)
  Space      - Start from the title screen
  R          - Retry after a crash
  C          - Copy the result (end screen)
  Esc        - Quit

Difficulty options:
  easy   - Racers start slow
  normal - Default starting speed
  hard   - Racers start fast
  fixed  - Dodging does not speed racers up

Examples:
  dodger play
  dodger play --difficulty hard
  dodger play --music-dir ~/music/dodger
  dodger play --config ./my-dodger.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rt := runtimeConfig(cfg)

	store, best, err := openHighscore(cfg, logger)
	if err != nil {
		return err
	}

	var loaders music.Loaders
	if cfg.Music.Enabled {
		loaders = window.Loaders(window.NewAudioContext(), cfg.Music.Volume)
	}
	playlist, err := openPlaylist(cfg, rt, loaders, logger)
	if err != nil {
		return err
	}
	if playlist != nil {
		defer playlist.Close()
	}

	session := newSession(cfg, rt, store, best, playlist, logger)
	game, err := window.NewGame(session, cfg.Window.Width, cfg.Window.Height(), logger)
	if err != nil {
		return err
	}
	return window.Run(game, cfg.Window.Title, rt.TickRate)
}
