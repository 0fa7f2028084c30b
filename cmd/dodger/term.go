package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodger/internal/platform/beepmusic"
	"github.com/vovakirdan/dodger/internal/platform/tui"
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Play in the terminal",
	Long: `Play on the terminal's character grid. The game canvas is scaled to
the terminal size.

Controls:
  A/Left     - Shift one lane left
  D/Right    - Shift one lane right
  W/Up       - Speed up every racer
  Space      - Start from the title screen
  R          - Retry after a crash
  C          - Copy the result (end screen)
  Ctrl+S     - Save a screenshot to ~/.dodger/screenshots
  Esc/Q      - Quit

Logs are discarded unless --log-file is set, so they do not
draw over the game.

Examples:
  dodger term
  dodger term --mute
  dodger term --log-file dodger.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runTerm,
}

func runTerm(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(io.Discard)
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

	if cfg.Music.Enabled {
		if err := beepmusic.InitSpeaker(); err != nil {
			return err
		}
	}
	playlist, err := openPlaylist(cfg, rt, beepmusic.Loaders(cfg.Music.Volume), logger)
	if err != nil {
		return err
	}
	if playlist != nil {
		defer playlist.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	session := newSession(cfg, rt, store, best, playlist, logger)
	return tui.Run(session, rt, width, height, logger)
}
