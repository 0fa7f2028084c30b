package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodger/internal/config"
	"github.com/vovakirdan/dodger/internal/core"
	"github.com/vovakirdan/dodger/internal/dodger"
	"github.com/vovakirdan/dodger/internal/music"
	"github.com/vovakirdan/dodger/internal/storage"
)

// newLogger builds the process logger. fallback receives output when no
// --log-file is given.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "dodger",
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadConfig resolves the configuration from file, preset and flags.
func loadConfig() (config.DodgerConfig, error) {
	cfg, err := config.LoadDodger(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyDodgerPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagHighscore != "" {
		cfg.Highscore.Path = flagHighscore
	}
	if flagMusicDir != "" {
		cfg.Music.Dir = flagMusicDir
	}
	if flagMute {
		cfg.Music.Enabled = false
	}
	return cfg, cfg.Validate()
}

// runtimeConfig returns the tick rate and the resolved seed.
func runtimeConfig(cfg config.DodgerConfig) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickRate = cfg.TickRate
	rt.Seed = flagSeed
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	return rt
}

// openHighscore opens the highscore file and reads the stored best.
// A corrupt file is reported and treated as 0.
func openHighscore(cfg config.DodgerConfig, logger *log.Logger) (*storage.HighscoreFile, int, error) {
	store, err := storage.OpenHighscore(cfg.Highscore.Path)
	if err != nil {
		return nil, 0, err
	}
	best, err := store.Load()
	if errors.Is(err, storage.ErrCorrupt) {
		logger.Warn("ignoring corrupt highscore", "path", store.Path(), "error", err)
		return store, 0, nil
	}
	if err != nil {
		return nil, 0, err
	}
	logger.Debug("loaded highscore", "path", store.Path(), "score", best)
	return store, best, nil
}

// openPlaylist decodes the music directory with the given backend. It returns
// nil when music is disabled.
func openPlaylist(cfg config.DodgerConfig, rt core.RuntimeConfig, loaders music.Loaders, logger *log.Logger) (*music.Playlist, error) {
	if !cfg.Music.Enabled {
		return nil, nil
	}
	tracks, err := music.LoadDir(cfg.Music.Dir, loaders, logger)
	if err != nil {
		return nil, fmt.Errorf("%w (use --mute to play without music)", err)
	}
	logger.Info("loaded music", "dir", cfg.Music.Dir, "tracks", len(tracks))
	return music.NewPlaylist(tracks, rand.New(rand.NewSource(rt.Seed)), logger)
}

// newSession wires the session collaborators. A nil playlist leaves the
// session silent.
func newSession(cfg config.DodgerConfig, rt core.RuntimeConfig, store *storage.HighscoreFile, best int, playlist *music.Playlist, logger *log.Logger) *dodger.Session {
	opts := dodger.Options{
		Config:    cfg,
		Seed:      rt.Seed,
		Highscore: best,
		Store:     store,
		Logger:    logger,
	}
	if playlist != nil {
		opts.Music = playlist
	}
	return dodger.NewSession(opts)
}
