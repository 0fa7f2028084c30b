// Package config provides YAML-based game configuration loading and
// difficulty presets for the dodger game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned by Validate when a configuration cannot produce a
// playable game.
var ErrInvalid = errors.New("config: invalid configuration")

// DodgerConfig contains all configuration for the Dodger game.
type DodgerConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Lanes     LanesConfig     `yaml:"lanes"`
	Player    PlayerConfig    `yaml:"player"`
	Racers    RacersConfig    `yaml:"racers"`
	Stats     StatsConfig     `yaml:"stats"`
	Logo      LogoConfig      `yaml:"logo"`
	Music     MusicConfig     `yaml:"music"`
	Highscore HighscoreConfig `yaml:"highscore"`
	TickRate  int             `yaml:"tick_rate"`
}

// WindowConfig defines the virtual canvas. Height is derived from Width
// with a fixed 4:3 aspect ratio.
type WindowConfig struct {
	Width int    `yaml:"width"`
	Title string `yaml:"title"`
}

// Height returns the canvas height for the configured width.
func (w WindowConfig) Height() int {
	return int(float64(w.Width) * 0.75)
}

// LaneColumns and LaneRows are the only grid sizes the racer lane table
// supports. Its perspective factors are laid out for a 5x5 grid.
const (
	LaneColumns = 5
	LaneRows    = 5
)

// LanesConfig defines the lane grid the player and racers move on.
type LanesConfig struct {
	Columns int `yaml:"columns"`
	Rows    int `yaml:"rows"`
}

// PlayerConfig defines where the player starts.
type PlayerConfig struct {
	StartColumn int `yaml:"start_column"`
	StartRow    int `yaml:"start_row"`
}

// RacersConfig defines racer timing. Intervals are in frames.
type RacersConfig struct {
	BaseInterval int  `yaml:"base_interval"` // Frames between depth advances at the start of a run
	IntervalStep int  `yaml:"interval_step"` // Amount removed from the interval per speed-up
	MinInterval  int  `yaml:"min_interval"`  // Floor for the speed-up key
	PassFloor    int  `yaml:"pass_floor"`    // Floor for the automatic speed-up on a dodge
	AutoSpeedUp  bool `yaml:"auto_speed_up"` // Whether dodges tighten the interval
}

// StatsConfig defines the cosmetic HUD arithmetic.
type StatsConfig struct {
	MPHBase        int `yaml:"mph_base"`
	MPHPerInterval int `yaml:"mph_per_interval"`
}

// LogoConfig defines the loading screen.
type LogoConfig struct {
	Seconds int `yaml:"seconds"`
}

// MusicConfig defines the background music playlist.
type MusicConfig struct {
	Enabled bool    `yaml:"enabled"`
	Dir     string  `yaml:"dir"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// HighscoreConfig defines where the highscore is persisted.
type HighscoreConfig struct {
	Path string `yaml:"path"`
}

// Validate checks that the configuration describes a playable game.
func (c DodgerConfig) Validate() error {
	switch {
	case c.Window.Width < 64:
		return fmt.Errorf("%w: window width %d is too small", ErrInvalid, c.Window.Width)
	case c.Lanes.Columns != LaneColumns:
		return fmt.Errorf("%w: racer lanes are laid out for %d columns, got %d", ErrInvalid, LaneColumns, c.Lanes.Columns)
	case c.Lanes.Rows != LaneRows:
		return fmt.Errorf("%w: racer lanes are laid out for %d rows, got %d", ErrInvalid, LaneRows, c.Lanes.Rows)
	case c.Player.StartColumn < 1 || c.Player.StartColumn > c.Lanes.Columns-2:
		return fmt.Errorf("%w: start column %d outside [1, %d]", ErrInvalid, c.Player.StartColumn, c.Lanes.Columns-2)
	case c.Player.StartRow < 1 || c.Player.StartRow > c.Lanes.Rows:
		return fmt.Errorf("%w: start row %d outside [1, %d]", ErrInvalid, c.Player.StartRow, c.Lanes.Rows)
	case c.Racers.IntervalStep < 1:
		return fmt.Errorf("%w: interval step must be positive, got %d", ErrInvalid, c.Racers.IntervalStep)
	case c.Racers.MinInterval < 1:
		return fmt.Errorf("%w: min interval must be positive, got %d", ErrInvalid, c.Racers.MinInterval)
	case c.Racers.PassFloor < c.Racers.MinInterval:
		return fmt.Errorf("%w: pass floor %d below min interval %d", ErrInvalid, c.Racers.PassFloor, c.Racers.MinInterval)
	case c.Racers.BaseInterval < c.Racers.MinInterval:
		return fmt.Errorf("%w: base interval %d below min interval %d", ErrInvalid, c.Racers.BaseInterval, c.Racers.MinInterval)
	case c.TickRate < 1:
		return fmt.Errorf("%w: tick rate must be positive, got %d", ErrInvalid, c.TickRate)
	case c.Logo.Seconds < 0:
		return fmt.Errorf("%w: logo duration cannot be negative", ErrInvalid)
	case c.Music.Volume < 0 || c.Music.Volume > 1:
		return fmt.Errorf("%w: music volume %.2f outside [0, 1]", ErrInvalid, c.Music.Volume)
	}
	return nil
}
