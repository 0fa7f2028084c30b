package config

import (
	_ "embed"
)

//go:embed defaults/dodger.yaml
var defaultDodgerYAML []byte

// DefaultDodgerConfig returns the default Dodger configuration.
func DefaultDodgerConfig() DodgerConfig {
	return DodgerConfig{
		Window: WindowConfig{
			Width: 960,
			Title: "Dodger",
		},
		Lanes: LanesConfig{
			Columns: 5,
			Rows:    5,
		},
		Player: PlayerConfig{
			StartColumn: 2,
			StartRow:    1,
		},
		Racers: RacersConfig{
			BaseInterval: 60,
			IntervalStep: 5,
			MinInterval:  10,
			PassFloor:    15,
			AutoSpeedUp:  true,
		},
		Stats: StatsConfig{
			MPHBase:        180,
			MPHPerInterval: 2,
		},
		Logo: LogoConfig{
			Seconds: 2,
		},
		Music: MusicConfig{
			Enabled: true,
			Dir:     "Music",
			Volume:  1.0,
		},
		Highscore: HighscoreConfig{
			Path: "save.txt",
		},
		TickRate: 60,
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDodgerYAML
}
