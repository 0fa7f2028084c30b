package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset converts a CLI value to a preset.
// An empty string means "use the config as loaded".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// BaseIntervalForPreset returns the starting racer interval for a preset.
// Returns 0 for presets that keep the configured interval.
func BaseIntervalForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 75
	case DifficultyNormal:
		return 60
	case DifficultyHard:
		return 40
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyDodgerPreset modifies the config based on a difficulty preset.
func ApplyDodgerPreset(cfg *DodgerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Racers.AutoSpeedUp = false
		return
	}
	cfg.Racers.AutoSpeedUp = true
	if base := BaseIntervalForPreset(preset); base > 0 {
		cfg.Racers.BaseInterval = base
	}
}
