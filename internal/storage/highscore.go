// Package storage provides flat-file persistence for the dodger highscore.
// The file holds a single ASCII decimal integer and nothing else.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/vovakirdan/dodger/internal/config"
)

// ErrCorrupt is returned by Load when the file exists but does not hold a
// non-negative integer. The returned score is 0 in that case.
var ErrCorrupt = errors.New("storage: highscore file is corrupt")

// HighscoreFile reads and writes the highscore file.
type HighscoreFile struct {
	path string
}

// OpenHighscore prepares a highscore file at the given path.
// It expands ~ and creates the parent directories if needed. The file
// itself is only created on the first Save.
func OpenHighscore(path string) (*HighscoreFile, error) {
	expanded, err := config.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	// Create parent directories
	dir := filepath.Dir(expanded)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	return &HighscoreFile{path: expanded}, nil
}

// Path returns the resolved file path.
func (f *HighscoreFile) Path() string {
	return f.path
}

// Load returns the stored highscore.
// A missing file yields 0 with no error.
func (f *HighscoreFile) Load() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("%w: %s is empty", ErrCorrupt, f.path)
	}
	score, err := strconv.Atoi(fields[0])
	if err != nil || score < 0 {
		return 0, fmt.Errorf("%w: %s holds %q", ErrCorrupt, f.path, fields[0])
	}
	return score, nil
}

// Save overwrites the file with the given score. The write is atomic where
// the platform allows it, so a crash never leaves a half-written highscore.
func (f *HighscoreFile) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: refusing to save negative score %d", score)
	}
	if err := writeFile(f.path, []byte(strconv.Itoa(score))); err != nil {
		return fmt.Errorf("storage: cannot write highscore %s: %w", f.path, err)
	}
	return nil
}

// Clear removes the highscore file. Clearing a missing file is not an error.
func (f *HighscoreFile) Clear() error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot clear highscore: %w", err)
	}
	return nil
}
