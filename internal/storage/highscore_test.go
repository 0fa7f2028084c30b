package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestHighscoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.txt")

	store, err := OpenHighscore(path)
	if err != nil {
		t.Fatalf("OpenHighscore() failed: %v", err)
	}

	score, err := store.Load()
	if err != nil {
		t.Fatalf("Load() on missing file failed: %v", err)
	}
	if score != 0 {
		t.Errorf("Expected 0 for missing file, got %d", score)
	}

	// Opening does not create the file
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("OpenHighscore should not create the file")
	}
}

func TestHighscoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.txt")

	store, err := OpenHighscore(path)
	if err != nil {
		t.Fatalf("OpenHighscore() failed: %v", err)
	}

	if err := store.Save(5); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "5" {
		t.Errorf("File content = %q, expected %q", data, "5")
	}

	// A fresh handle sees the saved value, as after a restart
	reopened, err := OpenHighscore(path)
	if err != nil {
		t.Fatal(err)
	}
	score, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if score != 5 {
		t.Errorf("Expected 5 after restart, got %d", score)
	}

	// Overwrite, not append
	if err := store.Save(12); err != nil {
		t.Fatal(err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "12" {
		t.Errorf("File content after overwrite = %q, expected %q", data, "12")
	}
}

func TestHighscoreCorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"whitespace", "  \n"},
		{"text", "lots"},
		{"negative", "-3"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "save.txt")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			store, err := OpenHighscore(path)
			if err != nil {
				t.Fatal(err)
			}
			score, err := store.Load()
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("Load() error = %v, expected ErrCorrupt", err)
			}
			if score != 0 {
				t.Errorf("Corrupt file should load as 0, got %d", score)
			}
		})
	}
}

func TestHighscoreTolerantParsing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.txt")
	if err := os.WriteFile(path, []byte(" 42\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	store, err := OpenHighscore(path)
	if err != nil {
		t.Fatal(err)
	}
	score, err := store.Load()
	if err != nil || score != 42 {
		t.Errorf("Load() = %d, %v, expected 42", score, err)
	}
}

func TestHighscoreCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "save.txt")
	store, err := OpenHighscore(path)
	if err != nil {
		t.Fatalf("OpenHighscore() failed: %v", err)
	}
	if err := store.Save(1); err != nil {
		t.Fatalf("Save() into nested dir failed: %v", err)
	}
	if store.Path() != path {
		t.Errorf("Path() = %q, expected %q", store.Path(), path)
	}
}

func TestHighscoreSaveRejectsNegative(t *testing.T) {
	store, err := OpenHighscore(filepath.Join(t.TempDir(), "save.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if err := store.Save(-1); err == nil {
		t.Error("Save(-1) should fail")
	}
}

func TestHighscoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "save.txt")
	store, err := OpenHighscore(path)
	if err != nil {
		t.Fatal(err)
	}

	// Clearing before anything is saved is fine
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on missing file failed: %v", err)
	}

	if err := store.Save(9); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if score, err := store.Load(); err != nil || score != 0 {
		t.Errorf("Load() after Clear = %d, %v, expected 0", score, err)
	}
}
