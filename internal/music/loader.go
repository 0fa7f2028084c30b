package music

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

// Loader decodes the file at path into a Track.
type Loader func(path string) (Track, error)

// Loaders maps a lower-case file extension, including the dot, to its decoder.
type Loaders map[string]Loader

// Extensions returns the supported extensions in sorted order.
func (l Loaders) Extensions() []string {
	exts := make([]string, 0, len(l))
	for ext := range l {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// LoadDir decodes every supported file in dir, in lexical order.
// Unsupported files and subdirectories are skipped with a warning. A
// decode failure aborts the load and closes the tracks decoded so far.
func LoadDir(dir string, loaders Loaders, logger *log.Logger) ([]Track, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoTracks, err)
	}

	var tracks []Track
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() {
			logger.Warn("skipping directory in music dir", "name", name)
			continue
		}

		load, ok := loaders[strings.ToLower(filepath.Ext(name))]
		if !ok {
			logger.Warn("skipping unsupported music file", "name", name, "supported", loaders.Extensions())
			continue
		}

		t, err := load(filepath.Join(dir, name))
		if err != nil {
			closeAll(tracks)
			return nil, fmt.Errorf("music: cannot decode %s: %w", name, err)
		}
		logger.Debug("loaded track", "name", name)
		tracks = append(tracks, t)
	}

	if len(tracks) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoTracks, dir)
	}
	return tracks, nil
}

func closeAll(tracks []Track) {
	for _, t := range tracks {
		_ = t.Close()
	}
}
