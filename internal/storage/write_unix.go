//go:build !windows

package storage

import "github.com/google/renameio/v2"

// writeFile replaces path through a temporary file and a rename.
func writeFile(path string, data []byte) error {
	return renameio.WriteFile(path, data, 0o644, renameio.IgnoreUmask())
}
