package fs

import (
	"fmt"
	"path/filepath"
)

// ResolvePath resolves path against baseDir and returns a clean absolute path.
// Absolute paths are only cleaned.
func (f *realFS) ResolvePath(baseDir, path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: path cannot be empty", ErrPathResolution)
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	if baseDir == "" {
		return "", fmt.Errorf("%w: base directory cannot be empty for %s", ErrPathResolution, path)
	}

	absPath, err := filepath.Abs(filepath.Join(baseDir, path))
	if err != nil {
		return "", fmt.Errorf("%w: failed to get absolute path for %s: %w", ErrPathResolution, path, err)
	}

	return absPath, nil
}
