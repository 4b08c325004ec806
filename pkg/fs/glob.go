package fs

import (
	"fmt"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob finds files and directories matching the pattern.
// Unlike filepath.Glob, "**" matches any number of directories.
func (f *realFS) Glob(pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPattern, pattern, err)
	}
	return matches, nil
}
