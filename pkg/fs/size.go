package fs

import (
	"os"
	"path/filepath"
	"strings"
)

// Size returns the size of path in bytes.
// Directories are summed recursively, skipping dot-prefixed entries.
// Missing or unreadable paths count as zero.
func (f *realFS) Size(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	if !info.IsDir() {
		return info.Size()
	}

	entries, err := f.ReadDir(path)
	if err != nil {
		return 0
	}

	var total int64
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		total += f.Size(filepath.Join(path, entry.Name()))
	}
	return total
}
