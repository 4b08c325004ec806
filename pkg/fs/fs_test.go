//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_Exists(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	file := filepath.Join(tmpDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("content"), 0644))

	exists, err := fs.Exists(file)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = fs.Exists(filepath.Join(tmpDir, "missing.txt"))
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestFS_Glob(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	catalog := filepath.Join(tmpDir, "Assets.xcassets")
	logo := filepath.Join(catalog, "logo.imageset")
	nested := filepath.Join(catalog, "Icons", "close.imageset")
	color := filepath.Join(catalog, "Brand.colorset")
	for _, dir := range []string{logo, nested, color} {
		require.NoError(t, os.MkdirAll(dir, 0755))
	}

	matches, err := fs.Glob(filepath.Join(catalog, "**", "*.imageset"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{logo, nested}, matches)

	matches, err = fs.Glob(filepath.Join(catalog, "**", "*.colorset"))
	require.NoError(t, err)
	assert.Equal(t, []string{color}, matches)

	matches, err = fs.Glob(filepath.Join(tmpDir, "**", "*.swift"))
	require.NoError(t, err)
	assert.Empty(t, matches)

	_, err = fs.Glob(filepath.Join(tmpDir, "[invalid"))
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestFS_Glob_EscapedRoot(t *testing.T) {
	fs := NewFS()
	root := filepath.Join(t.TempDir(), "App [Beta]*")
	logo := filepath.Join(root, "Assets.xcassets", "logo.imageset")
	require.NoError(t, os.MkdirAll(logo, 0755))

	matches, err := fs.Glob(filepath.Join(doublestar.EscapeMeta(root), "**", "*.imageset"))
	require.NoError(t, err)
	assert.Equal(t, []string{logo}, matches)
}

func TestFS_Size(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	imageset := filepath.Join(tmpDir, "icon.imageset")
	require.NoError(t, os.MkdirAll(filepath.Join(imageset, "nested"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(imageset, "Contents.json"), make([]byte, 100), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(imageset, "icon.png"), make([]byte, 250), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(imageset, "nested", "icon@2x.png"), make([]byte, 50), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(imageset, ".DS_Store"), make([]byte, 4096), 0644))

	assert.Equal(t, int64(400), fs.Size(imageset))
	assert.Equal(t, int64(250), fs.Size(filepath.Join(imageset, "icon.png")))
	assert.Equal(t, int64(0), fs.Size(filepath.Join(tmpDir, "missing")))
}

func TestFS_ResolvePath(t *testing.T) {
	fs := NewFS()

	resolved, err := fs.ResolvePath("/project", "Sources/../Sources/App.swift")
	require.NoError(t, err)
	assert.Equal(t, "/project/Sources/App.swift", resolved)

	resolved, err = fs.ResolvePath("/project", "/other//Legacy.swift")
	require.NoError(t, err)
	assert.Equal(t, "/other/Legacy.swift", resolved)

	_, err = fs.ResolvePath("/project", "")
	assert.ErrorIs(t, err, ErrPathResolution)

	_, err = fs.ResolvePath("", "relative.swift")
	assert.ErrorIs(t, err, ErrPathResolution)
}

func TestCreateFileIfNotExists(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "nested", "sur.yml")

	require.NoError(t, fs.CreateFileIfNotExists(testFile, []byte("kinds: [image]\n"), 0644))

	// A second call must not overwrite the existing file
	require.NoError(t, fs.CreateFileIfNotExists(testFile, []byte("kinds: [color]\n"), 0644))

	content, err := fs.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, "kinds: [image]\n", string(content))

	isDir, err := fs.IsDir(filepath.Dir(testFile))
	require.NoError(t, err)
	assert.True(t, isDir)
}

func TestWriteFileAtomic(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	target := filepath.Join(tempDir, "sur.yml")

	require.NoError(t, fs.WriteFileAtomic(target, []byte("kinds: [image]\n"), 0644))
	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "kinds: [image]\n", string(content))

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_RenameFailureRemovesTemporaryFile(t *testing.T) {
	fs := NewFS()
	tempDir := t.TempDir()
	// A non empty directory cannot be replaced by a file.
	target := filepath.Join(tempDir, "sur.yml")
	require.NoError(t, os.MkdirAll(filepath.Join(target, "keep"), 0755))

	err := fs.WriteFileAtomic(target, []byte("kinds: []\n"), 0644)
	assert.Error(t, err)

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "sur.yml", entries[0].Name())
}
