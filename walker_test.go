package renamer

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanPaths(t *testing.T, root string, opts ScanOptions) []string {
	t.Helper()
	entries, err := Scan(root, opts)
	require.NoError(t, err)
	var paths []string
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	return paths
}

func TestScanListsImmediateFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "b.txt"))
	touch(t, filepath.Join(dir, "a.txt"))

	assert.Equal(t, []string{"a.txt", "b.txt"}, scanPaths(t, dir, ScanOptions{}))
}

func TestScanNaturalOrder(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "track10.mp3"))
	touch(t, filepath.Join(dir, "track2.mp3"))
	touch(t, filepath.Join(dir, "track1.mp3"))

	assert.Equal(t, []string{"track1.mp3", "track2.mp3", "track10.mp3"}, scanPaths(t, dir, ScanOptions{}))
}

func TestScanSkipsHidden(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "visible.txt"))
	touch(t, filepath.Join(dir, ".hidden.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".hiddendir"), 0755))
	touch(t, filepath.Join(dir, ".hiddendir", "inner.txt"))

	got := scanPaths(t, dir, ScanOptions{Recursive: true, IncludeDirs: true})
	assert.Equal(t, []string{"visible.txt"}, got)
}

func TestScanDepthLimit(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "top.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	touch(t, filepath.Join(dir, "sub", "inner.txt"))

	t.Run("immediate_only", func(t *testing.T) {
		assert.Equal(t, []string{"top.txt"}, scanPaths(t, dir, ScanOptions{}))
	})

	t.Run("immediate_with_dirs", func(t *testing.T) {
		got := scanPaths(t, dir, ScanOptions{IncludeDirs: true})
		assert.Equal(t, []string{"sub", "top.txt"}, got)
	})

	t.Run("recursive", func(t *testing.T) {
		got := scanPaths(t, dir, ScanOptions{Recursive: true})
		assert.Equal(t, []string{filepath.Join("sub", "inner.txt"), "top.txt"}, got)
	})

	t.Run("recursive_with_dirs", func(t *testing.T) {
		got := scanPaths(t, dir, ScanOptions{Recursive: true, IncludeDirs: true})
		assert.Equal(t, []string{"sub", filepath.Join("sub", "inner.txt"), "top.txt"}, got)
	})
}

func TestScanEntryKinds(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "f.txt"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "d"), 0755))

	entries, err := Scan(dir, ScanOptions{IncludeDirs: true})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, Entry{Kind: KindDir, Path: "d"}, entries[0])
	assert.Equal(t, Entry{Kind: KindFile, Path: "f.txt"}, entries[1])
}

func TestScanPatternFilter(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "keep.txt"))
	touch(t, filepath.Join(dir, "skip.md"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))
	touch(t, filepath.Join(dir, "sub", "nested.txt"))

	got := scanPaths(t, dir, ScanOptions{
		Pattern:   regexp.MustCompile(`\.txt$`),
		Recursive: true,
	})
	assert.Equal(t, []string{"keep.txt", filepath.Join("sub", "nested.txt")}, got)
}

func TestScanPatternMatchesRelativePath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "photos"), 0755))
	touch(t, filepath.Join(dir, "photos", "img.jpg"))
	touch(t, filepath.Join(dir, "img.jpg"))

	got := scanPaths(t, dir, ScanOptions{
		Pattern:   regexp.MustCompile(`^photos`),
		Recursive: true,
	})
	assert.Equal(t, []string{filepath.Join("photos", "img.jpg")}, got)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"), ScanOptions{})
	assert.Error(t, err)
}
