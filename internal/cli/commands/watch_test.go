package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchDirRecursive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Sources", "App"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git", "objects"), 0o755))

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, watchDirRecursive(watcher, dir))

	watched := watcher.WatchList()
	assert.Contains(t, watched, dir)
	assert.Contains(t, watched, filepath.Join(dir, "Sources"))
	assert.Contains(t, watched, filepath.Join(dir, "Sources", "App"))
	assert.NotContains(t, watched, filepath.Join(dir, ".git"))
	assert.NotContains(t, watched, filepath.Join(dir, ".git", "objects"))
}

func TestWatchDirRecursiveFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "App.swift")
	require.NoError(t, os.WriteFile(path, []byte("let x = 1\n"), 0o644))

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()

	// A single file watches its parent directory
	require.NoError(t, watchDirRecursive(watcher, path))
	assert.Contains(t, watcher.WatchList(), dir)
}

func TestWatchDirRecursiveMissing(t *testing.T) {
	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()

	assert.Error(t, watchDirRecursive(watcher, filepath.Join(t.TempDir(), "nope")))
}
