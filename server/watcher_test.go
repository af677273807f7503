package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchTree_DebouncesGoFileWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "users_handler.go")
	require.NoError(t, os.WriteFile(path, []byte("package users\n"), 0644))

	watcher, err := WatchTree(dir, 20*time.Millisecond)
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, os.WriteFile(path, []byte("package users\n\n// edited\n"), 0644))

	select {
	case err := <-watcher.Update:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("no update after writing a go file")
	}
}

func TestWatchTree_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	watcher, err := WatchTree(dir, 20*time.Millisecond)
	require.NoError(t, err)
	defer watcher.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))

	select {
	case <-watcher.Update:
		t.Fatal("unexpected update for a non-go file")
	case <-time.After(200 * time.Millisecond):
	}
}
