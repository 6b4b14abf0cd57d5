package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/RastaKolobar/pyre-check/internal/adapters/watcher"
	"github.com/RastaKolobar/pyre-check/internal/core/ports"
)

func TestWatcher_Start_ReportsWriteEvent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "module.py")
	require.NoError(t, os.WriteFile(path, []byte("x = 1\n"), 0o644))

	w, err := watcher.NewWatcher()
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, w.Start(ctx, dir))

	received := make(chan ports.WatchEvent, 8)
	go func() {
		for ev := range w.Events() {
			received <- ev
		}
	}()

	require.NoError(t, os.WriteFile(path, []byte("x = 2\n"), 0o644))

	select {
	case ev := <-received:
		require.Equal(t, path, ev.Path)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for write event")
	}
}
