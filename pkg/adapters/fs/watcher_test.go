package fs

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tree: []\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloads := make(chan struct{}, 10)
	w := NewWatcher(path, func(ctx context.Context) error {
		reloads <- struct{}{}
		return nil
	}, nil)
	require.NoError(t, w.Start(ctx))

	// Unrelated files and our own temp files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, TempFilePrefix+"1"), []byte("x"), 0644))

	require.NoError(t, writeFileAtomic(path, []byte("name: changed\ntree: []\n"), 0644))

	select {
	case <-reloads:
	case <-time.After(3 * time.Second):
		t.Fatal("no reload after the project changed")
	}

	cancel()
	select {
	case <-w.Done():
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_StartTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.yaml")
	require.NoError(t, os.WriteFile(path, []byte("tree: []\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWatcher(path, func(context.Context) error { return nil }, nil)
	require.NoError(t, w.Start(ctx))
	assert.Error(t, w.Start(ctx))
}

func TestWatcher_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	w := NewWatcher(filepath.Join(t.TempDir(), "p.yaml"), func(context.Context) error { return nil }, nil)
	assert.ErrorIs(t, w.Start(ctx), context.Canceled)
}

func TestDebouncer_Coalesces(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	var calls atomic.Int32

	for i := 0; i < 5; i++ {
		d.trigger(func() { calls.Add(1) })
	}
	d.stopAndWait(time.Second)

	assert.Equal(t, int32(1), calls.Load())

	d.trigger(func() { calls.Add(1) })
	d.stopAndWait(time.Second)
	assert.Equal(t, int32(1), calls.Load())
}
