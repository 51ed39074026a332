package fs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"sync"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces the burst of events an editor or an atomic
// rename produces into a single reload.
const DefaultDebounce = 50 * time.Millisecond

// Watcher calls OnChange whenever the project file at Path changes on disk.
// It watches the parent directory, because atomic writers replace the file
// instead of writing it in place.
type Watcher struct {
	Path         string
	OnChange     func(ctx context.Context) error
	Debounce     time.Duration
	Logger       *slog.Logger
	ErrorHandler func(error)

	watcher   *fsnotify.Watcher
	debouncer *debouncer
	done      chan struct{}
}

// NewWatcher creates a watcher for path.
func NewWatcher(path string, onChange func(ctx context.Context) error, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{
		Path:     path,
		OnChange: onChange,
		Debounce: DefaultDebounce,
		Logger:   logger,
	}
}

// Start begins watching in a background goroutine until ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if w.done != nil {
		return fmt.Errorf("watcher already started")
	}

	abs, err := filepath.Abs(w.Path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", w.Path, err)
	}
	w.Path = abs

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(w.Debounce)
	w.done = make(chan struct{})

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		w.handleError(fmt.Errorf("watcher panic: %w", err))
	}))
	return nil
}

// Done is closed once the watcher has stopped.
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

func (w *Watcher) run(ctx context.Context) (err error) {
	defer close(w.done)
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("watcher panic: %v", recovered)
			if w.Logger.Enabled(ctx, slog.LevelDebug) {
				w.Logger.Error("watcher panic", "error", err, "stack", string(debug.Stack()))
			} else {
				w.Logger.Error("watcher panic", "error", err)
			}
		}
	}()
	defer w.watcher.Close()

	err = w.loop(ctx)

	// Wait for a pending reload so none runs after Done is closed.
	w.debouncer.stopAndWait(5 * time.Second)
	return err
}

func (w *Watcher) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.Logger.Debug("project changed on disk", "path", event.Name, "op", event.Op.String())
			w.debouncer.trigger(func() {
				if err := w.OnChange(ctx); err != nil {
					w.handleError(fmt.Errorf("reload failed: %w", err))
				}
			})

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleError(wErr)
		}
	}
}

// relevant keeps events that may have replaced or rewritten the project file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if isTempFile(event.Name) {
		return false
	}
	if filepath.Clean(event.Name) != w.Path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}

func (w *Watcher) handleError(err error) {
	w.Logger.Error("watcher error", "error", err)
	if w.ErrorHandler != nil {
		w.ErrorHandler(err)
	}
}

// debouncer runs the last triggered function once events settle.
// Runs never overlap.
type debouncer struct {
	delay   time.Duration
	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
	running sync.WaitGroup
	exec    sync.Mutex
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

func (d *debouncer) trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil && d.timer.Stop() {
		d.running.Done()
	}

	d.running.Add(1)
	d.timer = time.AfterFunc(d.delay, func() {
		defer d.running.Done()
		d.exec.Lock()
		defer d.exec.Unlock()
		fn()
	})
}

// stopAndWait drops new triggers and waits up to timeout for pending runs.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	d.mu.Unlock()

	finished := make(chan struct{})
	go func() {
		d.running.Wait()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(timeout):
	}
}
