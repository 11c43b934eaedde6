package watcher

import (
	"context"
	"iter"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/cookbook/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*FileWatcher)(nil)

// FileWatcher reports writes to a single file.
// It watches the parent directory so editors that replace the file by rename are still seen.
type FileWatcher struct {
	logger  ports.Logger
	window  time.Duration
	changes chan string

	mu        sync.Mutex
	fsWatcher *fsnotify.Watcher
	target    string
	closed    bool
}

// NewFileWatcher creates a watcher that debounces writes over window.
// No operating system resources are held until Start.
func NewFileWatcher(logger ports.Logger, window time.Duration) *FileWatcher {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &FileWatcher{
		logger:  logger,
		window:  window,
		changes: make(chan string, 1),
	}
}

// Start begins watching path. Events are processed until ctx is done or Stop is called.
// A watcher can be started once.
func (w *FileWatcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to resolve watched file"), "path", path)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsWatcher != nil || w.closed {
		return zerr.With(zerr.New("watcher already started"), "path", abs)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create file watcher")
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		_ = fsWatcher.Close()
		return zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", filepath.Dir(abs))
	}
	w.fsWatcher = fsWatcher
	w.target = abs

	debouncer := NewDebouncer(w.window, w.notify)
	go w.processEvents(ctx, fsWatcher, abs, debouncer)
	return nil
}

// Stop stops the watcher and releases all resources.
// Stopping a watcher that never started ends its Changes sequence.
func (w *FileWatcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fsWatcher == nil {
		w.closeLocked()
		return nil
	}
	return w.fsWatcher.Close()
}

func (w *FileWatcher) closeLocked() {
	if !w.closed {
		w.closed = true
		close(w.changes)
	}
}

// Changes yields the watched path once per settled burst of writes.
// The sequence ends when the watcher stops.
func (w *FileWatcher) Changes() iter.Seq[string] {
	return func(yield func(string) bool) {
		for path := range w.changes {
			if !yield(path) {
				return
			}
		}
	}
}

// notify queues one change. A change already waiting to be read absorbs this one.
func (w *FileWatcher) notify() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}

	select {
	case w.changes <- w.target:
	default:
	}
}

func (w *FileWatcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher, target string, debouncer *Debouncer) {
	defer func() {
		debouncer.Stop()
		_ = fsWatcher.Close()
		w.mu.Lock()
		w.closeLocked()
		w.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) {
				w.logger.Debug("seed file changed", "path", target, "op", event.Op.String())
				debouncer.Trigger()
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(zerr.Wrap(err, "file watcher error"))
		}
	}
}
