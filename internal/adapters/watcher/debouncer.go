// Package watcher reloads the seed file when it changes on disk.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceWindow is how long a file must stay quiet before a change is reported.
const DefaultDebounceWindow = 100 * time.Millisecond

// Debouncer collapses a burst of triggers into one callback run after the burst settles.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	gen      uint64
	window   time.Duration
	dirty    bool
	stopped  bool
	callback func()
}

// NewDebouncer creates a debouncer that calls callback once window has passed without a trigger.
func NewDebouncer(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{window: window, callback: callback}
}

// Trigger records a change and restarts the quiet window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.dirty = true
	if d.timer != nil {
		d.timer.Stop()
	}
	// A timer that already fired may be waiting on mu; its generation is now stale.
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.window, func() { d.fire(gen) })
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	if !d.dirty || d.stopped {
		d.mu.Unlock()
		return
	}
	d.dirty = false
	d.mu.Unlock()

	if d.callback != nil {
		d.callback()
	}
}

// Stop discards any pending change. Later triggers are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	d.dirty = false
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
