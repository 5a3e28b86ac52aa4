package fs

import (
	"sync"
	"time"

	"github.com/jotkit/jot/pkg/core"
)

// debouncer coalesces bursts of filesystem events per subject ID.
// Editors and atomic renames produce several notifications per logical
// write; only the last one within the interval fires.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timers   map[string]*time.Timer
	stopped  bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{
		interval: interval,
		timers:   make(map[string]*time.Timer),
	}
}

// add schedules fire(e) after the interval, replacing any pending timer
// for the same event ID.
func (d *debouncer) add(e core.Event, fire func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if t, ok := d.timers[e.ID]; ok {
		t.Stop()
	}
	d.timers[e.ID] = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		stopped := d.stopped
		delete(d.timers, e.ID)
		d.mu.Unlock()
		if !stopped {
			fire(e)
		}
	})
}

// stop cancels all pending timers and rejects further adds.
func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for id, t := range d.timers {
		t.Stop()
		delete(d.timers, id)
	}
}
