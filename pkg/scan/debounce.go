package scan

import (
	"sync"
	"time"
)

// Debouncer collapses rapid event bursts into a single callback per key
// after a quiet period. Editors and firmware extractors often write a file
// several times in quick succession; keying by path keeps a burst touching
// several files from suppressing any of their callbacks.
type Debouncer struct {
	interval time.Duration
	mu       sync.Mutex
	timers   map[string]*time.Timer
	stopped  bool
}

// NewDebouncer creates a debouncer with the given quiet period.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		timers:   make(map[string]*time.Timer),
	}
}

// Trigger arms the debouncer for key. The callback fires after the quiet
// period unless another Trigger for the same key arrives first, which
// restarts the wait. Triggers for distinct keys are independent.
func (d *Debouncer) Trigger(key string, callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if timer, ok := d.timers[key]; ok {
		timer.Stop()
	}

	d.timers[key] = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		if d.stopped {
			d.mu.Unlock()
			return
		}
		delete(d.timers, key)
		d.mu.Unlock()
		callback()
	})
}

// Stop cancels all pending callbacks.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	for key, timer := range d.timers {
		timer.Stop()
		delete(d.timers, key)
	}
}
