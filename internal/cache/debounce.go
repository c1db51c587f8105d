package cache

import (
	"sync"
	"time"
)

// Debouncer coalesces a burst of calls into one execution after a quiet
// period. Each Schedule cancels any pending run and restarts the timer, so
// the function fires once, delay after the last call. There is no
// flush-on-shutdown guarantee: work pending inside the window is lost if the
// process exits, which is an accepted tradeoff for a rebuildable cache.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer returns a debouncer with the given quiet period.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule arranges fn to run once the quiet period elapses without another
// Schedule call. A pending run is cancelled and rescheduled.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// CancelPending drops any scheduled run without executing it.
func (d *Debouncer) CancelPending() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
