package debounce

import (
	"sync"
	"time"
)

// Debouncer collapses bursts of calls into a single one: the function runs
// only after the quiet window has elapsed with no further calls. At most one
// timer is armed at a time; each call cancels the previous one.
type Debouncer struct {
	mu     sync.Mutex
	timer  *time.Timer
	window time.Duration
}

func New(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Do schedules fn after the quiet window, replacing any pending schedule.
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Cancel drops any pending schedule without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
