package apiclient

import (
	"sync"
	"time"
)

// DefaultDebounce matches the search boxes' settle time.
const DefaultDebounce = 500 * time.Millisecond

// Debouncer coalesces a burst of calls into one: fn runs once with the last
// value submitted, after the interval has passed with no newer submission.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(interval time.Duration) *Debouncer {
	if interval <= 0 {
		interval = DefaultDebounce
	}
	return &Debouncer{interval: interval}
}

// Submit schedules fn with value, cancelling any pending earlier submission.
func (d *Debouncer) Submit(value string, fn func(string)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, func() {
		fn(value)
	})
}

// Stop cancels any pending submission.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
