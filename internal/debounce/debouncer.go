// Package debounce coalesces bursts of events into one trailing callback.
package debounce

import (
	"sync"
	"time"
)

// DefaultDuration is used when a Debouncer is created with a zero duration.
const DefaultDuration = 50 * time.Millisecond

// Debouncer runs only the most recently triggered callback, once the
// duration has elapsed without a newer Trigger.
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	seq      uint64
}

// New creates a Debouncer. A non-positive duration selects DefaultDuration.
func New(duration time.Duration) *Debouncer {
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Debouncer{duration: duration}
}

// Trigger schedules callback, replacing any pending one.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// A stale timer can fire after Stop returned false; only the latest
		// sequence number may run.
		if seq != d.seq {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		callback()
	})
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a callback is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Duration returns the debounce window.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
