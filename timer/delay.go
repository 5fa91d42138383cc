package timer

import (
	"sync"
	"time"
)

// Delay is a one-shot, cancel-and-restart timer: at most one callback is pending at any
// instant. Starting it again invalidates the previous callback, and a callback that was
// already handed to the clock but not yet run is discarded when its arm has been superseded.
//
// A closed Delay never fires again and ignores Start.
type Delay struct {
	clock Clock

	mu     sync.Mutex
	timer  Timer
	gen    uint64
	armed  bool
	closed bool
}

// NewDelay creates an idle delay scheduling through the given clock.
func NewDelay(clock Clock) *Delay {
	return &Delay{clock: clock}
}

// Start arms fn to run after d, first invalidating any pending callback.
func (d *Delay) Start(after time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.stopLocked()
	d.armed = true
	gen := d.gen
	d.timer = d.clock.AfterFunc(after, func() {
		d.fire(gen, fn)
	})
}

// Stop invalidates the pending callback, if any. It reports whether one was pending.
// Stopping a delay that already fired is a no-op.
func (d *Delay) Stop() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	wasArmed := d.armed
	d.stopLocked()
	return wasArmed
}

// Pending reports whether a callback is armed.
func (d *Delay) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed
}

// Close stops the delay for good.
func (d *Delay) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.closed = true
}

func (d *Delay) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.armed = false
	d.gen++
}

func (d *Delay) fire(gen uint64, fn func()) {
	d.mu.Lock()
	if !d.armed || d.closed || gen != d.gen {
		d.mu.Unlock()
		return
	}
	d.armed = false
	d.timer = nil
	d.mu.Unlock()

	fn()
}
