// Package timer provides the clock abstraction and the cancel-and-restart one-shot delay
// used to drive time-based playback behavior (controls auto-hide, crossfade steps, tweens).
package timer

import "time"

// Timer is a handle to a callback scheduled by a Clock.
type Timer interface {
	// Stop prevents the callback from firing. It reports whether the call stopped the timer,
	// false if the timer had already fired or been stopped.
	Stop() bool
}

// Clock schedules callbacks and reports the current time.
//
// Implementations decide on which goroutine a callback runs. A playback session is
// single-threaded, so the clock handed to it must deliver callbacks on the session's
// owner goroutine (see Manual and the TUI event-loop clock).
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, fn func()) Timer
}

// Real is a Clock backed by the runtime timers. Callbacks run on their own goroutine.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}

func (Real) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
