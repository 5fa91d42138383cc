package anim

import (
	"time"

	"github.com/curtain-cli/curtain/timer"
)

// Value is a tweened scalar. It is not safe for concurrent use.
type Value struct {
	clock timer.Clock
	done  *timer.Delay

	from, to float64
	start    time.Time
	duration time.Duration
	easing   Easing
	running  bool
}

// NewValue creates a resting value.
func NewValue(clock timer.Clock, initial float64) *Value {
	return &Value{
		clock:  clock,
		done:   timer.NewDelay(clock),
		from:   initial,
		to:     initial,
		easing: Linear,
	}
}

// Get samples the value at the current clock time.
func (v *Value) Get() float64 {
	if !v.running {
		return v.to
	}

	elapsed := v.clock.Now().Sub(v.start)
	if elapsed >= v.duration {
		return v.to
	}
	if elapsed <= 0 {
		return v.from
	}

	progress := float64(elapsed) / float64(v.duration)
	return v.from + (v.to-v.from)*v.easing(progress)
}

// Target returns the value the current animation settles on.
func (v *Value) Target() float64 {
	return v.to
}

// Animating reports whether a tween is in flight.
func (v *Value) Animating() bool {
	return v.running
}

// Set jumps to x, cancelling any tween in flight. The cancelled tween's completion never runs.
func (v *Value) Set(x float64) {
	v.done.Stop()
	v.running = false
	v.from, v.to = x, x
}

// Animate tweens from the current value to `to` over d. onDone runs once the tween
// completes; it does not run if the tween is superseded by Set, Stop or another Animate.
// A non-positive duration jumps immediately and runs onDone synchronously.
func (v *Value) Animate(to float64, d time.Duration, easing Easing, onDone func()) {
	current := v.Get()

	if d <= 0 {
		v.Set(to)
		if onDone != nil {
			onDone()
		}
		return
	}

	if easing == nil {
		easing = Linear
	}

	v.from, v.to = current, to
	v.start = v.clock.Now()
	v.duration = d
	v.easing = easing
	v.running = true

	v.done.Start(d, func() {
		v.running = false
		v.from = v.to
		if onDone != nil {
			onDone()
		}
	})
}

// Stop freezes the value where it currently is.
func (v *Value) Stop() {
	v.Set(v.Get())
}

// Close cancels any tween for good; the value keeps its last sample.
func (v *Value) Close() {
	v.Stop()
	v.done.Close()
}

// Join returns a callback that runs done after it has been called n times.
// It is used to wait for tweens running in parallel.
func Join(n int, done func()) func() {
	if n <= 0 {
		if done != nil {
			done()
		}
		return func() {}
	}

	remaining := n
	return func() {
		remaining--
		if remaining == 0 && done != nil {
			done()
		}
	}
}
