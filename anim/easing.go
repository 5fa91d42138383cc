// Package anim drives scalar tweens (opacity, scale) on a timer.Clock.
//
// A Value is sampled lazily: its current value is a pure function of the clock time,
// so renderers read it at whatever frame rate they run and no frame loop is needed.
// Completion is signalled through a callback scheduled on the same clock.
package anim

import "math"

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(t float64) float64

var (
	Linear Easing = func(t float64) float64 { return t }

	EaseOut Easing = func(t float64) float64 {
		return 1 - math.Pow(1-t, 3)
	}

	EaseInOut Easing = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	}
)
