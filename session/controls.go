package session

import (
	"time"

	"github.com/curtain-cli/curtain/anim"
	"github.com/curtain-cli/curtain/timer"
)

const (
	// DefaultAutoHideInterval is how long the controls overlay stays up without interaction.
	DefaultAutoHideInterval = 8 * time.Second

	// ControlsFadeDuration is the overlay show/hide transition.
	ControlsFadeDuration = 250 * time.Millisecond
)

// Controls is the transport-controls overlay visibility state machine.
// When the capability is disabled every operation is inert and the overlay never shows.
type Controls struct {
	enabled  bool
	interval time.Duration

	shown         bool
	speedMenuOpen bool

	autoHide  *timer.Delay
	opacity   *anim.Value
	onSettled func()
}

func newControls(clock timer.Clock, enabled bool, interval time.Duration) *Controls {
	return &Controls{
		enabled:  enabled,
		interval: interval,
		autoHide: timer.NewDelay(clock),
		opacity:  anim.NewValue(clock, 0),
	}
}

// Enabled reports whether the transport-controls capability is on.
func (c *Controls) Enabled() bool {
	return c.enabled
}

// Shown reports whether the overlay accepts input.
func (c *Controls) Shown() bool {
	return c.shown
}

// SpeedMenuOpen reports whether the playback-speed menu is expanded.
func (c *Controls) SpeedMenuOpen() bool {
	return c.speedMenuOpen
}

// Opacity is the current overlay opacity in [0, 1].
func (c *Controls) Opacity() float64 {
	return c.opacity.Get()
}

// AutoHidePending reports whether the auto-hide timer is armed.
func (c *Controls) AutoHidePending() bool {
	return c.autoHide.Pending()
}

// SetInterval changes the auto-hide interval; it applies from the next arm.
func (c *Controls) SetInterval(d time.Duration) {
	if d > 0 {
		c.interval = d
	}
}

// Toggle shows hidden controls and hides shown ones.
func (c *Controls) Toggle() {
	if !c.enabled {
		return
	}

	if c.shown {
		c.Hide(nil)
	} else {
		c.Show(nil)
	}
}

// Show reveals the overlay and arms the auto-hide timer. onShown runs once the
// overlay is fully visible.
func (c *Controls) Show(onShown func()) {
	if !c.enabled {
		return
	}

	c.shown = true
	c.ResetAutoHideTimer()
	c.settle(1, onShown)
}

// Hide collapses the speed menu, disarms the auto-hide timer and fades the overlay out.
// onHidden runs once the overlay is fully transparent.
func (c *Controls) Hide(onHidden func()) {
	if !c.enabled {
		return
	}

	c.speedMenuOpen = false
	c.shown = false
	c.autoHide.Stop()
	c.settle(0, onHidden)
}

// ResetAutoHideTimer re-arms the auto-hide timer, replacing any pending one. Every
// interaction with shown controls calls it so the overlay never hides mid-interaction.
func (c *Controls) ResetAutoHideTimer() {
	if !c.enabled || !c.shown {
		return
	}

	c.autoHide.Start(c.interval, func() {
		c.Hide(nil)
	})
}

// ToggleSpeedMenu opens or closes the speed menu. It reports false when the controls
// are hidden, since the menu is only reachable through the overlay.
func (c *Controls) ToggleSpeedMenu() bool {
	if !c.enabled || !c.shown {
		return false
	}

	c.speedMenuOpen = !c.speedMenuOpen
	c.ResetAutoHideTimer()
	return true
}

// closeSpeedMenu collapses the speed menu after a selection.
func (c *Controls) closeSpeedMenu() {
	c.speedMenuOpen = false
}

// settle fades to the given opacity. A transition interrupted by a newer one still
// reports completion, so work deferred on it is never lost.
func (c *Controls) settle(to float64, done func()) {
	if prev := c.onSettled; prev != nil {
		c.onSettled = nil
		prev()
	}

	if !c.opacity.Animating() && c.opacity.Get() == to {
		if done != nil {
			done()
		}
		return
	}

	c.onSettled = done
	c.opacity.Animate(to, ControlsFadeDuration, anim.EaseOut, func() {
		cb := c.onSettled
		c.onSettled = nil
		if cb != nil {
			cb()
		}
	})
}

func (c *Controls) close() {
	c.onSettled = nil
	c.autoHide.Close()
	c.opacity.Close()
}
