package session

import (
	"math"
	"time"

	"github.com/curtain-cli/curtain/anim"
	"github.com/curtain-cli/curtain/timer"
)

const (
	// ResizeDuration is the scale transition between full and minimized presentation.
	ResizeDuration = 350 * time.Millisecond

	// fitTolerance is how close to 1 a fit scale may be before resizing is pointless.
	fitTolerance = 0.025
)

// Size is a width/height pair in any consistent unit.
type Size struct {
	Width, Height float64
}

// Known reports whether both dimensions are positive.
func (s Size) Known() bool {
	return s.Width > 0 && s.Height > 0
}

// AspectRatio is height over width.
func (s Size) AspectRatio() float64 {
	if s.Width <= 0 {
		return 0
	}
	return s.Height / s.Width
}

// FitScale is the factor that makes the surface's bounding box match the viewport
// along the constraining axis.
func FitScale(viewport, intrinsic Size) float64 {
	if !viewport.Known() || !intrinsic.Known() {
		return 1
	}

	if viewport.AspectRatio() <= intrinsic.AspectRatio() {
		return viewport.Width / intrinsic.Width
	}
	return viewport.Height / intrinsic.Height
}

// ResizeOffered reports whether a fit scale differs enough from 1 to be worth offering.
func ResizeOffered(fitScale float64) bool {
	return math.Abs(fitScale-1) > fitTolerance
}

// Resizer toggles between full and minimized presentation. It is purely presentational.
type Resizer struct {
	minimized bool
	scale     *anim.Value
}

func newResizer(clock timer.Clock) *Resizer {
	return &Resizer{scale: anim.NewValue(clock, 1)}
}

// Minimized reports the presentation the last toggle selected.
func (r *Resizer) Minimized() bool {
	return r.minimized
}

// Scale is the current presentation scale.
func (r *Resizer) Scale() float64 {
	return r.scale.Get()
}

// Toggle flips the presentation and animates between 1 and fitScale.
func (r *Resizer) Toggle(fitScale float64) {
	r.minimized = !r.minimized

	target := 1.0
	if r.minimized {
		target = fitScale
	}
	r.scale.Animate(target, ResizeDuration, anim.EaseInOut, nil)
}

func (r *Resizer) close() {
	r.scale.Close()
}

// SetViewport records the size of the area the surface is presented in.
func (s *Session) SetViewport(viewport Size) {
	s.viewport = viewport
}

// FitScale computes the fit scale for the current viewport and intrinsic video size.
// It is 1 while either is unknown.
func (s *Session) FitScale() float64 {
	return FitScale(s.viewport, s.natural)
}

// ResizeOffered reports whether the resize affordance makes sense right now.
func (s *Session) ResizeOffered() bool {
	return s.viewport.Known() && s.natural.Known() && ResizeOffered(s.FitScale())
}

// ToggleMinimize flips between full and minimized presentation. It is a controls
// interaction and has no lifecycle effect.
func (s *Session) ToggleMinimize() {
	if s.closed || s.opts.SmallPresentation || !s.opts.ResizeButtonEnabled || !s.ResizeOffered() {
		return
	}

	s.resizer.Toggle(s.FitScale())
	s.controls.ResetAutoHideTimer()
}
