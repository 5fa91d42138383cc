package session

import (
	"time"

	"github.com/curtain-cli/curtain/anim"
	"github.com/curtain-cli/curtain/timer"
)

const (
	// RevealDelay masks the surface's first-frame warm-up after it reports ready.
	RevealDelay = 200 * time.Millisecond
	// SurfaceFadeIn brings the surface to full opacity.
	SurfaceFadeIn = 100 * time.Millisecond
	// PreviewFadeOut starts once the surface is painted, so the preview never
	// disappears over a black frame.
	PreviewFadeOut = 300 * time.Millisecond
	// PreviewFadeIn covers the surface again at the end of playback.
	PreviewFadeIn = 300 * time.Millisecond
	// DefaultTeardownFade is the forced-teardown fade when the caller picks none.
	DefaultTeardownFade = 300 * time.Millisecond
)

// Crossfade sequences the opacity hand-off between the preview image layer and the
// video surface layer.
type Crossfade struct {
	preview *anim.Value
	surface *anim.Value
	delay   *timer.Delay
}

func newCrossfade(clock timer.Clock) *Crossfade {
	return &Crossfade{
		preview: anim.NewValue(clock, 1),
		surface: anim.NewValue(clock, 0),
		delay:   timer.NewDelay(clock),
	}
}

// PreviewOpacity is the current opacity of the preview image layer.
func (c *Crossfade) PreviewOpacity() float64 {
	return c.preview.Get()
}

// SurfaceOpacity is the current opacity of the video surface layer.
func (c *Crossfade) SurfaceOpacity() float64 {
	return c.surface.Get()
}

// Hold shows the preview fully opaque over a transparent surface.
func (c *Crossfade) Hold() {
	c.delay.Stop()
	c.preview.Set(1)
	c.surface.Set(0)
}

// Reveal hands off from the preview to the surface: wait RevealDelay, fade the
// surface in, then fade the preview out. onRevealed runs when the preview is gone.
func (c *Crossfade) Reveal(onRevealed func()) {
	c.delay.Start(RevealDelay, func() {
		c.surface.Animate(1, SurfaceFadeIn, anim.Linear, func() {
			c.preview.Animate(0, PreviewFadeOut, anim.EaseOut, onRevealed)
		})
	})
}

// Conceal fades the preview back in over the surface, which stays where it is
// underneath. onConcealed runs when the preview is fully opaque.
func (c *Crossfade) Conceal(onConcealed func()) {
	c.delay.Stop()
	c.surface.Stop()
	c.preview.Animate(1, PreviewFadeIn, anim.EaseOut, onConcealed)
}

// ConcealNow fades the preview in and the surface out in parallel over d.
func (c *Crossfade) ConcealNow(d time.Duration, onDone func()) {
	c.delay.Stop()
	join := anim.Join(2, onDone)
	c.preview.Animate(1, d, anim.Linear, join)
	c.surface.Animate(0, d, anim.Linear, join)
}

func (c *Crossfade) close() {
	c.delay.Close()
	c.preview.Close()
	c.surface.Close()
}
