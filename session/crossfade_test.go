package session

import (
	"testing"
	"time"

	"github.com/curtain-cli/curtain/timer"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCrossfade(t *testing.T) {
	Convey("Given a crossfade holding the preview", t, func() {
		clock := timer.NewManual(time.Unix(0, 0))
		c := newCrossfade(clock)

		So(c.PreviewOpacity(), ShouldEqual, 1)
		So(c.SurfaceOpacity(), ShouldEqual, 0)

		Convey("Reveal waits, fades the surface in, then the preview out", func() {
			revealed := false
			c.Reveal(func() { revealed = true })

			clock.Advance(RevealDelay - time.Millisecond)
			So(c.SurfaceOpacity(), ShouldEqual, 0)

			clock.Advance(time.Millisecond + SurfaceFadeIn/2)
			So(c.SurfaceOpacity(), ShouldAlmostEqual, 0.5, 1e-9)
			So(c.PreviewOpacity(), ShouldEqual, 1)

			clock.Advance(SurfaceFadeIn / 2)
			So(c.SurfaceOpacity(), ShouldEqual, 1)
			So(c.PreviewOpacity(), ShouldEqual, 1)
			So(revealed, ShouldBeFalse)

			clock.Advance(PreviewFadeOut)
			So(c.PreviewOpacity(), ShouldEqual, 0)
			So(revealed, ShouldBeTrue)

			Convey("Conceal brings the preview back over the surface", func() {
				concealed := false
				c.Conceal(func() { concealed = true })

				clock.Advance(PreviewFadeIn)
				So(c.PreviewOpacity(), ShouldEqual, 1)
				So(c.SurfaceOpacity(), ShouldEqual, 1)
				So(concealed, ShouldBeTrue)
			})
		})

		Convey("Hold during the reveal delay cancels the reveal", func() {
			c.Reveal(nil)
			clock.Advance(RevealDelay / 2)
			c.Hold()
			clock.Advance(time.Second)

			So(c.SurfaceOpacity(), ShouldEqual, 0)
			So(c.PreviewOpacity(), ShouldEqual, 1)
		})

		Convey("ConcealNow runs both fades in parallel", func() {
			c.Reveal(nil)
			clock.Advance(time.Second)

			done := 0
			c.ConcealNow(200*time.Millisecond, func() { done++ })
			clock.Advance(100 * time.Millisecond)
			So(c.PreviewOpacity(), ShouldAlmostEqual, 0.5, 1e-9)
			So(c.SurfaceOpacity(), ShouldAlmostEqual, 0.5, 1e-9)

			clock.Advance(100 * time.Millisecond)
			So(done, ShouldEqual, 1)
			So(c.PreviewOpacity(), ShouldEqual, 1)
			So(c.SurfaceOpacity(), ShouldEqual, 0)
		})

		Convey("A zero ConcealNow completes at once", func() {
			done := false
			c.ConcealNow(0, func() { done = true })
			So(done, ShouldBeTrue)
		})
	})
}

func TestAnimating(t *testing.T) {
	Convey("A playing session animates only through the reveal", t, func() {
		s, _, clock := playing(testOptions())
		So(s.Animating(), ShouldBeTrue)

		clock.Advance(RevealDelay + SurfaceFadeIn + PreviewFadeOut)
		So(s.Animating(), ShouldBeFalse)

		s.ToggleControls()
		So(s.Animating(), ShouldBeTrue)
		clock.Advance(ControlsFadeDuration)
		So(s.Animating(), ShouldBeFalse)
	})
}
