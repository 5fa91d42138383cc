package session

import (
	"testing"
	"time"

	"github.com/curtain-cli/curtain/timer"
	. "github.com/smartystreets/goconvey/convey"
)

func TestControlsAutoHide(t *testing.T) {
	Convey("Given shown controls on a playing session", t, func() {
		opts := testOptions()
		opts.ShowControlsOnPause = false
		s, _, clock := playing(opts)

		s.ToggleControls()
		So(s.Controls().Shown(), ShouldBeTrue)
		So(s.Controls().AutoHidePending(), ShouldBeTrue)

		Convey("They hide after 8 seconds without interaction", func() {
			clock.Advance(DefaultAutoHideInterval - time.Millisecond)
			So(s.Controls().Shown(), ShouldBeTrue)

			clock.Advance(time.Millisecond)
			So(s.Controls().Shown(), ShouldBeFalse)
			So(s.Controls().AutoHidePending(), ShouldBeFalse)

			clock.Advance(ControlsFadeDuration)
			So(s.Controls().Opacity(), ShouldEqual, 0)
		})

		Convey("An open speed menu closes with them", func() {
			So(s.ToggleSpeedMenu(), ShouldBeTrue)
			clock.Advance(DefaultAutoHideInterval)
			So(s.Controls().Shown(), ShouldBeFalse)
			So(s.Controls().SpeedMenuOpen(), ShouldBeFalse)
		})

		Convey("A seek at 5s pushes the deadline to 13s", func() {
			clock.Advance(5 * time.Second)
			s.SeekRelative(Forward)

			clock.Advance(7999 * time.Millisecond)
			So(s.Controls().Shown(), ShouldBeTrue)

			clock.Advance(time.Millisecond)
			So(s.Controls().Shown(), ShouldBeFalse)
		})

		Convey("Interactions never stack timers", func() {
			before := clock.Pending()
			for i := 0; i < 5; i++ {
				s.Interact()
				s.SeekAbsolute(float64(i))
				_ = s.SetSpeed(Speeds[i])
			}
			So(clock.Pending(), ShouldBeLessThanOrEqualTo, before)
			So(s.Controls().AutoHidePending(), ShouldBeTrue)
		})

		Convey("Toggling hides them at once and disarms the timer", func() {
			s.ToggleControls()
			So(s.Controls().Shown(), ShouldBeFalse)
			So(s.Controls().AutoHidePending(), ShouldBeFalse)
		})

		Convey("The timer keeps running while paused", func() {
			s.Pause()
			So(s.State(), ShouldEqual, Paused)
			clock.Advance(DefaultAutoHideInterval)
			So(s.Controls().Shown(), ShouldBeFalse)
			So(s.State(), ShouldEqual, Paused)
		})

		Convey("They hide when playback ends", func() {
			s.Stop()
			So(s.Controls().Shown(), ShouldBeFalse)
		})
	})

	Convey("Interactions with hidden controls do not arm a timer", t, func() {
		s, _, _ := playing(testOptions())
		s.Interact()
		s.SeekRelative(Forward)
		So(s.Controls().AutoHidePending(), ShouldBeFalse)
		So(s.ToggleSpeedMenu(), ShouldBeFalse)
	})

	Convey("A custom interval is honored", t, func() {
		opts := testOptions()
		opts.AutoHideInterval = 3 * time.Second
		s, _, clock := playing(opts)
		s.ToggleControls()
		clock.Advance(3 * time.Second)
		So(s.Controls().Shown(), ShouldBeFalse)
	})
}

func TestControlsDisabled(t *testing.T) {
	Convey("With the controls capability off", t, func() {
		opts := testOptions()
		opts.ControlsEnabled = false
		s, surface, clock := playing(opts)

		Convey("Every controls operation is inert", func() {
			s.ToggleControls()
			s.Interact()
			So(s.ToggleSpeedMenu(), ShouldBeFalse)
			So(s.Controls().Shown(), ShouldBeFalse)
			So(s.Controls().AutoHidePending(), ShouldBeFalse)
			So(s.Snapshot().Buttons, ShouldResemble, Buttons{})
		})

		Convey("Pause applies immediately", func() {
			s.TogglePause(false, nil)
			So(s.State(), ShouldEqual, Paused)
			So(surface.paused, ShouldResemble, []bool{true})
			clock.Advance(time.Minute)
			So(s.Controls().Opacity(), ShouldEqual, 0)
		})
	})
}

func TestButtons(t *testing.T) {
	Convey("Given enabled controls", t, func() {
		Convey("Full presentation offers the whole set", func() {
			s, _, _ := playing(testOptions())
			s.SetViewport(Size{Width: 1080, Height: 1920})
			s.OnNaturalSize(1920, 1080)

			full := Buttons{
				PlayPause: true,
				Seek:      true,
				Speed:     true,
				Close:     true,
				Stop:      true,
				Resize:    true,
			}
			So(s.Snapshot().Layout, ShouldResemble, full)

			Convey("Only play/pause and close take input while hidden", func() {
				So(s.Controls().Shown(), ShouldBeFalse)
				So(s.Snapshot().Buttons, ShouldResemble, Buttons{PlayPause: true, Close: true})
			})

			Convey("Everything takes input once shown", func() {
				s.ToggleControls()
				So(s.Snapshot().Buttons, ShouldResemble, full)

				s.ToggleControls()
				So(s.Snapshot().Buttons, ShouldResemble, Buttons{PlayPause: true, Close: true})
				So(s.Snapshot().Layout, ShouldResemble, full)
			})
		})

		Convey("Small presentation offers only play/pause and close", func() {
			opts := testOptions()
			opts.SmallPresentation = true
			s, _, _ := playing(opts)
			s.ToggleControls()

			So(s.Snapshot().Layout, ShouldResemble, Buttons{PlayPause: true, Close: true})
			So(s.Snapshot().Buttons, ShouldResemble, Buttons{PlayPause: true, Close: true})
			So(s.ToggleSpeedMenu(), ShouldBeFalse)
		})

		Convey("Disabled buttons are not offered", func() {
			opts := testOptions()
			opts.CloseButtonEnabled = false
			opts.StopButtonEnabled = false
			s, _, _ := playing(opts)
			s.ToggleControls()

			buttons := s.Snapshot().Buttons
			So(buttons.Close, ShouldBeFalse)
			So(buttons.Stop, ShouldBeFalse)
			So(buttons.Resize, ShouldBeFalse)
		})
	})
}

func TestControlsOpacity(t *testing.T) {
	Convey("Overlay transitions", t, func() {
		clock := timer.NewManual(time.Unix(0, 0))
		c := newControls(clock, true, DefaultAutoHideInterval)

		Convey("Show reports completion once fully visible", func() {
			shown := false
			c.Show(func() { shown = true })
			So(shown, ShouldBeFalse)

			clock.Advance(ControlsFadeDuration / 2)
			So(c.Opacity(), ShouldBeBetween, 0, 1)

			clock.Advance(ControlsFadeDuration / 2)
			So(shown, ShouldBeTrue)
			So(c.Opacity(), ShouldEqual, 1)
		})

		Convey("Show on already visible controls completes at once", func() {
			c.Show(nil)
			clock.Advance(ControlsFadeDuration)

			shown := false
			c.Show(func() { shown = true })
			So(shown, ShouldBeTrue)
		})

		Convey("An interrupted transition still reports completion", func() {
			calls := 0
			c.Show(func() { calls++ })
			c.Hide(func() { calls++ })
			So(calls, ShouldEqual, 1)

			clock.Advance(ControlsFadeDuration)
			So(calls, ShouldEqual, 2)
			So(c.Opacity(), ShouldEqual, 0)
		})

		Convey("Close drops every pending callback", func() {
			called := false
			c.Show(func() { called = true })
			c.close()
			clock.Advance(time.Minute)
			So(called, ShouldBeFalse)
			So(clock.Pending(), ShouldEqual, 0)
		})
	})
}
