package session

import (
	"errors"
	"testing"
	"time"

	"github.com/curtain-cli/curtain/timer"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestColdStart(t *testing.T) {
	Convey("Given a session that launches on mount", t, func() {
		clock := timer.NewManual(time.Unix(0, 0))
		surface := &recordingSurface{}
		var transitions []string
		opts := testOptions()
		opts.OnStateChange = func(from, to PlaybackState) {
			transitions = append(transitions, from.String()+">"+to.String())
		}
		s := New(surface, clock, opts)

		So(s.State(), ShouldEqual, Idle)
		So(s.Mount(), ShouldBeNil)

		Convey("It enters Loading synchronously and attaches the surface", func() {
			So(s.State(), ShouldEqual, Loading)
			So(surface.commands, ShouldResemble, []string{"attach workout.mp4 muted=false loop=false"})

			snap := s.Snapshot()
			So(snap.PreviewOpacity, ShouldEqual, 1)
			So(snap.SurfaceOpacity, ShouldEqual, 0)
			So(snap.SurfaceMounted, ShouldBeTrue)
		})

		Convey("It ignores progress and end before playback starts", func() {
			s.OnProgress(30)
			s.OnEnd()
			So(s.State(), ShouldEqual, Loading)
			So(s.Position().CurrentTime, ShouldEqual, 0)
		})

		Convey("Ready for display starts playback and the crossfade", func() {
			ready := 0
			s.opts.OnReadyForDisplay = func() { ready++ }

			s.OnLoaded(120, 0)
			s.OnReadyForDisplay()
			So(s.State(), ShouldEqual, Playing)
			So(ready, ShouldEqual, 1)

			clock.Advance(RevealDelay)
			So(s.Snapshot().SurfaceOpacity, ShouldEqual, 0)
			So(s.Snapshot().PreviewOpacity, ShouldEqual, 1)

			clock.Advance(SurfaceFadeIn)
			So(s.Snapshot().SurfaceOpacity, ShouldEqual, 1)
			So(s.Snapshot().PreviewOpacity, ShouldEqual, 1)

			clock.Advance(PreviewFadeOut)
			So(s.Snapshot().PreviewOpacity, ShouldEqual, 0)
			So(clock.Now().Sub(time.Unix(0, 0)), ShouldBeLessThanOrEqualTo, 700*time.Millisecond)

			Convey("A repeated ready signal has no effect", func() {
				s.OnReadyForDisplay()
				So(ready, ShouldEqual, 1)
				So(transitions, ShouldResemble, []string{"Idle>Loading", "Loading>Playing"})
			})
		})
	})

	Convey("Launching without a source fails", t, func() {
		opts := testOptions()
		opts.VideoSource = ""
		s := New(&recordingSurface{}, timer.NewManual(time.Unix(0, 0)), opts)
		So(errors.Is(s.Mount(), ErrNoSource), ShouldBeTrue)
		So(s.State(), ShouldEqual, Idle)
	})

	Convey("Attach failures pass through to the host", t, func() {
		var got error
		opts := testOptions()
		opts.OnError = func(err error) { got = err }
		surface := &recordingSurface{attachErr: errors.New("no decoder")}
		s := New(surface, timer.NewManual(time.Unix(0, 0)), opts)

		err := s.Mount()
		So(err, ShouldNotBeNil)
		So(errors.Is(got, surface.attachErr), ShouldBeTrue)

		Convey("The session is left as it was before the launch", func() {
			So(s.State(), ShouldEqual, Idle)
			So(s.Snapshot().SurfaceMounted, ShouldBeFalse)
		})

		Convey("A later launch retries the attach", func() {
			surface.attachErr = nil
			So(s.Launch(), ShouldBeNil)
			So(s.State(), ShouldEqual, Loading)
			So(s.Snapshot().SurfaceMounted, ShouldBeTrue)
			So(surface.count("detach"), ShouldEqual, 0)
		})
	})

	Convey("A failed replay stays ended", t, func() {
		s, surface, _ := playing(testOptions())
		s.OnEnd()
		So(s.State(), ShouldEqual, Ended)

		surface.attachErr = errors.New("no decoder")
		So(s.Launch(), ShouldNotBeNil)
		So(s.State(), ShouldEqual, Ended)
		So(s.Snapshot().SurfaceMounted, ShouldBeFalse)
	})
}

func TestTogglePause(t *testing.T) {
	Convey("Given a playing session with controls shown on pause", t, func() {
		s, surface, clock := playing(testOptions())

		Convey("Pausing waits for the controls to be shown", func() {
			done := false
			s.TogglePause(false, func() { done = true })
			So(s.State(), ShouldEqual, Playing)
			So(s.Controls().Shown(), ShouldBeTrue)
			So(surface.paused, ShouldBeEmpty)

			clock.Advance(ControlsFadeDuration)
			So(s.State(), ShouldEqual, Paused)
			So(surface.paused, ShouldResemble, []bool{true})
			So(done, ShouldBeTrue)

			Convey("Toggling again resumes once the controls are hidden", func() {
				s.TogglePause(false, nil)
				So(s.State(), ShouldEqual, Paused)
				So(s.Controls().Shown(), ShouldBeFalse)

				clock.Advance(ControlsFadeDuration)
				So(s.State(), ShouldEqual, Playing)
				So(surface.paused, ShouldResemble, []bool{true, false})
			})

			Convey("Force pause keeps a paused session paused", func() {
				s.TogglePause(true, nil)
				clock.Advance(time.Second)
				So(s.State(), ShouldEqual, Paused)
			})
		})

		Convey("Two toggles in a row return to the original state", func() {
			s.TogglePause(false, nil)
			s.TogglePause(false, nil)
			clock.Advance(time.Second)
			So(s.State(), ShouldEqual, Playing)
			So(surface.paused, ShouldBeEmpty)
		})

		Convey("Repeated pause requests fire once", func() {
			s.Pause()
			s.Pause()
			clock.Advance(ControlsFadeDuration)
			s.Pause()
			clock.Advance(ControlsFadeDuration)
			So(s.State(), ShouldEqual, Paused)
			So(surface.count("paused"), ShouldEqual, 1)

			s.Resume()
			s.Resume()
			clock.Advance(ControlsFadeDuration)
			So(s.State(), ShouldEqual, Playing)
			So(surface.count("paused"), ShouldEqual, 2)
		})

		Convey("Hiding the controls mid-transition still lands the pause", func() {
			s.Pause()
			clock.Advance(ControlsFadeDuration / 2)
			s.ToggleControls()
			So(s.State(), ShouldEqual, Paused)
		})
	})

	Convey("Given controls that do not show on pause", t, func() {
		opts := testOptions()
		opts.ShowControlsOnPause = false
		s, surface, _ := playing(opts)

		Convey("Pause and resume are immediate", func() {
			s.TogglePause(false, nil)
			So(s.State(), ShouldEqual, Paused)
			s.TogglePause(false, nil)
			So(s.State(), ShouldEqual, Playing)
			So(surface.paused, ShouldResemble, []bool{true, false})
			So(s.Controls().Shown(), ShouldBeFalse)
		})
	})

	Convey("TogglePause is a no-op in Idle and Ended", t, func() {
		opts := testOptions()
		opts.LaunchOnMount = false
		s := New(&recordingSurface{}, timer.NewManual(time.Unix(0, 0)), opts)
		s.TogglePause(false, nil)
		So(s.State(), ShouldEqual, Idle)

		s, _, _ = playing(testOptions())
		s.Stop()
		s.TogglePause(false, nil)
		So(s.State(), ShouldEqual, Ended)
	})
}

func TestEndOfStream(t *testing.T) {
	Convey("Given a playing session", t, func() {
		Convey("End of stream covers the surface then detaches it", func() {
			s, surface, clock := playing(testOptions())
			ended := 0
			s.opts.OnEnd = func() { ended++ }
			clock.Advance(time.Second)

			s.OnEnd()
			So(s.State(), ShouldEqual, Ended)
			So(ended, ShouldEqual, 1)
			So(s.Snapshot().SurfaceMounted, ShouldBeTrue)

			clock.Advance(PreviewFadeIn)
			So(s.Snapshot().PreviewOpacity, ShouldEqual, 1)
			So(s.Snapshot().SurfaceMounted, ShouldBeFalse)
			So(surface.count("detach"), ShouldEqual, 1)

			Convey("A second end signal is ignored", func() {
				s.OnEnd()
				So(ended, ShouldEqual, 1)
			})
		})

		Convey("A looping session keeps playing from the start", func() {
			opts := testOptions()
			opts.Loop = true
			s, surface, _ := playing(opts)
			s.OnProgress(119)

			s.OnEnd()
			So(s.State(), ShouldEqual, Playing)
			So(s.Position().CurrentTime, ShouldEqual, 0)
			So(surface.count("detach"), ShouldEqual, 0)
			So(surface.commands[0], ShouldEqual, "attach workout.mp4 muted=false loop=true")
		})
	})
}

func TestEndedTransitions(t *testing.T) {
	Convey("From Ended", t, func() {
		s, surface, clock := playing(testOptions())
		s.OnEnd()

		Convey("Signals and pause commands cannot reach Playing", func() {
			s.OnReadyForDisplay()
			So(s.State(), ShouldEqual, Ended)
			s.Resume()
			So(s.State(), ShouldEqual, Ended)
			s.TogglePause(false, nil)
			So(s.State(), ShouldEqual, Ended)
		})

		Convey("Launch replays through Loading", func() {
			So(s.Launch(), ShouldBeNil)
			So(s.State(), ShouldEqual, Loading)
			So(surface.count("attach workout.mp4 muted=false loop=false"), ShouldEqual, 2)

			clock.Advance(time.Second)
			So(s.Snapshot().SurfaceMounted, ShouldBeTrue)
		})

		Convey("Speed persists across a replay", func() {
			clock.Advance(PreviewFadeIn)
			So(s.SetSpeed(1.5), ShouldBeNil)
			So(surface.rates, ShouldBeEmpty)
			So(s.Launch(), ShouldBeNil)
			So(surface.rates, ShouldResemble, []float64{1.5})
		})
	})

	Convey("A looping session that was stopped cannot replay", t, func() {
		opts := testOptions()
		opts.Loop = true
		s, _, _ := playing(opts)
		s.Stop()
		So(s.Launch(), ShouldBeNil)
		So(s.State(), ShouldEqual, Ended)
	})
}

func TestStop(t *testing.T) {
	Convey("Given a playing session", t, func() {
		s, surface, clock := playing(testOptions())
		s.OnProgress(42)

		Convey("Stop rewinds to 0 and ends", func() {
			stopped := 0
			s.opts.OnStop = func() { stopped++ }
			s.Stop()

			So(s.State(), ShouldEqual, Ended)
			So(surface.seeks, ShouldResemble, []float64{0})
			So(s.Position().CurrentTime, ShouldEqual, 0)
			So(stopped, ShouldEqual, 1)

			clock.Advance(PreviewFadeIn)
			So(surface.count("detach"), ShouldEqual, 1)

			s.Stop()
			So(stopped, ShouldEqual, 1)
		})

		Convey("StopCompletely ends without seeking", func() {
			clock.Advance(time.Second)
			So(s.Snapshot().SurfaceOpacity, ShouldEqual, 1)
			s.StopCompletely(mo.Some(200 * time.Millisecond))

			So(s.State(), ShouldEqual, Ended)
			So(surface.seeks, ShouldBeEmpty)
			So(surface.count("detach"), ShouldEqual, 0)

			clock.Advance(100 * time.Millisecond)
			So(s.Snapshot().SurfaceOpacity, ShouldBeLessThan, 1)
			So(s.Snapshot().PreviewOpacity, ShouldBeGreaterThan, 0)

			clock.Advance(100 * time.Millisecond)
			So(s.Snapshot().SurfaceOpacity, ShouldEqual, 0)
			So(s.Snapshot().PreviewOpacity, ShouldEqual, 1)
			So(surface.count("detach"), ShouldEqual, 1)
		})

		Convey("StopCompletely uses the default fade when none is given", func() {
			s.StopCompletely(mo.None[time.Duration]())
			clock.Advance(DefaultTeardownFade - time.Millisecond)
			So(surface.count("detach"), ShouldEqual, 0)
			clock.Advance(time.Millisecond)
			So(surface.count("detach"), ShouldEqual, 1)
		})

		Convey("Close tears down and notifies the host", func() {
			closed := false
			s.opts.OnClose = func() { closed = true }
			s.Close()
			So(closed, ShouldBeTrue)
			So(s.State(), ShouldEqual, Ended)
			So(surface.seeks, ShouldBeEmpty)
		})

		Convey("Stop during Loading also ends", func() {
			s2 := New(&recordingSurface{}, clock, testOptions())
			_ = s2.Mount()
			s2.Stop()
			So(s2.State(), ShouldEqual, Ended)
		})
	})
}

func TestTeardown(t *testing.T) {
	Convey("Teardown invalidates every timer", t, func() {
		s, surface, clock := playing(testOptions())
		s.ToggleControls()
		s.Pause()
		So(clock.Pending(), ShouldBeGreaterThan, 0)

		s.Teardown()
		So(clock.Pending(), ShouldEqual, 0)
		So(surface.count("detach"), ShouldEqual, 1)

		clock.Advance(time.Hour)
		So(s.State(), ShouldEqual, Playing)
		So(surface.paused, ShouldBeEmpty)

		So(errors.Is(s.Launch(), ErrClosed), ShouldBeTrue)
		So(errors.Is(s.SetSpeed(2), ErrClosed), ShouldBeTrue)
		s.OnEnd()
		So(s.State(), ShouldEqual, Playing)
	})
}

func TestSpeed(t *testing.T) {
	Convey("Given a playing session", t, func() {
		s, surface, _ := playing(testOptions())

		Convey("Only the fixed speeds are accepted", func() {
			So(s.Speed(), ShouldEqual, DefaultSpeed)
			So(errors.Is(s.SetSpeed(3), ErrInvalidSpeed), ShouldBeTrue)
			So(s.SetSpeed(0.25), ShouldBeNil)
			So(surface.rates, ShouldResemble, []float64{0.25})
		})

		Convey("Speed survives pause and resume", func() {
			So(s.SetSpeed(1.75), ShouldBeNil)
			opts := testOptions()
			opts.ShowControlsOnPause = false
			s.opts = opts
			s.Pause()
			s.Resume()
			So(s.Speed(), ShouldEqual, 1.75)
		})

		Convey("Selecting a speed collapses the menu", func() {
			s.ToggleControls()
			So(s.ToggleSpeedMenu(), ShouldBeTrue)
			So(s.Snapshot().SpeedMenuOpen, ShouldBeTrue)
			So(s.SetSpeed(2), ShouldBeNil)
			So(s.Snapshot().SpeedMenuOpen, ShouldBeFalse)
		})
	})

	Convey("Labels", t, func() {
		So(SpeedLabel(1), ShouldEqual, "Normal")
		So(SpeedLabel(0.25), ShouldEqual, "0.25x")
		So(SpeedIndex(2), ShouldEqual, len(Speeds)-1)
	})
}

func TestSurfaceErrors(t *testing.T) {
	Convey("Surface errors reach the host untouched", t, func() {
		var got []error
		opts := testOptions()
		opts.OnError = func(err error) { got = append(got, err) }
		s, surface, _ := playing(opts)

		boom := errors.New("decoder crashed")
		s.OnError(boom)
		So(got, ShouldHaveLength, 1)
		So(got[0], ShouldEqual, boom)

		surface.seekErr = errors.New("ipc closed")
		s.SeekAbsolute(10)
		So(got, ShouldHaveLength, 2)
		So(errors.Is(got[1], surface.seekErr), ShouldBeTrue)
	})
}

func TestSynthesizeReady(t *testing.T) {
	Convey("A surface without a ready signal", t, func() {
		clock := timer.NewManual(time.Unix(0, 0))
		s := New(&recordingSurface{}, clock, testOptions())
		_ = s.Mount()
		signals := SynthesizeReady(s)

		Convey("Becomes ready when loaded", func() {
			signals.OnLoaded(30, 0)
			So(s.State(), ShouldEqual, Playing)
			So(s.Position().Duration, ShouldEqual, 30)
		})

		Convey("Drops native ready signals", func() {
			signals.OnReadyForDisplay()
			So(s.State(), ShouldEqual, Loading)
		})
	})
}
