// Package session implements the video playback session controller: the playback
// lifecycle state machine, the controls overlay with auto-hide, seeking, the
// minimize/fit presentation toggle, and the crossfade between preview image and
// video surface.
//
// A Session is single-threaded. Every method, every Signals callback and every
// timer callback of the clock it was created with must run on the same goroutine.
// Hosts that receive surface events or timer expiry on other goroutines marshal
// them onto their event loop first.
package session

import (
	"fmt"
	"time"

	"github.com/curtain-cli/curtain/log"
	"github.com/curtain-cli/curtain/timer"
	"github.com/google/uuid"
	"github.com/samber/mo"
)

// Session is the aggregate root of one mounted player instance.
type Session struct {
	id      uuid.UUID
	opts    Options
	surface Surface
	clock   timer.Clock

	state    PlaybackState
	position Position
	loaded   bool
	mounted  bool
	speed    float64
	// stopped marks an external stop; it suppresses looping until the next launch.
	stopped bool
	closed  bool

	// pending is the lifecycle state a deferred pause/resume will land on.
	pending mo.Option[PlaybackState]
	// transitionSeq invalidates deferred transitions that were cancelled.
	transitionSeq uint64

	natural  Size
	viewport Size

	controls *Controls
	resizer  *Resizer
	fade     *Crossfade
}

// New creates an idle session. Call Mount to honor LaunchOnMount.
func New(surface Surface, clock timer.Clock, opts Options) *Session {
	return &Session{
		id:       uuid.New(),
		opts:     opts,
		surface:  surface,
		clock:    clock,
		speed:    DefaultSpeed,
		controls: newControls(clock, opts.ControlsEnabled, opts.autoHideInterval()),
		resizer:  newResizer(clock),
		fade:     newCrossfade(clock),
	}
}

// ID identifies the session in logs.
func (s *Session) ID() string {
	return s.id.String()
}

// State returns the current lifecycle state.
func (s *Session) State() PlaybackState {
	return s.state
}

// Position returns the last known playback position.
func (s *Session) Position() Position {
	return s.position
}

// Speed returns the current playback rate multiplier.
func (s *Session) Speed() float64 {
	return s.speed
}

// Controls exposes the overlay state machine.
func (s *Session) Controls() *Controls {
	return s.controls
}

// Mount launches playback if the session was configured to play on mount.
func (s *Session) Mount() error {
	if s.opts.LaunchOnMount {
		return s.Launch()
	}
	return nil
}

// Launch attaches the surface and enters Loading. It applies from Idle, and from Ended
// as a replay unless the session loops. In any other state it does nothing.
func (s *Session) Launch() error {
	if s.closed {
		return ErrClosed
	}

	switch s.state {
	case Idle:
	case Ended:
		if s.opts.Loop {
			return nil
		}
	default:
		return nil
	}

	if s.opts.VideoSource == "" {
		return ErrNoSource
	}

	if s.mounted {
		// A replay can arrive while the end-of-playback fade still covers the old surface.
		s.detach()
	}

	from := s.state
	s.stopped = false
	s.loaded = false
	s.position = Position{}
	s.fade.Hold()
	s.setState(Loading)

	s.mounted = true
	if err := s.surface.Attach(s.opts.VideoSource, s.opts.StartMuted, s.opts.Loop); err != nil {
		// Nothing was mounted; go back so the launch can be retried.
		s.mounted = false
		s.setState(from)
		s.reportError("attach", err)
		return fmt.Errorf("attach surface: %w", err)
	}

	if s.speed != DefaultSpeed {
		s.command("set rate", func() error { return s.surface.SetRate(s.speed) })
	}

	return nil
}

// OnLoaded records the media duration and starting position.
func (s *Session) OnLoaded(duration, currentTime float64) {
	if s.closed || !(s.state == Loading || s.state.Active()) {
		s.ignored("loaded")
		return
	}

	if duration < 0 {
		duration = 0
	}

	s.loaded = true
	s.position = Position{Duration: duration}
	s.position.CurrentTime = s.clampTime(currentTime)

	if cb := s.opts.OnLoad; cb != nil {
		cb(s.position)
	}
}

// OnReadyForDisplay moves a loading session to Playing and starts the crossfade.
func (s *Session) OnReadyForDisplay() {
	if s.closed || s.state != Loading {
		s.ignored("ready for display")
		return
	}

	s.setState(Playing)
	s.fade.Reveal(nil)

	if cb := s.opts.OnReadyForDisplay; cb != nil {
		cb()
	}
}

// OnProgress updates the playback position.
func (s *Session) OnProgress(currentTime float64) {
	if s.closed || !s.loaded || !s.state.Active() {
		s.ignored("progress")
		return
	}

	s.position.CurrentTime = s.clampTime(currentTime)

	if cb := s.opts.OnProgress; cb != nil {
		cb(s.position)
	}
}

// OnEnd handles end of stream. A looping session that was not stopped keeps playing
// from the start; otherwise the session ends and the preview covers the surface
// before it is detached.
func (s *Session) OnEnd() {
	if s.closed || !s.state.Active() {
		s.ignored("end")
		return
	}

	if s.opts.Loop && !s.stopped {
		s.position.CurrentTime = 0
		if cb := s.opts.OnEnd; cb != nil {
			cb()
		}
		return
	}

	s.cancelTransition()
	s.setState(Ended)
	s.controls.Hide(nil)
	s.fade.Conceal(s.detach)

	if cb := s.opts.OnEnd; cb != nil {
		cb()
	}
}

// OnNaturalSize records the intrinsic video dimensions.
func (s *Session) OnNaturalSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.natural = Size{Width: float64(width), Height: float64(height)}
}

// OnError hands a surface error to the host untouched.
func (s *Session) OnError(err error) {
	if err == nil || s.closed {
		return
	}

	log.Warnf("session %s: surface error: %v", s.shortID(), err)
	if cb := s.opts.OnError; cb != nil {
		cb(err)
	}
}

// TogglePause pauses a playing session and resumes a paused one. With forcePause a
// paused session stays paused. callback runs once the transition has landed. In
// Idle, Loading and Ended it does nothing.
func (s *Session) TogglePause(forcePause bool, callback func()) {
	if s.closed {
		return
	}

	switch s.effectiveState() {
	case Playing:
		s.transition(Paused, callback)
	case Paused:
		if forcePause {
			if callback != nil {
				callback()
			}
			return
		}
		s.transition(Playing, callback)
	}
}

// Pause pauses a playing session. Repeated calls have no further effect.
func (s *Session) Pause() {
	if !s.closed && s.effectiveState() == Playing {
		s.transition(Paused, nil)
	}
}

// Resume resumes a paused session. Repeated calls have no further effect.
func (s *Session) Resume() {
	if !s.closed && s.effectiveState() == Paused {
		s.transition(Playing, nil)
	}
}

// Stop ends playback: the surface is rewound to 0, the preview fades back in and the
// surface is detached once it is covered.
func (s *Session) Stop() {
	if s.closed || !(s.state == Loading || s.state.Active()) {
		return
	}

	s.cancelTransition()
	s.stopped = true
	s.command("seek", func() error { return s.surface.SeekTo(0) })
	s.position.CurrentTime = 0
	s.setState(Ended)
	s.controls.Hide(nil)
	s.fade.Conceal(s.detach)

	if cb := s.opts.OnStop; cb != nil {
		cb()
	}
}

// StopCompletely tears playback down without rewinding: preview in and surface out
// run in parallel over the given fade (DefaultTeardownFade when absent), then the
// surface is detached.
func (s *Session) StopCompletely(fade mo.Option[time.Duration]) {
	if s.closed {
		return
	}

	if s.state == Loading || s.state.Active() {
		s.cancelTransition()
		s.stopped = true
		s.setState(Ended)
		s.controls.Hide(nil)
	}

	if s.mounted {
		s.fade.ConcealNow(fade.OrElse(DefaultTeardownFade), s.detach)
	}
}

// Close is the close button: a forced teardown followed by OnClose.
func (s *Session) Close() {
	if s.closed {
		return
	}

	s.StopCompletely(mo.None[time.Duration]())
	if cb := s.opts.OnClose; cb != nil {
		cb()
	}
}

// Teardown unmounts the session. Every timer and tween is invalidated, the surface
// is detached, and later calls are no-ops.
func (s *Session) Teardown() {
	if s.closed {
		return
	}

	s.cancelTransition()
	s.controls.close()
	s.resizer.close()
	s.fade.close()
	s.detach()
	s.closed = true

	log.Debugf("session %s: torn down", s.shortID())
}

// SetSpeed changes the playback rate and collapses the speed menu.
func (s *Session) SetSpeed(v float64) error {
	if s.closed {
		return ErrClosed
	}
	if !ValidSpeed(v) {
		return fmt.Errorf("%w: %g", ErrInvalidSpeed, v)
	}

	s.speed = v
	if s.mounted {
		s.command("set rate", func() error { return s.surface.SetRate(v) })
	}

	s.controls.closeSpeedMenu()
	s.controls.ResetAutoHideTimer()
	return nil
}

// ToggleControls shows or hides the controls overlay.
func (s *Session) ToggleControls() {
	if s.closed {
		return
	}
	s.controls.Toggle()
}

// ToggleSpeedMenu opens or closes the speed menu. Small presentation has no menu.
func (s *Session) ToggleSpeedMenu() bool {
	if s.closed || s.opts.SmallPresentation {
		return false
	}
	return s.controls.ToggleSpeedMenu()
}

// Interact records a controls interaction that has no other effect (focus moves,
// hovering a button), keeping the overlay up.
func (s *Session) Interact() {
	if s.closed {
		return
	}
	s.controls.ResetAutoHideTimer()
}

func (s *Session) effectiveState() PlaybackState {
	return s.pending.OrElse(s.state)
}

// transition moves between Playing and Paused. When the controls are configured to
// appear on pause the state change waits for the overlay transition to finish.
func (s *Session) transition(to PlaybackState, callback func()) {
	if s.pending.IsPresent() && s.state == to {
		// Toggled back before the deferred change landed.
		s.cancelTransition()
		if callback != nil {
			callback()
		}
		return
	}

	s.transitionSeq++
	seq := s.transitionSeq

	apply := func() {
		if s.closed || seq != s.transitionSeq || !s.state.Active() {
			return
		}
		s.pending = mo.None[PlaybackState]()
		s.command("set paused", func() error { return s.surface.SetPaused(to == Paused) })
		s.setState(to)
		if callback != nil {
			callback()
		}
	}

	if !s.controls.Enabled() || !s.opts.ShowControlsOnPause {
		apply()
		return
	}

	s.pending = mo.Some(to)
	if to == Paused {
		s.controls.Show(apply)
	} else {
		s.controls.Hide(apply)
	}
}

func (s *Session) cancelTransition() {
	s.pending = mo.None[PlaybackState]()
	s.transitionSeq++
}

func (s *Session) detach() {
	if !s.mounted {
		return
	}

	s.mounted = false
	s.loaded = false
	s.command("detach", s.surface.Detach)
}

func (s *Session) setState(to PlaybackState) {
	from := s.state
	if from == to {
		return
	}

	s.state = to
	log.Debugf("session %s: %s -> %s", s.shortID(), from, to)

	if cb := s.opts.OnStateChange; cb != nil {
		cb(from, to)
	}
}

// command issues a surface command. Failures are not interpreted here; they go
// straight to the host's error callback.
func (s *Session) command(name string, fn func() error) {
	if err := fn(); err != nil {
		s.reportError(name, err)
	}
}

func (s *Session) reportError(name string, err error) {
	log.Warnf("session %s: %s: %v", s.shortID(), name, err)
	if cb := s.opts.OnError; cb != nil {
		cb(fmt.Errorf("%s: %w", name, err))
	}
}

func (s *Session) ignored(signal string) {
	log.Tracef("session %s: ignoring %s signal in state %s", s.shortID(), signal, s.state)
}

// clampTime keeps a time inside [0, duration] once the duration is known.
func (s *Session) clampTime(t float64) float64 {
	if t < 0 {
		return 0
	}
	if s.position.Duration > 0 && t > s.position.Duration {
		return s.position.Duration
	}
	return t
}

func (s *Session) shortID() string {
	return s.id.String()[:8]
}
