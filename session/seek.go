package session

import "math"

// SeekStep is the distance of a relative seek, in seconds.
const SeekStep = 10.0

// Direction of a relative seek.
type Direction int

const (
	Rewind  Direction = -1
	Forward Direction = 1
)

// SeekRelative skips SeekStep seconds forward or back. The target is clamped at 0 but
// not at the duration; the surface clamps overshoot itself. Does nothing until the
// surface has reported loaded.
func (s *Session) SeekRelative(dir Direction) {
	if s.closed || !s.loaded {
		return
	}

	target := math.Max(0, s.position.CurrentTime+float64(dir)*SeekStep)
	s.seek(target)
}

// SeekAbsolute seeks to a position in seconds, as a slider does. Negative targets are
// corrected to 0. Does nothing until the surface has reported loaded.
func (s *Session) SeekAbsolute(seconds float64) {
	if s.closed || !s.loaded {
		return
	}

	s.seek(math.Max(0, seconds))
}

// SeekFraction seeks to a fraction of the known duration.
func (s *Session) SeekFraction(fraction float64) {
	if s.position.Duration <= 0 {
		return
	}
	s.SeekAbsolute(fraction * s.position.Duration)
}

func (s *Session) seek(target float64) {
	s.command("seek", func() error { return s.surface.SeekTo(target) })
	s.position.CurrentTime = s.clampTime(target)

	// A seek is a controls interaction.
	s.controls.ResetAutoHideTimer()
}
