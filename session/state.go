package session

import "github.com/curtain-cli/curtain/util"

// PlaybackState is the lifecycle state of a session.
type PlaybackState int

const (
	Idle PlaybackState = iota
	Loading
	Playing
	Paused
	Ended
)

func (s PlaybackState) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Loading:
		return "Loading"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	case Ended:
		return "Ended"
	default:
		return "Unknown"
	}
}

// Active reports whether the surface is attached and playing or paused.
func (s PlaybackState) Active() bool {
	return s == Playing || s == Paused
}

// Position is the playback position as last reported by the surface, in seconds.
// Duration is 0 until the surface reports metadata.
type Position struct {
	CurrentTime float64
	Duration    float64
}

// Progress returns CurrentTime as a fraction of Duration, or 0 while the duration is unknown.
func (p Position) Progress() float64 {
	if p.Duration <= 0 {
		return 0
	}
	return util.Clamp(p.CurrentTime/p.Duration, 0, 1)
}
