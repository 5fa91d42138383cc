package tui

import "github.com/curtain-cli/curtain/session"

type state int

const (
	loadingState state = iota
	idleState
	playingState
	pausedState
	speedMenuState
	endedState
)

func stateOf(snap session.Snapshot) state {
	switch snap.State {
	case session.Loading:
		return loadingState
	case session.Playing, session.Paused:
		if snap.SpeedMenuOpen {
			return speedMenuState
		}
		if snap.State == session.Paused {
			return pausedState
		}
		return playingState
	case session.Ended:
		return endedState
	default:
		return idleState
	}
}
