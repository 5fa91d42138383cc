package session

import "errors"

var (
	// ErrInvalidSpeed is returned for a playback speed outside the supported set.
	ErrInvalidSpeed = errors.New("unsupported playback speed")

	// ErrClosed is returned by commands issued after the session was torn down.
	ErrClosed = errors.New("session is torn down")

	// ErrNoSource is returned when launching without a video source.
	ErrNoSource = errors.New("no video source")
)
