package session

import "time"

// Options configures a session. Unset callbacks are not invoked.
type Options struct {
	VideoSource     string
	ThumbnailSource string

	ControlsEnabled bool
	// ShowControlsOnPause defers a pause until the controls overlay has faded in,
	// and a resume until it has faded out.
	ShowControlsOnPause bool
	// AutoHideInterval overrides DefaultAutoHideInterval when positive.
	AutoHideInterval time.Duration

	Loop          bool
	StartMuted    bool
	LaunchOnMount bool

	// SmallPresentation offers only play/pause and close.
	SmallPresentation   bool
	CloseButtonEnabled  bool
	StopButtonEnabled   bool
	ResizeButtonEnabled bool

	OnClose           func()
	OnStop            func()
	OnReadyForDisplay func()
	OnProgress        func(Position)
	OnLoad            func(Position)
	OnEnd             func()
	// OnError receives surface errors untouched.
	OnError func(error)
	// OnStateChange is called after every lifecycle transition.
	OnStateChange func(from, to PlaybackState)
}

func (o *Options) autoHideInterval() time.Duration {
	if o.AutoHideInterval > 0 {
		return o.AutoHideInterval
	}
	return DefaultAutoHideInterval
}
