package session

// Surface is the video rendering element a session drives. It is an opaque black box
// reporting its lifecycle through Signals.
type Surface interface {
	Attach(source string, startMuted, loop bool) error
	SeekTo(seconds float64) error
	SetRate(multiplier float64) error
	SetPaused(paused bool) error
	Detach() error
}

// Signals are pushed by a surface into its session. Signals arriving in a state
// where they make no sense are ignored.
type Signals interface {
	// OnLoaded fires once metadata is available.
	OnLoaded(duration, currentTime float64)
	// OnReadyForDisplay fires once the first frame is paintable.
	OnReadyForDisplay()
	// OnProgress fires periodically while playing.
	OnProgress(currentTime float64)
	// OnEnd fires at end of stream.
	OnEnd()
	// OnNaturalSize reports the intrinsic video dimensions.
	OnNaturalSize(width, height int)
	// OnError reports a playback error; it is handed to the host as is.
	OnError(err error)
}

// SynthesizeReady adapts Signals for surfaces that cannot reliably emit a separate
// ready-for-display signal: every loaded signal is followed by a synthesized ready
// signal, and native ready signals are dropped so they cannot fire twice.
func SynthesizeReady(sig Signals) Signals {
	return readySynthesizer{Signals: sig}
}

type readySynthesizer struct {
	Signals
}

func (r readySynthesizer) OnLoaded(duration, currentTime float64) {
	r.Signals.OnLoaded(duration, currentTime)
	r.Signals.OnReadyForDisplay()
}

func (r readySynthesizer) OnReadyForDisplay() {}
