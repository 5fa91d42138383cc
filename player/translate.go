package player

import (
	"fmt"
	"sync/atomic"

	"github.com/curtain-cli/curtain/session"
	"github.com/samber/mo"
)

// wrapWindow is how close to either edge of the file a backwards jump in time-pos
// has to be to count as a loop wrap.
const wrapWindow = 1.0

// translator turns raw mpv events into session signals for the file being played.
// mpv reports metadata, first frame and end of file through unrelated events; the
// translator orders them as loaded, then ready, then progress, then end.
//
// A looping file never reaches eof, so each wrap from the tail back to the start
// that was not asked for by a seek is reported as an end.
type translator struct {
	sig session.Signals

	// Set from the command side.
	looping atomic.Bool
	seeking atomic.Bool

	fileLoaded bool
	loaded     bool
	ready      bool
	ended      bool
	// requested is set between a requested seek and the position it lands on.
	requested bool

	duration mo.Option[float64]
	position float64

	width, height int
}

func newTranslator(sig session.Signals) *translator {
	return &translator{sig: sig}
}

func (t *translator) handle(e mpvEvent) {
	switch e.Event {
	case "start-file":
		t.fileLoaded, t.loaded, t.ready, t.ended, t.requested = false, false, false, false, false
		t.duration = mo.None[float64]()
		t.position = 0

	case "file-loaded":
		t.fileLoaded = true
		t.emitLoaded(false)

	case "seek":
		if t.seeking.Swap(false) {
			t.requested = true
		}

	case "playback-restart":
		if !t.fileLoaded || t.ready {
			return
		}
		t.emitLoaded(true)
		t.ready = true
		t.sig.OnReadyForDisplay()

	case "end-file":
		switch e.Reason {
		case "eof":
			t.emitEnd()
		case "error":
			reason := e.FileError
			if reason == "" {
				reason = "unknown error"
			}
			t.sig.OnError(fmt.Errorf("mpv: %s", reason))
		}

	case "property-change":
		t.property(e.Name, e.Data)
	}
}

func (t *translator) property(name string, data any) {
	switch name {
	case "duration":
		if v, ok := data.(float64); ok {
			t.duration = mo.Some(v)
			t.emitLoaded(false)
		}

	case "time-pos":
		v, ok := data.(float64)
		if !ok {
			return
		}
		if t.requested {
			t.requested = false
		} else if t.wrapped(v) {
			t.sig.OnEnd()
		}
		t.position = v
		if t.ready && !t.ended {
			t.sig.OnProgress(v)
		}

	case "eof-reached":
		if v, ok := data.(bool); ok && v {
			t.emitEnd()
		}

	case "width", "height":
		v, ok := data.(float64)
		if !ok {
			return
		}
		if name == "width" {
			t.width = int(v)
		} else {
			t.height = int(v)
		}
		if t.width > 0 && t.height > 0 {
			t.sig.OnNaturalSize(t.width, t.height)
		}
	}
}

// emitLoaded reports loaded once per file, as soon as the file is open and its
// duration known. Streams without a duration are reported at the first frame.
func (t *translator) emitLoaded(force bool) {
	if t.loaded || !t.fileLoaded {
		return
	}
	if t.duration.IsAbsent() && !force {
		return
	}

	t.loaded = true
	t.sig.OnLoaded(t.duration.OrElse(0), t.position)
}

// wrapped reports whether a new position means a looping file started over.
func (t *translator) wrapped(pos float64) bool {
	if !t.ready || t.ended || !t.looping.Load() {
		return false
	}
	duration, ok := t.duration.Get()
	if !ok || duration <= 0 {
		return false
	}
	return t.position >= duration-wrapWindow && pos < wrapWindow && pos < t.position
}

func (t *translator) setLooping(loop bool) {
	t.looping.Store(loop)
}

// expectSeek marks the next seek mpv reports as requested rather than a loop wrap.
func (t *translator) expectSeek() {
	t.seeking.Store(true)
}

func (t *translator) emitEnd() {
	if t.ended || !t.loaded {
		return
	}
	t.ended = true
	t.sig.OnEnd()
}
