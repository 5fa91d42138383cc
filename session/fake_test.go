package session

import (
	"fmt"
	"time"

	"github.com/curtain-cli/curtain/timer"
)

// recordingSurface records every command issued to it.
type recordingSurface struct {
	commands  []string
	seeks     []float64
	rates     []float64
	paused    []bool
	attachErr error
	seekErr   error
}

func (r *recordingSurface) Attach(source string, startMuted, loop bool) error {
	r.commands = append(r.commands, fmt.Sprintf("attach %s muted=%t loop=%t", source, startMuted, loop))
	return r.attachErr
}

func (r *recordingSurface) SeekTo(seconds float64) error {
	r.commands = append(r.commands, "seek")
	r.seeks = append(r.seeks, seconds)
	return r.seekErr
}

func (r *recordingSurface) SetRate(multiplier float64) error {
	r.commands = append(r.commands, "rate")
	r.rates = append(r.rates, multiplier)
	return nil
}

func (r *recordingSurface) SetPaused(paused bool) error {
	r.commands = append(r.commands, "paused")
	r.paused = append(r.paused, paused)
	return nil
}

func (r *recordingSurface) Detach() error {
	r.commands = append(r.commands, "detach")
	return nil
}

func (r *recordingSurface) count(command string) int {
	n := 0
	for _, c := range r.commands {
		if c == command {
			n++
		}
	}
	return n
}

func testOptions() Options {
	return Options{
		VideoSource:         "workout.mp4",
		ThumbnailSource:     "workout.jpg",
		ControlsEnabled:     true,
		ShowControlsOnPause: true,
		LaunchOnMount:       true,
		CloseButtonEnabled:  true,
		StopButtonEnabled:   true,
		ResizeButtonEnabled: true,
	}
}

// playing returns a session that reached Playing with a 120s video.
func playing(opts Options) (*Session, *recordingSurface, *timer.Manual) {
	clock := timer.NewManual(time.Unix(0, 0))
	surface := &recordingSurface{}
	s := New(surface, clock, opts)
	_ = s.Mount()
	s.OnLoaded(120, 0)
	s.OnReadyForDisplay()
	return s, surface, clock
}
