// Package tui hosts a playback session in the terminal.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/curtain-cli/curtain/config"
	"github.com/curtain-cli/curtain/log"
	"github.com/curtain-cli/curtain/player"
	"github.com/curtain-cli/curtain/session"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Session session.Options

	// Player names the backend, see player.Available.
	Player string
	// SynthesizeReady treats loaded as ready for display.
	SynthesizeReady bool

	Title             string
	FrameRate         int
	ShowThumbnailPath bool
}

func (o *Options) frameInterval() time.Duration {
	if o.FrameRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(o.FrameRate)
}

// preparer is implemented by backends that can start ahead of the first Attach.
type preparer interface {
	Prepare() error
}

// Run starts the player backend and runs the Bubble Tea program until the session closes.
func Run(options *Options) error {
	backend, err := player.New(options.Player)
	if err != nil {
		return err
	}

	host := newProgram(options, backend, tea.WithAltScreen())

	if p, ok := backend.(preparer); ok {
		if err := p.Prepare(); err != nil {
			host.signals.stop()
			_ = backend.Close()
			return fmt.Errorf("prepare %s: %w", options.Player, err)
		}
	}

	config.Watch(func(changed []string) {
		host.program.Send(configChangedMsg{keys: changed})
	})

	err = host.run()

	if closeErr := backend.Close(); closeErr != nil {
		log.Warnf("close %s: %v", options.Player, closeErr)
	}

	return err
}

// programHost wires a bubble, its backend and a Bubble Tea program together.
type programHost struct {
	program *tea.Program
	bubble  *statefulBubble
	signals *programSignals
}

func newProgram(options *Options, backend player.Backend, opts ...tea.ProgramOption) *programHost {
	clock := &programClock{}
	b := newBubble(options, backend, clock)
	program := tea.NewProgram(b, opts...)

	clock.send = program.Send
	signals := newProgramSignals(program.Send)
	backend.Notify(signals)

	return &programHost{program: program, bubble: b, signals: signals}
}

// run blocks until the program quits, then tears the session down.
func (h *programHost) run() error {
	_, err := h.program.Run()
	h.signals.stop()
	h.bubble.teardown()
	return err
}
