package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/curtain-cli/curtain/session"
	. "github.com/smartystreets/goconvey/convey"
)

// eagerBackend signals loaded and ready from inside Attach, on the caller's goroutine.
type eagerBackend struct {
	fakeBackend
	sig session.Signals
}

func (e *eagerBackend) Notify(sig session.Signals) { e.sig = sig }

func (e *eagerBackend) Attach(source string, muted, loop bool) error {
	_ = e.fakeBackend.Attach(source, muted, loop)
	e.sig.OnLoaded(60, 0)
	e.sig.OnReadyForDisplay()
	return nil
}

func TestProgram(t *testing.T) {
	Convey("Given a program whose backend signals during Attach", t, func() {
		ready := make(chan struct{})
		options := testOptions()
		options.Session.OnReadyForDisplay = func() { close(ready) }

		backend := &eagerBackend{}
		host := newProgram(options, backend,
			tea.WithInput(nil),
			tea.WithOutput(io.Discard),
			tea.WithoutRenderer(),
			tea.WithoutSignalHandler(),
		)

		done := make(chan error, 1)
		go func() { done <- host.run() }()

		Convey("The signals reach the session and the program still quits", func() {
			select {
			case <-ready:
			case <-time.After(5 * time.Second):
				host.program.Kill()
				So("session never became ready", ShouldBeEmpty)
			}

			host.program.Send(quitMsg{})

			select {
			case err := <-done:
				So(err, ShouldBeNil)
			case <-time.After(5 * time.Second):
				host.program.Kill()
				So("program did not quit", ShouldBeEmpty)
			}

			So(backend.attached, ShouldEqual, 1)
			So(host.bubble.tornDown, ShouldBeTrue)
		})
	})
}
