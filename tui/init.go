package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/curtain-cli/curtain/internal/ui"
	"github.com/curtain-cli/curtain/log"
	"github.com/curtain-cli/curtain/session"
)

// Init mounts the session, which launches playback unless configured otherwise.
func (b *statefulBubble) Init() tea.Cmd {
	b.launch(b.session.Mount)
	b.sync()
	return tea.Batch(b.spinnerC.Tick, b.frame(), b.flush())
}

// launch runs a launching command. Attach failures already reached the host
// through OnError; the rest are reported here.
func (b *statefulBubble) launch(fn func() error) {
	err := fn()
	if err != nil && (errors.Is(err, session.ErrNoSource) || errors.Is(err, session.ErrClosed)) {
		b.queue(ui.NotifyError(err))
	}
}

// prepareLaunch launches the session once the backend is ready for it. Backends
// that may have to start a process are prepared off the Update loop first.
func (b *statefulBubble) prepareLaunch() {
	if b.preparing {
		return
	}

	p, ok := b.surface.(preparer)
	if !ok {
		b.launch(b.session.Launch)
		return
	}

	b.preparing = true
	b.queue(prepare(p))
}

func prepare(p preparer) tea.Cmd {
	return func() tea.Msg {
		return preparedMsg{err: p.Prepare()}
	}
}

func (b *statefulBubble) onPrepared(err error) {
	b.preparing = false

	if err != nil {
		err = fmt.Errorf("prepare %s: %w", b.options.Player, err)
		log.Errorf("%s: %v", b.options.Title, err)
		b.lastError = err
		b.queue(ui.NotifyError(err))
		return
	}

	b.launch(b.session.Launch)
}
