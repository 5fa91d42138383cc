package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/curtain-cli/curtain/internal/ui"
	"github.com/curtain-cli/curtain/log"
	"github.com/curtain-cli/curtain/player"
	"github.com/curtain-cli/curtain/session"
	"github.com/curtain-cli/curtain/style"
	"github.com/curtain-cli/curtain/timer"
	"github.com/curtain-cli/curtain/util"
	"github.com/samber/mo"
)

// statefulBubble hosts one session: it feeds surface signals and timer expiry into
// it from Update and renders its snapshot.
type statefulBubble struct {
	state  state
	keymap *statefulKeymap

	session *session.Session
	surface player.Backend
	// signals is the session, or the session behind a ready synthesizer.
	signals session.Signals

	spinnerC  spinner.Model
	progressC progress.Model
	helpC     help.Model
	notifier  *ui.Model

	cmds []tea.Cmd

	speedCursor int
	preparing   bool
	framing     bool
	closing     bool
	tornDown    bool
	lastError   error

	width, height int

	options *Options
}

func newBubble(options *Options, surface player.Backend, clock timer.Clock) *statefulBubble {
	b := &statefulBubble{
		keymap:   newStatefulKeymap(),
		surface:  surface,
		notifier: &ui.Model{},
		options:  options,
	}

	opts := options.Session
	opts.OnClose = func() { b.closing = true }
	opts.OnError = b.onSurfaceError
	opts.OnStateChange = func(from, to session.PlaybackState) {
		log.Infof("%s: %s -> %s", options.Title, from, to)
	}
	b.session = session.New(surface, clock, opts)

	b.signals = b.session
	if options.SynthesizeReady || player.NeedsSynthesizedReady(options.Player) {
		b.signals = session.SynthesizeReady(b.session)
	}

	b.helpC = help.New()

	b.spinnerC = spinner.New()
	b.spinnerC.Spinner = spinner.Dot
	b.spinnerC.Style = lipgloss.NewStyle().Foreground(style.AccentColor)

	b.progressC = progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())

	b.speedCursor = session.SpeedIndex(session.DefaultSpeed)

	if w, h, err := util.TerminalSize(); err == nil {
		b.resize(w, h)
	}

	return b
}

// resize recomputes the layout and tells the session how large its viewport is.
// Terminal cells are about twice as tall as wide.
func (b *statefulBubble) resize(width, height int) {
	x, y := paddingStyle.GetFrameSize()
	b.width = width - x
	b.height = height - y

	b.helpC.Width = b.width
	b.progressC.Width = util.Max(10, b.paneWidth()-14)

	b.session.SetViewport(session.Size{
		Width:  float64(b.paneWidth()),
		Height: float64(paneHeight * 2),
	})
}

func (b *statefulBubble) paneWidth() int {
	return util.Max(minPaneWidth, b.width*2/3)
}

// sync refreshes the keymap from the session after every message.
func (b *statefulBubble) sync() {
	snap := b.session.Snapshot()
	b.state = stateOf(snap)
	b.keymap.setState(b.state, snap.Layout)

	if !snap.SpeedMenuOpen {
		b.speedCursor = session.SpeedIndex(snap.Speed)
	}
}

func (b *statefulBubble) onSurfaceError(err error) {
	log.Errorf("%s: %v", b.options.Title, err)
	b.lastError = err
	b.queue(ui.NotifyError(err))

	// The window was closed under us; end the session so it can be replayed.
	if errors.Is(err, player.ErrPlayerExited) {
		b.session.StopCompletely(mo.Some(time.Duration(0)))
	}
}

// queue schedules a command to be returned from the current Update.
func (b *statefulBubble) queue(cmd tea.Cmd) {
	b.cmds = append(b.cmds, cmd)
}

func (b *statefulBubble) flush() tea.Cmd {
	cmds := b.cmds
	b.cmds = nil
	return tea.Batch(cmds...)
}

func (b *statefulBubble) teardown() {
	if b.tornDown {
		return
	}
	b.tornDown = true
	b.session.Teardown()
}
