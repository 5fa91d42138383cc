package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/curtain-cli/curtain/internal/ui"
	cfgkey "github.com/curtain-cli/curtain/key"
	"github.com/curtain-cli/curtain/session"
	"github.com/curtain-cli/curtain/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type (
	frameMsg         struct{}
	quitMsg          struct{}
	configChangedMsg struct {
		keys []string
	}
	preparedMsg struct {
		err error
	}
)

// scrubStep is the fraction of the duration moved by a scrub key.
const scrubStep = 0.05

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := b.notifier.Update(msg); cmd != nil {
		b.queue(cmd)
	}

	switch msg := msg.(type) {
	case fireMsg:
		msg.fn()
	case frameMsg:
		b.framing = false
	case loadedMsg:
		b.signals.OnLoaded(msg.duration, msg.currentTime)
	case readyMsg:
		b.signals.OnReadyForDisplay()
	case progressMsg:
		b.signals.OnProgress(float64(msg))
	case endMsg:
		b.signals.OnEnd()
	case naturalSizeMsg:
		b.signals.OnNaturalSize(msg.width, msg.height)
	case surfaceErrorMsg:
		b.signals.OnError(msg.err)
	case configChangedMsg:
		b.applyConfig(msg.keys)
	case preparedMsg:
		b.onPrepared(msg.err)
	case quitMsg:
		b.teardown()
		return b, tea.Quit
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		b.queue(cmd)
	case tea.KeyMsg:
		if key.Matches(msg, b.keymap.forceQuit) {
			b.teardown()
			return b, tea.Quit
		}
		b.handleKey(msg)
	}

	if b.closing {
		b.closing = false
		// Quit once the close fade has finished.
		b.queue(tea.Tick(session.DefaultTeardownFade, func(time.Time) tea.Msg {
			return quitMsg{}
		}))
	}

	b.sync()
	b.queue(b.frame())
	return b, b.flush()
}

// frame keeps redrawing at the configured frame rate while anything animates.
func (b *statefulBubble) frame() tea.Cmd {
	if b.framing || !b.session.Animating() {
		return nil
	}

	b.framing = true
	return tea.Tick(b.options.frameInterval(), func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (b *statefulBubble) handleKey(msg tea.KeyMsg) {
	k := b.keymap
	snap := b.session.Snapshot()

	switch {
	case key.Matches(msg, k.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
		return
	case key.Matches(msg, k.close):
		b.session.Close()
		return
	}

	switch b.state {
	case idleState:
		if key.Matches(msg, k.launch) {
			b.prepareLaunch()
		}

	case endedState:
		if key.Matches(msg, k.replay) {
			b.prepareLaunch()
		}

	case loadingState:
		if key.Matches(msg, k.stop) && snap.Layout.Stop {
			b.session.Stop()
		}

	case speedMenuState:
		b.handleSpeedMenuKey(msg)

	case playingState, pausedState:
		b.handlePlaybackKey(msg, snap)
	}
}

func (b *statefulBubble) handleSpeedMenuKey(msg tea.KeyMsg) {
	k := b.keymap

	switch {
	case key.Matches(msg, k.up):
		b.speedCursor = util.Min(len(session.Speeds)-1, b.speedCursor+1)
		b.session.Interact()
	case key.Matches(msg, k.down):
		b.speedCursor = util.Max(0, b.speedCursor-1)
		b.session.Interact()
	case key.Matches(msg, k.apply):
		speed := session.Speeds[b.speedCursor]
		if err := b.session.SetSpeed(speed); err != nil {
			b.queue(ui.NotifyError(err))
			return
		}
		b.queue(ui.Notify("Speed " + session.SpeedLabel(speed)))
	case key.Matches(msg, k.speed):
		b.session.ToggleSpeedMenu()
	case key.Matches(msg, k.playPause):
		b.session.TogglePause(false, nil)
	}
}

func (b *statefulBubble) handlePlaybackKey(msg tea.KeyMsg, snap session.Snapshot) {
	k := b.keymap
	buttons := snap.Buttons

	switch {
	case key.Matches(msg, k.playPause):
		b.session.TogglePause(false, nil)
		return
	case key.Matches(msg, k.toggleControls):
		b.session.ToggleControls()
		return
	}

	// Transport keys on a hidden overlay only bring it back.
	if !snap.ControlsShown {
		if snap.ControlsEnabled && b.isTransportKey(msg, snap.Layout) {
			b.session.ToggleControls()
		}
		return
	}

	switch {
	case key.Matches(msg, k.rewind) && buttons.Seek:
		b.session.SeekRelative(session.Rewind)
	case key.Matches(msg, k.forward) && buttons.Seek:
		b.session.SeekRelative(session.Forward)
	case key.Matches(msg, k.scrubBack) && buttons.Seek:
		b.session.SeekFraction(util.Clamp(snap.Position.Progress()-scrubStep, 0, 1))
	case key.Matches(msg, k.scrubForward) && buttons.Seek:
		b.session.SeekFraction(util.Clamp(snap.Position.Progress()+scrubStep, 0, 1))
	case key.Matches(msg, k.jump) && buttons.Seek:
		digit := float64(msg.String()[0] - '0')
		b.session.SeekFraction(digit / 10)
	case key.Matches(msg, k.speed) && buttons.Speed:
		b.session.ToggleSpeedMenu()
	case key.Matches(msg, k.minimize) && buttons.Resize:
		b.session.ToggleMinimize()
	case key.Matches(msg, k.stop) && buttons.Stop:
		b.session.Stop()
	}
}

// isTransportKey reports whether msg is bound to a button the overlay carries.
func (b *statefulBubble) isTransportKey(msg tea.KeyMsg, layout session.Buttons) bool {
	k := b.keymap

	switch {
	case key.Matches(msg, k.rewind, k.forward, k.scrubBack, k.scrubForward, k.jump):
		return layout.Seek
	case key.Matches(msg, k.speed):
		return layout.Speed
	case key.Matches(msg, k.minimize):
		return layout.Resize
	case key.Matches(msg, k.stop):
		return layout.Stop
	}
	return false
}

// applyConfig picks up settings that can change while playing.
func (b *statefulBubble) applyConfig(keys []string) {
	if lo.Contains(keys, cfgkey.ControlsAutoHideSeconds) {
		b.session.Controls().SetInterval(time.Duration(viper.GetInt(cfgkey.ControlsAutoHideSeconds)) * time.Second)
	}
	if lo.Contains(keys, cfgkey.TUIFrameRate) {
		b.options.FrameRate = viper.GetInt(cfgkey.TUIFrameRate)
	}
	if lo.Contains(keys, cfgkey.TUIShowThumbnailPath) {
		b.options.ShowThumbnailPath = viper.GetBool(cfgkey.TUIShowThumbnailPath)
	}

	b.queue(ui.Notify(fmt.Sprintf("Reloaded %s", strings.Join(keys, ", "))))
}
