package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/curtain-cli/curtain/color"
	"github.com/curtain-cli/curtain/session"
	"github.com/curtain-cli/curtain/style"
)

// statefulKeymap defines the keyboard interactions available in each state.
type statefulKeymap struct {
	state   state
	buttons session.Buttons

	close, forceQuit,
	playPause, toggleControls,
	rewind, forward,
	scrubBack, scrubForward,
	jump,
	speed, up, down, apply,
	minimize, stop, launch, replay,
	showHelp key.Binding
}

func (k *statefulKeymap) setState(newState state, buttons session.Buttons) {
	k.state = newState
	k.buttons = buttons
}

func newStatefulKeymap() *statefulKeymap {
	return &statefulKeymap{
		close: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "close"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		playPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp(style.Fg(color.Orange)("space"), style.Fg(color.Orange)("play/pause")),
		),
		toggleControls: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "controls"),
		),
		rewind: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "-10s"),
		),
		forward: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "+10s"),
		),
		scrubBack: key.NewBinding(
			key.WithKeys("shift+left", "H"),
			key.WithHelp("shift+←", "-5%"),
		),
		scrubForward: key.NewBinding(
			key.WithKeys("shift+right", "L"),
			key.WithHelp("shift+→", "+5%"),
		),
		jump: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "jump"),
		),
		speed: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "speed"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "faster"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "slower"),
		),
		apply: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "apply"),
		),
		minimize: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "minimize"),
		),
		stop: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "stop"),
		),
		launch: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "play"),
		),
		replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *statefulKeymap) help() ([]key.Binding, []key.Binding) {
	h := func(bindings ...key.Binding) []key.Binding {
		return bindings
	}

	to2 := func(a []key.Binding) ([]key.Binding, []key.Binding) {
		return a, a
	}

	// Bindings behind a button that is not offered are left out.
	offered := func(b key.Binding, ok bool) key.Binding {
		b.SetEnabled(ok)
		return b
	}

	switch k.state {
	case loadingState:
		return to2(h(offered(k.stop, k.buttons.Stop), k.close, k.forceQuit))
	case idleState:
		return to2(h(k.launch, k.close))
	case playingState, pausedState:
		short := h(
			k.playPause,
			k.toggleControls,
			offered(k.rewind, k.buttons.Seek),
			offered(k.forward, k.buttons.Seek),
			offered(k.speed, k.buttons.Speed),
			k.close,
			k.showHelp,
		)
		full := h(
			k.playPause,
			k.toggleControls,
			offered(k.rewind, k.buttons.Seek),
			offered(k.forward, k.buttons.Seek),
			offered(k.scrubBack, k.buttons.Seek),
			offered(k.scrubForward, k.buttons.Seek),
			offered(k.jump, k.buttons.Seek),
			offered(k.speed, k.buttons.Speed),
			offered(k.minimize, k.buttons.Resize),
			offered(k.stop, k.buttons.Stop),
			k.close,
			k.forceQuit,
		)
		return short, full
	case speedMenuState:
		return to2(h(k.up, k.down, k.apply, withDescription(k.speed, "cancel")))
	case endedState:
		return to2(h(k.replay, k.close))
	default:
		return to2(h())
	}
}

func (k *statefulKeymap) ShortHelp() []key.Binding {
	short, _ := k.help()
	return short
}

func (k *statefulKeymap) FullHelp() [][]key.Binding {
	_, full := k.help()
	return [][]key.Binding{full}
}

func withDescription(k key.Binding, description string) key.Binding {
	return key.NewBinding(
		key.WithKeys(k.Keys()...),
		key.WithHelp(k.Help().Key, description),
	)
}
