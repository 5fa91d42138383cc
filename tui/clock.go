package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/curtain-cli/curtain/timer"
)

// fireMsg carries an expired timer callback onto the Update loop.
type fireMsg struct {
	fn func()
}

// programClock is a timer.Clock whose callbacks run inside Update, so the session
// only ever sees one goroutine.
type programClock struct {
	send func(tea.Msg)
}

func (c *programClock) Now() time.Time {
	return time.Now()
}

func (c *programClock) AfterFunc(d time.Duration, fn func()) timer.Timer {
	return time.AfterFunc(d, func() {
		c.send(fireMsg{fn: fn})
	})
}
