// Package ui provides state management and rendering for ephemeral terminal notifications.
package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/curtain-cli/curtain/style"
)

// NotificationLifetime is how long a notification stays on screen.
const NotificationLifetime = 3 * time.Second

// Notification is a message shown under the main view until it expires.
type Notification struct {
	Text  string
	Error bool
}

// clearMsg clears the notification with the given generation.
type clearMsg struct {
	gen int
}

// Notify returns a tea.Cmd that posts a notification.
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return Notification{Text: text}
	}
}

// NotifyError returns a tea.Cmd that posts an error notification.
func NotifyError(err error) tea.Cmd {
	return func() tea.Msg {
		return Notification{Text: err.Error(), Error: true}
	}
}

// Model holds the current notification.
type Model struct {
	current Notification
	gen     int
}

// Update handles notification messages. A newer notification is not cleared by
// the expiry of an older one.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case Notification:
		m.current = msg
		m.gen++
		gen := m.gen
		return tea.Tick(NotificationLifetime, func(time.Time) tea.Msg {
			return clearMsg{gen: gen}
		})
	case clearMsg:
		if msg.gen == m.gen {
			m.current = Notification{}
		}
	}
	return nil
}

// Current returns the notification on screen, if any.
func (m *Model) Current() (Notification, bool) {
	return m.current, m.current.Text != ""
}

// View appends the current notification to the main content.
func (m *Model) View(mainContent string) string {
	n, ok := m.Current()
	if !ok {
		return mainContent
	}

	render := style.Faint
	if n.Error {
		render = style.Fg(style.ErrorColor)
	}

	lines := strings.Split(mainContent, "\n")
	lines[len(lines)-1] += "  " + render(n.Text)
	return strings.Join(lines, "\n")
}
