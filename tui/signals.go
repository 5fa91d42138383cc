package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

type (
	loadedMsg struct {
		duration, currentTime float64
	}
	readyMsg       struct{}
	progressMsg    float64
	endMsg         struct{}
	naturalSizeMsg struct {
		width, height int
	}
	surfaceErrorMsg struct {
		err error
	}
)

// programSignals posts surface signals to the program; Update hands them to the session.
// Signals are queued and forwarded in order by a separate goroutine, so a backend may
// signal from any goroutine, including from inside a surface command run by Update.
type programSignals struct {
	send func(tea.Msg)

	mu      sync.Mutex
	pending []tea.Msg
	wake    chan struct{}
	done    chan struct{}
	once    sync.Once
}

func newProgramSignals(send func(tea.Msg)) *programSignals {
	s := &programSignals{
		send: send,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go s.forward()
	return s
}

func (s *programSignals) post(msg tea.Msg) {
	s.mu.Lock()
	s.pending = append(s.pending, msg)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *programSignals) forward() {
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		s.mu.Lock()
		batch := s.pending
		s.pending = nil
		s.mu.Unlock()

		for _, msg := range batch {
			select {
			case <-s.done:
				return
			default:
			}
			s.send(msg)
		}
	}
}

// stop ends forwarding; signals posted afterwards are dropped.
func (s *programSignals) stop() {
	s.once.Do(func() { close(s.done) })
}

func (s *programSignals) OnLoaded(duration, currentTime float64) {
	s.post(loadedMsg{duration: duration, currentTime: currentTime})
}

func (s *programSignals) OnReadyForDisplay() {
	s.post(readyMsg{})
}

func (s *programSignals) OnProgress(currentTime float64) {
	s.post(progressMsg(currentTime))
}

func (s *programSignals) OnEnd() {
	s.post(endMsg{})
}

func (s *programSignals) OnNaturalSize(width, height int) {
	s.post(naturalSizeMsg{width: width, height: height})
}

func (s *programSignals) OnError(err error) {
	s.post(surfaceErrorMsg{err: err})
}
