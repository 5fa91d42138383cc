package player

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"

	"github.com/curtain-cli/curtain/log"
)

// mpvEvent is one broadcast line from mpv.
type mpvEvent struct {
	Event     string `json:"event"`
	Name      string `json:"name"`
	Data      any    `json:"data"`
	Reason    string `json:"reason"`
	FileError string `json:"file_error"`
}

// observed lists the properties whose changes drive the session signals.
var observed = []string{
	"duration",
	"time-pos",
	"eof-reached",
	"width",
	"height",
}

// EventListener holds a persistent connection to mpv, observes the playback
// properties on it and hands every event to a handler.
type EventListener struct {
	socketPath string
	handle     func(mpvEvent)

	mu        sync.Mutex
	conn      net.Conn
	listening bool
	done      chan struct{}
}

// NewEventListener creates a listener for the given socket.
func NewEventListener(socketPath string, handle func(mpvEvent)) *EventListener {
	return &EventListener{
		socketPath: socketPath,
		handle:     handle,
	}
}

// Start subscribes to property changes and starts the read loop. Observers are
// bound to the connection that created them, so they are sent on the same one.
func (el *EventListener) Start() error {
	el.mu.Lock()
	defer el.mu.Unlock()

	if el.listening {
		return nil
	}

	conn, err := net.Dial("unix", el.socketPath)
	if err != nil {
		return fmt.Errorf("event listener connect: %w", err)
	}

	encoder := json.NewEncoder(conn)
	for i, name := range observed {
		if err := encoder.Encode(ipcCommand{Command: []any{"observe_property", i + 1, name}}); err != nil {
			conn.Close()
			return fmt.Errorf("observe %s: %w", name, err)
		}
	}

	el.conn = conn
	el.listening = true
	el.done = make(chan struct{})
	go el.readLoop(conn, el.done)

	log.Infof("mpv event listener started on %s", el.socketPath)
	return nil
}

// Stop closes the connection and waits for the read loop to finish.
func (el *EventListener) Stop() {
	el.mu.Lock()
	if !el.listening {
		el.mu.Unlock()
		return
	}
	el.listening = false
	_ = el.conn.Close()
	done := el.done
	el.mu.Unlock()

	<-done
}

func (el *EventListener) readLoop(conn net.Conn, done chan struct{}) {
	defer close(done)

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			el.process(line)
		}
		if err != nil {
			if !errors.Is(err, net.ErrClosed) {
				log.Warnf("event listener read error: %v", err)
			}
			el.mu.Lock()
			el.listening = false
			el.mu.Unlock()
			return
		}
	}
}

func (el *EventListener) process(line []byte) {
	var event mpvEvent
	if err := json.Unmarshal(line, &event); err != nil {
		log.Tracef("skipping unparseable mpv line: %s", line)
		return
	}

	// Replies to the observe commands carry no event name.
	if event.Event == "" {
		return
	}
	el.handle(event)
}
