package player

import (
	"fmt"
	"net"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/curtain-cli/curtain/constant"
	"github.com/curtain-cli/curtain/filesystem"
	"github.com/curtain-cli/curtain/log"
	"github.com/curtain-cli/curtain/session"
	"github.com/curtain-cli/curtain/util"
	"github.com/curtain-cli/curtain/where"
	"github.com/google/uuid"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second
)

// MPV is a video surface rendered by an mpv process. The process is started on
// the first Attach and kept idle between files until Close.
type MPV struct {
	binary  string
	closing atomic.Bool
	closed  atomic.Bool

	// startMu serializes process starts, which may run off the host's loop.
	startMu sync.Mutex

	// procMu guards the process fields below it.
	procMu     sync.Mutex
	socketPath string
	cmd        *exec.Cmd
	exited     chan struct{}
	listener   *EventListener
	translator *translator

	// mu serializes IPC requests.
	mu        sync.Mutex
	requestID int64

	sig session.Signals
}

// NewMPV creates an mpv surface; nothing is started until Attach.
func NewMPV() *MPV {
	return &MPV{binary: "mpv"}
}

// Notify sets where playback signals go.
func (m *MPV) Notify(sig session.Signals) {
	m.sig = sig
}

// Attach loads source into mpv, starting the process if needed.
func (m *MPV) Attach(source string, startMuted, loop bool) error {
	target, err := sanitizeMediaTarget(source)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	if err := m.ensureStarted(); err != nil {
		return err
	}
	if t := m.currentTranslator(); t != nil {
		t.setLooping(loop)
	}

	if _, err := m.sendCommand("set_property", "mute", startMuted); err != nil {
		return err
	}
	if _, err := m.sendCommand("set_property", "loop-file", loopValue(loop)); err != nil {
		return err
	}
	if _, err := m.sendCommand("set_property", "force-media-title", sanitizeTitle(util.FileStem(target))); err != nil {
		return err
	}

	_, err = m.sendCommand("loadfile", target, "replace")
	return err
}

// Prepare starts the idle mpv process ahead of the first Attach. It may be called
// from any goroutine.
func (m *MPV) Prepare() error {
	return m.ensureStarted()
}

// SeekTo moves playback to an absolute position in seconds.
func (m *MPV) SeekTo(seconds float64) error {
	if t := m.currentTranslator(); t != nil {
		t.expectSeek()
	}
	_, err := m.sendCommand("seek", seconds, "absolute")
	return err
}

// SetRate sets the playback speed multiplier.
func (m *MPV) SetRate(multiplier float64) error {
	_, err := m.sendCommand("set_property", "speed", multiplier)
	return err
}

// SetPaused pauses or resumes playback.
func (m *MPV) SetPaused(paused bool) error {
	_, err := m.sendCommand("set_property", "pause", paused)
	return err
}

// Detach unloads the current file; the idle process stays around for a replay.
func (m *MPV) Detach() error {
	if !m.running() {
		return nil
	}
	_, err := m.sendCommand("stop")
	return err
}

// Close quits mpv, killing it if it does not exit in time.
func (m *MPV) Close() error {
	m.startMu.Lock()
	defer m.startMu.Unlock()

	m.closed.Store(true)

	m.procMu.Lock()
	cmd, exited, listener, socketPath := m.cmd, m.exited, m.listener, m.socketPath
	m.procMu.Unlock()

	if cmd == nil {
		return nil
	}
	m.closing.Store(true)

	if listener != nil {
		listener.Stop()
	}

	if m.running() {
		_, _ = m.sendCommand("quit")
	}

	select {
	case <-exited:
	case <-time.After(quitTimeout):
		log.Warnf("mpv did not quit in %s, killing it", quitTimeout)
		_ = killProcess(cmd)
	}

	_ = filesystem.API().Remove(socketPath)
	return nil
}

func (m *MPV) running() bool {
	m.procMu.Lock()
	exited := m.exited
	m.procMu.Unlock()

	return isRunning(exited)
}

func isRunning(exited chan struct{}) bool {
	if exited == nil {
		return false
	}

	select {
	case <-exited:
		return false
	default:
		return true
	}
}

func (m *MPV) socket() string {
	m.procMu.Lock()
	defer m.procMu.Unlock()
	return m.socketPath
}

func (m *MPV) currentTranslator() *translator {
	m.procMu.Lock()
	defer m.procMu.Unlock()
	return m.translator
}

func (m *MPV) ensureStarted() error {
	m.startMu.Lock()
	defer m.startMu.Unlock()

	if m.closed.Load() {
		return ErrPlayerExited
	}
	if m.running() {
		return nil
	}
	return m.start()
}

// start launches mpv and publishes its process state once the IPC socket answers.
// Callers hold startMu.
func (m *MPV) start() error {
	m.procMu.Lock()
	stale := m.listener
	m.procMu.Unlock()
	if stale != nil {
		stale.Stop()
	}

	socketPath := filepath.Join(where.Temp(), fmt.Sprintf("%s-%s.sock", constant.Curtain, uuid.NewString()[:8]))

	cmd := exec.Command(m.binary, buildArgs(socketPath)...)
	cmd.SysProcAttr = sysProcAttr()
	cmd.Stdout = nil
	cmd.Stderr = nil
	cmd.Stdin = nil

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	exited := make(chan struct{})
	go func() {
		err := cmd.Wait()
		close(exited)

		if m.closing.Load() {
			return
		}
		log.Warnf("mpv exited: %v", err)
		if m.sig != nil {
			m.sig.OnError(ErrPlayerExited)
		}
	}()

	if err := waitForSocket(socketPath, exited); err != nil {
		if isRunning(exited) {
			log.Warnf("killing mpv: socket never became ready")
			m.closing.Store(true)
			_ = killProcess(cmd)
		}
		return fmt.Errorf("mpv socket not ready: %w", err)
	}

	var (
		listener *EventListener
		tr       *translator
	)
	if m.sig != nil {
		tr = newTranslator(m.sig)
		listener = NewEventListener(socketPath, tr.handle)
	}

	m.procMu.Lock()
	m.socketPath, m.cmd, m.exited = socketPath, cmd, exited
	m.listener, m.translator = listener, tr
	m.procMu.Unlock()

	if listener != nil {
		if err := listener.Start(); err != nil {
			return err
		}
	}

	return nil
}

func waitForSocket(socketPath string, exited chan struct{}) error {
	for i := 0; i < socketWaitRetries; i++ {
		time.Sleep(socketWaitDelay)

		if !isRunning(exited) {
			return fmt.Errorf("mpv exited before socket was ready")
		}

		conn, err := net.Dial("unix", socketPath)
		if err == nil {
			conn.Close()
			return nil
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", socketPath, socketWaitRetries)
}

// buildArgs starts mpv idle with only the IPC server configured, so the user's
// mpv.conf decides everything else. Files are loaded over IPC once the event
// listener is attached, which keeps every event of the file observable.
func buildArgs(socketPath string) []string {
	return []string{
		"--no-terminal",
		"--really-quiet",
		"--input-ipc-server=" + socketPath,
		"--idle=yes",
		"--force-window=yes",
		"--keep-open=yes",
		"--pause=no",
	}
}

func loopValue(loop bool) string {
	if loop {
		return "inf"
	}
	return "no"
}

// sanitizeMediaTarget validates that a source is safe to hand to mpv.
func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty source")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in source")
	}

	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("source must not start with '-' (looks like a flag)")
	}

	if strings.Contains(l, "://") {
		u, err := url.Parse(l)
		if err != nil {
			return "", fmt.Errorf("invalid URL: %w", err)
		}
		switch strings.ToLower(u.Scheme) {
		case "http", "https", "file":
			return l, nil
		default:
			return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
		}
	}

	return filepath.Clean(l), nil
}

func sanitizeTitle(title string) string {
	t := strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(t)
}
