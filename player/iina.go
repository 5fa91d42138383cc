package player

import (
	"fmt"
	"os/exec"
	"sync"

	"github.com/curtain-cli/curtain/log"
	"github.com/curtain-cli/curtain/session"
	"github.com/curtain-cli/curtain/util"
)

// IINA hands playback to the macOS IINA app through LaunchServices. IINA exposes
// no control channel, so seek, rate and pause are accepted and dropped, and the
// only signals are a load without duration and an end when the app goes away.
// Sessions using it synthesize their ready signal.
type IINA struct {
	mu     sync.Mutex
	cmd    *exec.Cmd
	exited chan struct{}
	sig    session.Signals
}

func NewIINA() *IINA {
	return &IINA{}
}

func (p *IINA) Notify(sig session.Signals) {
	p.sig = sig
}

func (p *IINA) Attach(source string, startMuted, loop bool) error {
	target, err := sanitizeMediaTarget(source)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	cmd := exec.Command("open", iinaArgs(target, startMuted, loop)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("LaunchServices failed to invoke IINA: %w", err)
	}

	exited := make(chan struct{})
	p.cmd, p.exited = cmd, exited
	sig := p.sig

	go func() {
		if sig != nil {
			sig.OnLoaded(0, 0)
		}

		_ = cmd.Wait()
		close(exited)

		p.mu.Lock()
		current := p.cmd == cmd
		p.mu.Unlock()
		if current && sig != nil {
			sig.OnEnd()
		}
	}()

	return nil
}

func (p *IINA) SeekTo(float64) error  { return nil }
func (p *IINA) SetRate(float64) error { return nil }
func (p *IINA) SetPaused(bool) error  { return nil }

func (p *IINA) Detach() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cmd == nil || p.cmd.Process == nil {
		return nil
	}

	select {
	case <-p.exited:
		return nil
	default:
	}

	log.Infof("stopping IINA (pid %d)", p.cmd.Process.Pid)
	return p.cmd.Process.Kill()
}

func (p *IINA) Close() error {
	return p.Detach()
}

func iinaArgs(target string, startMuted, loop bool) []string {
	args := []string{
		"-W",
		"-a", "IINA",
		"--args",
		"--mpv-force-media-title=" + sanitizeTitle(util.FileStem(target)),
	}
	if startMuted {
		args = append(args, "--mpv-mute=yes")
	}
	if loop {
		args = append(args, "--mpv-loop-file=inf")
	}
	return append(args, target)
}
