// Package player drives external media players as video surfaces for a session.
// The primary backend is mpv through its JSON-IPC interface.
package player

import (
	"errors"
	"fmt"
	"runtime"
	"sort"

	"github.com/curtain-cli/curtain/constant"
	"github.com/curtain-cli/curtain/session"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
)

// ErrPlayerExited is reported when the player process goes away on its own.
var ErrPlayerExited = errors.New("player exited")

// Backend is a session.Surface backed by an external player process.
type Backend interface {
	session.Surface

	// Notify sets where playback signals go. Signals are delivered on a
	// background goroutine, never from inside a surface command; hosts marshal
	// them onto their own loop.
	Notify(sig session.Signals)

	// Close terminates the player process and releases its resources.
	Close() error
}

const (
	MPVName  = "mpv"
	IINAName = "iina"
)

var backends = map[string]func() Backend{
	MPVName:  func() Backend { return NewMPV() },
	IINAName: func() Backend { return NewIINA() },
}

// Available lists the registered backend names.
func Available() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates the named backend.
func New(name string) (Backend, error) {
	create, ok := backends[name]
	if !ok {
		if closest := closest(name); closest != "" {
			return nil, fmt.Errorf("unknown player %q, did you mean %q?", name, closest)
		}
		return nil, fmt.Errorf("unknown player %q", name)
	}

	if name == IINAName && runtime.GOOS != constant.Darwin {
		return nil, fmt.Errorf("%s is only supported on macOS", name)
	}

	return create(), nil
}

// NeedsSynthesizedReady reports whether the backend cannot tell when its first
// frame is on screen.
func NeedsSynthesizedReady(name string) bool {
	return name == IINAName
}

func closest(name string) string {
	best, bestDistance := "", 3
	for _, candidate := range Available() {
		if d := levenshtein.Distance(name, candidate); d < bestDistance {
			best, bestDistance = candidate, d
		}
	}
	return best
}
