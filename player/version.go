package player

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"time"
)

// MinMPVVersion is the oldest mpv whose JSON IPC echoes request_id.
const MinMPVVersion = "0.30.0"

var mpvVersionLine = regexp.MustCompile(`(?m)^mpv v?(\d+\.\d+(?:\.\d+)?\S*)`)

// MPVVersion asks the mpv binary on PATH for its version.
func MPVVersion(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	out, err := exec.CommandContext(ctx, "mpv", "--version").Output()
	if err != nil {
		return "", fmt.Errorf("mpv --version: %w", err)
	}

	return parseMPVVersion(string(out))
}

func parseMPVVersion(output string) (string, error) {
	m := mpvVersionLine.FindStringSubmatch(output)
	if m == nil {
		return "", fmt.Errorf("unrecognized mpv version output")
	}
	return m[1], nil
}
