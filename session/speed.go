package session

import (
	"fmt"

	"github.com/samber/lo"
)

// Speeds is the fixed set of supported playback rate multipliers, ascending.
var Speeds = []float64{0.25, 0.5, 0.75, 1, 1.25, 1.5, 1.75, 2}

// DefaultSpeed is the rate every new session starts with.
const DefaultSpeed = 1.0

// ValidSpeed reports whether v belongs to Speeds.
func ValidSpeed(v float64) bool {
	return lo.Contains(Speeds, v)
}

// SpeedLabel formats a multiplier the way the speed menu shows it.
func SpeedLabel(v float64) string {
	if v == DefaultSpeed {
		return "Normal"
	}
	return fmt.Sprintf("%gx", v)
}

// SpeedIndex returns the position of v within Speeds, or -1.
func SpeedIndex(v float64) int {
	return lo.IndexOf(Speeds, v)
}
