// Package version compares the dotted version strings reported by external players.
package version

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/samber/lo"
)

var dotted = regexp.MustCompile(`^v?(\d+)\.(\d+)(?:\.(\d+))?`)

type version struct {
	major, minor, patch int
}

// parse reads a leading major.minor[.patch]; anything after it (a -git or -dirty
// suffix) is ignored.
func parse(s string) (version, error) {
	m := dotted.FindStringSubmatch(s)
	if m == nil {
		return version{}, fmt.Errorf("invalid version %q", s)
	}

	atoi := func(s string) int {
		if s == "" {
			return 0
		}
		return lo.Must(strconv.Atoi(s))
	}

	return version{major: atoi(m[1]), minor: atoi(m[2]), patch: atoi(m[3])}, nil
}

// Compare performs a semantic comparison between two version strings.
// Returns 1 if a > b, -1 if a < b, and 0 if equal.
func Compare(a, b string) (int, error) {
	av, err := parse(a)
	if err != nil {
		return 0, err
	}

	bv, err := parse(b)
	if err != nil {
		return 0, err
	}

	for _, pair := range []lo.Tuple2[int, int]{
		{A: av.major, B: bv.major},
		{A: av.minor, B: bv.minor},
		{A: av.patch, B: bv.patch},
	} {
		if pair.A > pair.B {
			return 1, nil
		}

		if pair.A < pair.B {
			return -1, nil
		}
	}

	return 0, nil
}

// AtLeast reports whether v is minimum or newer.
func AtLeast(v, minimum string) (bool, error) {
	c, err := Compare(v, minimum)
	return c >= 0, err
}
