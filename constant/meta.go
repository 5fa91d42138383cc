// Package constant defines immutable application-level identifiers.
package constant

const (
	// Curtain is the canonical application identifier used for filesystem paths and CLI branding.
	Curtain = "curtain"

	// Version is the current application semantic version string.
	Version = "0.1.0"
)

// Build metadata, overridden with -ldflags "-X" at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
