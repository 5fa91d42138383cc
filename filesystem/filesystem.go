// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It uses afero so that tests can swap the OS filesystem for an in-memory one.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs installs a volatile in-memory filesystem backend for tests.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// IsOs reports whether the backend is the real operating system filesystem.
// Unix sockets and spawned processes only work against it.
func IsOs() bool {
	_, ok := backend.Fs.(*afero.OsFs)
	return ok
}
