// Package filesystem routes all file access through a swappable afero backend.
//
// Production code runs on the OS filesystem; tests call SetMemMapFs to run
// against an in-memory one without touching the disk.
package filesystem

import "github.com/spf13/afero"

var backend afero.Fs = afero.NewOsFs()

// API returns the current backend wrapped in the afero utility layer.
func API() afero.Afero {
	return afero.Afero{Fs: backend}
}

// SetOsFs points the backend at the real operating system filesystem.
func SetOsFs() {
	backend = afero.NewOsFs()
}

// SetMemMapFs points the backend at a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.NewMemMapFs()
}
