//go:build rust

package rust

import "errors"

// Package errors for rust prober.
var (
	// ErrLibraryNotFound is returned when wgpu-native library is not found.
	ErrLibraryNotFound = errors.New("rust: wgpu-native library not found")

	// ErrBackendMismatch is returned when wgpu-native picked an adapter
	// outside the requested backend mask.
	ErrBackendMismatch = errors.New("rust: adapter backend not requested")
)
