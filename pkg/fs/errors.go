// Package fs provides the file system operations used by tackle and error definitions.
package fs

import "errors"

// Error definitions for fs package.
var (
	// ErrHomeDirectory is returned when the user's home directory cannot be determined.
	ErrHomeDirectory = errors.New("failed to determine home directory")

	// ErrExecutableNotFound is returned when a command cannot be found on PATH.
	ErrExecutableNotFound = errors.New("executable not found in PATH")
)
