// Package executor runs hook commands and classifies their exit status, and error definitions.
package executor

import "errors"

// Error definitions for executor package.
var (
	// ErrEmptyCommand is returned for a command with no arguments.
	ErrEmptyCommand = errors.New("empty command")

	// ErrCommandNotFound is returned when the program is not on PATH.
	ErrCommandNotFound = errors.New("command not found")

	// ErrStartFailed is returned when the process cannot be started or waited on.
	ErrStartFailed = errors.New("failed to run command")
)
