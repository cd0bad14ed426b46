// Package scheduler evaluates hook conditions and picks the next hook to run
// for a single pass over a manifest's hooks, and error definitions.
package scheduler

import "errors"

// Error definitions for scheduler package.
var (
	// ErrUnknownHookID is returned when setting the state of an id no hook carries.
	// It indicates a caller bug rather than a user error.
	ErrUnknownHookID = errors.New("unknown hook id")

	// ErrInvalidTransition is returned when leaving a terminal state or re-entering Pending.
	ErrInvalidTransition = errors.New("invalid hook state transition")
)
