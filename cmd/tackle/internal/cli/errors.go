// Package cli provides common configuration and utility functions for the tackle CLI.
package cli

import "errors"

// Error definitions for cli package.
var (
	// ErrFailedToLoadConfig is returned when the configuration cannot be loaded.
	ErrFailedToLoadConfig = errors.New("failed to load configuration")
)
