// Package identifier turns raw package strings into canonical repository identifiers.
package identifier

import "errors"

// Error definitions for identifier package.
var (
	ErrInvalidIdentifier = errors.New("invalid package identifier")
)
