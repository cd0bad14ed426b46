package forge

import "errors"

// Forge-specific errors.
var (
	ErrUnsupportedForge = errors.New("unsupported forge")
	ErrPackageNotFound  = errors.New("package repository not found")
	ErrInvalidQuery     = errors.New("invalid search query")
	ErrRateLimited      = errors.New("rate limited by forge API")
	ErrUnauthorized     = errors.New("unauthorized access to forge API")
)
