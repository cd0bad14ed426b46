// Package manifest defines the package.toml schema of a hook package and error definitions.
package manifest

import "errors"

// Error definitions for manifest package.
var (
	// ErrManifestNotFound is returned when a directory holds no package.toml.
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrManifestParse is returned when a manifest is not valid TOML or does not match the schema.
	ErrManifestParse = errors.New("failed to parse manifest")

	// ErrUnknownHookType is returned for a hook type name tackle does not manage.
	ErrUnknownHookType = errors.New("unknown hook type")
)
