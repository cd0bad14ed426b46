package resolver

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is a full semantic version such as 1.2.3 or 1.2.3-rc.1.
type Version struct {
	raw string
}

// ParseVersion parses a semantic version with or without a leading "v".
// Shorthands like "1.2" are rejected.
func ParseVersion(s string) (Version, error) {
	trimmed := strings.TrimPrefix(s, "v")
	v := "v" + trimmed

	if !semver.IsValid(v) {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}

	withoutBuild, _, _ := strings.Cut(v, "+")
	if semver.Canonical(v) != withoutBuild {
		return Version{}, fmt.Errorf("%w: %q is not a full major.minor.patch version", ErrInvalidVersion, s)
	}

	return Version{raw: trimmed}, nil
}

// String returns the version without a "v" prefix. Tags are matched against it.
func (v Version) String() string {
	return v.raw
}

// IsZero reports whether v was never parsed.
func (v Version) IsZero() bool {
	return v.raw == ""
}

// Compare returns -1, 0 or +1 following semantic version precedence.
func (v Version) Compare(other Version) int {
	return semver.Compare("v"+v.raw, "v"+other.raw)
}
