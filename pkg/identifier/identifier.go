package identifier

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// DefaultHost is prepended to identifiers that are not host-qualified.
	DefaultHost = "github.com"

	// RootSubPath is the subpath of a package living at the repository root.
	RootSubPath = "."

	repositorySegments = 3
)

// hostPattern matches a DNS-looking first segment such as "github.com".
var hostPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]{1,61}[a-zA-Z0-9]\.[a-zA-Z]{2,}`)

// ID is the canonical form of a package identifier.
type ID struct {
	// Repository is the host/owner/repo part of the identifier.
	Repository string
	// SubPath locates the package inside the repository ("." for the root).
	SubPath string
}

// Canonicalize turns a raw package identifier into its canonical form.
func Canonicalize(raw string) (ID, error) {
	if !strings.Contains(raw, "/") {
		return ID{}, fmt.Errorf("%w: %q must contain at least one '/'", ErrInvalidIdentifier, raw)
	}

	qualified := raw
	first := strings.SplitN(raw, "/", 2)[0]
	if !IsHost(first) {
		qualified = DefaultHost + "/" + raw
	}

	segments := strings.Split(qualified, "/")
	if len(segments) < repositorySegments {
		return ID{}, fmt.Errorf("%w: %q must have the form [host/]owner/repo[/subpath]",
			ErrInvalidIdentifier, raw)
	}
	for _, segment := range segments[:repositorySegments] {
		if segment == "" {
			return ID{}, fmt.Errorf("%w: %q contains an empty segment", ErrInvalidIdentifier, raw)
		}
	}

	subPath := strings.Join(segments[repositorySegments:], "/")
	if subPath == "" {
		subPath = RootSubPath
	}

	return ID{
		Repository: strings.Join(segments[:repositorySegments], "/"),
		SubPath:    subPath,
	}, nil
}

// IsHost reports whether a path segment looks like a DNS host.
func IsHost(segment string) bool {
	return hostPattern.MatchString(segment)
}

// CloneURL returns the HTTPS clone URL of the repository.
func (id ID) CloneURL() string {
	return "https://" + id.Repository + ".git"
}

// IsRoot reports whether the package lives at the repository root.
func (id ID) IsRoot() bool {
	return id.SubPath == RootSubPath
}

// String returns the full canonical identifier, including the subpath.
func (id ID) String() string {
	if id.IsRoot() {
		return id.Repository
	}
	return id.Repository + "/" + id.SubPath
}

// Host returns the host segment of the repository.
func (id ID) Host() string {
	return id.segment(0)
}

// Owner returns the owner segment of the repository.
func (id ID) Owner() string {
	return id.segment(1)
}

// Name returns the repository name segment.
func (id ID) Name() string {
	return id.segment(2)
}

func (id ID) segment(i int) string {
	segments := strings.SplitN(id.Repository, "/", repositorySegments)
	if i >= len(segments) {
		return ""
	}
	return segments[i]
}
