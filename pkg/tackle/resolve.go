package tackle

import (
	"context"
	"fmt"

	"github.com/skyezerfox/tackle/pkg/resolver"
)

// Resolve finds the highest-priority repository source holding name at version.
func (t *realTackle) Resolve(ctx context.Context, name, version string) (*resolver.ResolvedPackage, error) {
	v, err := resolver.ParseVersion(version)
	if err != nil {
		return nil, err
	}

	resolved, err := t.deps.Resolver.Resolve(ctx, name, v)
	if err != nil {
		return nil, err
	}
	if resolved == nil {
		return nil, fmt.Errorf("%w: %s@%s", ErrVersionNotFound, name, v)
	}

	return resolved, nil
}
