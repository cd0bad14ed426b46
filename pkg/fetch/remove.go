package fetch

import (
	"fmt"

	"github.com/skyezerfox/tackle/pkg/identifier"
)

// Remove deletes a fetched package so that it can be fetched again.
func (f *realFetcher) Remove(raw string) error {
	id, err := identifier.Canonicalize(raw)
	if err != nil {
		return err
	}

	target := f.PackageDir(id)

	exists, err := f.fs.Exists(target)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", target, err)
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFetched, id.Repository)
	}

	f.logger.Logf("Removing %s", id.Repository)
	return f.fs.RemoveAll(target)
}
