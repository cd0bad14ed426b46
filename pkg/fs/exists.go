package fs

import (
	"errors"
	iofs "io/fs"
	"os"
)

// Exists checks if a file or directory exists at the given path.
// A missing path is not an error; any other stat failure is returned.
func (f *realFS) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, iofs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
