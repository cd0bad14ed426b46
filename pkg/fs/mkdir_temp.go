package fs

import "os"

// MkdirTemp creates a new scratch directory. An empty dir uses the system
// temporary directory. Callers own the returned directory and must remove it.
func (f *realFS) MkdirTemp(dir, pattern string) (string, error) {
	return os.MkdirTemp(dir, pattern)
}
