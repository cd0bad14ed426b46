package fs

import (
	"os"
	"path/filepath"
)

// CreateFileIfNotExists creates a file with initial content if it doesn't exist.
// An existing file is left untouched.
func (f *realFS) CreateFileIfNotExists(filename string, initialContent []byte, perm os.FileMode) error {
	// Check if file already exists
	exists, err := f.Exists(filename)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	// Create parent directories if they don't exist
	if err := f.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	// Create file with initial content
	return f.WriteFileAtomic(filename, initialContent, perm)
}
