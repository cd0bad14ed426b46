package fs

import (
	"fmt"
	"os"
)

// GetHomeDir returns the user's home directory path.
func (f *realFS) GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHomeDirectory, err)
	}
	return home, nil
}
