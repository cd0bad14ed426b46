package fs

import (
	"fmt"
	"path/filepath"
	"strings"
)

// IsPathWithinBase checks if a target path is within the base path.
// It is used to keep package subpaths from escaping their repository.
func (f *realFS) IsPathWithinBase(basePath, targetPath string) (bool, error) {
	// Handle empty paths
	if basePath == "" {
		return targetPath == "", nil
	}

	// Convert both paths to absolute paths for comparison
	absBase, err := filepath.Abs(filepath.Clean(basePath))
	if err != nil {
		return false, fmt.Errorf("failed to get absolute path for base path: %w", err)
	}

	absTarget, err := filepath.Abs(filepath.Clean(targetPath))
	if err != nil {
		return false, fmt.Errorf("failed to get absolute path for target path: %w", err)
	}

	// Check if target path is within base path by comparing path components
	rel, err := filepath.Rel(absBase, absTarget)
	if err != nil {
		return false, err
	}

	// If relative path starts with "..", target is outside base path
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)), nil
}
