package tackle

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/skyezerfox/tackle/pkg/fetch"
	"github.com/skyezerfox/tackle/pkg/identifier"
	"github.com/skyezerfox/tackle/pkg/manifest"
)

const integrityPrefix = "sha256-"

// integrity digests the package.toml of a fetched package, at its subpath.
func (t *realTackle) integrity(f fetch.Fetcher, id identifier.ID) (string, error) {
	dir, err := f.ManifestDir(id)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, manifest.FileName)
	data, err := t.deps.FS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	sum := sha256.Sum256(data)
	return integrityPrefix + hex.EncodeToString(sum[:]), nil
}
