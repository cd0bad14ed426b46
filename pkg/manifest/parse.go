package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/skyezerfox/tackle/pkg/fs"
)

// Parse decodes a manifest strictly: unknown keys are rejected.
func Parse(data []byte) (*Package, error) {
	var pkg Package

	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&pkg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrManifestParse, diagnostic(err), err)
	}

	if err := requireHooksTable(data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestParse, err)
	}

	if err := pkg.validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrManifestParse, err)
	}

	return &pkg, nil
}

// Load reads and parses the manifest at the root of dir.
func Load(fsys fs.FS, dir string) (*Package, error) {
	path := filepath.Join(dir, FileName)

	isDir, err := fsys.IsDir(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
	}
	if isDir {
		return nil, fmt.Errorf("%w: %s is a directory", ErrManifestNotFound, path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrManifestNotFound, path, err)
	}

	pkg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pkg, nil
}

// diagnostic renders go-toml's positional report when one is available.
func diagnostic(err error) string {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Sprintf("line %d, column %d", row, col)
	}

	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) {
		keys := make([]string, 0, len(strictErr.Errors))
		for _, e := range strictErr.Errors {
			keys = append(keys, strings.Join(e.Key(), "."))
		}
		return "unknown fields " + strings.Join(keys, ", ")
	}

	return "invalid document"
}

// requireHooksTable rejects a manifest without a [hooks] table. An empty
// table is a valid package with no hooks.
func requireHooksTable(data []byte) error {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return err
	}
	if _, ok := raw["hooks"]; !ok {
		return errors.New("hooks table is required")
	}
	return nil
}

func (p *Package) validate() error {
	for _, hookType := range HookTypes {
		seen := map[string]bool{}
		for i, hook := range p.Hooks.ForType(hookType) {
			if len(hook.Command) == 0 {
				return fmt.Errorf("hooks.%s[%d]: command is required", hookType, i)
			}
			if hook.ID == nil {
				continue
			}
			if seen[*hook.ID] {
				return fmt.Errorf("hooks.%s[%d]: duplicate id %q", hookType, i, *hook.ID)
			}
			seen[*hook.ID] = true
		}
	}
	return nil
}
