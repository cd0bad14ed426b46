package manifest

// FileName is the name of the manifest file at the root of a hook package.
const FileName = "package.toml"

// Package is a parsed package.toml.
type Package struct {
	Name        *string         `toml:"name"`
	Description *string         `toml:"description"`
	Version     *string         `toml:"version"`
	Hooks       HookDefinitions `toml:"hooks"`
}

// HookDefinitions holds the hooks of a package per git hook.
// Declaration order is the scheduling priority.
type HookDefinitions struct {
	PreCommit  []HookDefinition `toml:"precommit"`
	PostCommit []HookDefinition `toml:"postcommit"`
	PrePush    []HookDefinition `toml:"prepush"`
}

// HookDefinition is a single conditionally runnable command.
type HookDefinition struct {
	// ID is referenced by the conditions of other hooks.
	ID           *string         `toml:"id"`
	Command      []string        `toml:"command"`
	Dependencies []string        `toml:"dependencies"`
	Conditions   []HookCondition `toml:"conditions"`
}

// HookCondition is one clause of a hook's conditions. Every field must hold
// for the clause to match; an empty field always holds.
type HookCondition struct {
	Successful []string `toml:"successful"`
	Failed     []string `toml:"failed"`
	Skipped    []string `toml:"skipped"`
	Exists     []string `toml:"exists"`
	Branch     []string `toml:"branch"`
}

// DisplayName returns the package name, or fallback when the manifest has none.
func (p *Package) DisplayName(fallback string) string {
	if p.Name != nil && *p.Name != "" {
		return *p.Name
	}
	return fallback
}

// ForType returns the hooks declared for the given hook type.
func (h HookDefinitions) ForType(hookType HookType) []HookDefinition {
	switch hookType {
	case PreCommit:
		return h.PreCommit
	case PostCommit:
		return h.PostCommit
	case PrePush:
		return h.PrePush
	default:
		return nil
	}
}

// IDValue returns the hook id, or an empty string for an anonymous hook.
func (d HookDefinition) IDValue() string {
	if d.ID == nil {
		return ""
	}
	return *d.ID
}

// HasID reports whether the hook carries the given id.
func (d HookDefinition) HasID(id string) bool {
	return d.ID != nil && *d.ID == id
}

// IsAlways reports whether the clause has no constraint at all.
func (c HookCondition) IsAlways() bool {
	return len(c.Successful) == 0 &&
		len(c.Failed) == 0 &&
		len(c.Skipped) == 0 &&
		len(c.Exists) == 0 &&
		len(c.Branch) == 0
}
