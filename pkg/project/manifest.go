package project

import "github.com/skyezerfox/tackle/pkg/manifest"

// ManifestVersion is the project manifest format written by tackle init.
const ManifestVersion = "1"

// Manifest is .tackle/tackle.toml: the hook packages installed in a project.
type Manifest struct {
	Version string         `toml:"version"`
	Hooks   InstalledHooks `toml:"hooks"`
}

// InstalledHooks lists installed packages per git hook, in run order.
type InstalledHooks struct {
	PreCommit  []InstalledHook `toml:"precommit"`
	PostCommit []InstalledHook `toml:"postcommit"`
	PrePush    []InstalledHook `toml:"prepush"`
}

// InstalledHook records one installed package.
type InstalledHook struct {
	URL       string `toml:"url"`
	Version   string `toml:"version"`
	Integrity string `toml:"integrity"`
}

// ForType returns a pointer to the list of hook type t, nil for an unknown type.
func (h *InstalledHooks) ForType(t manifest.HookType) *[]InstalledHook {
	switch t {
	case manifest.PreCommit:
		return &h.PreCommit
	case manifest.PostCommit:
		return &h.PostCommit
	case manifest.PrePush:
		return &h.PrePush
	default:
		return nil
	}
}

// Find returns the hook type and entry installed under url.
func (m *Manifest) Find(url string) (manifest.HookType, InstalledHook, bool) {
	for _, t := range manifest.HookTypes {
		for _, h := range *m.Hooks.ForType(t) {
			if h.URL == url {
				return t, h, true
			}
		}
	}
	return "", InstalledHook{}, false
}

// All returns every installed package with its hook type, in hook type order.
func (m *Manifest) All() []TypedHook {
	var all []TypedHook
	for _, t := range manifest.HookTypes {
		for _, h := range *m.Hooks.ForType(t) {
			all = append(all, TypedHook{Type: t, Hook: h})
		}
	}
	return all
}

// TypedHook pairs an installed package with the hook it runs in.
type TypedHook struct {
	Type manifest.HookType
	Hook InstalledHook
}
