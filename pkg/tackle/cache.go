package tackle

import "github.com/skyezerfox/tackle/pkg/identifier"

// CachePath returns the global cache root, creating it on first use.
func (t *realTackle) CachePath() (string, error) {
	return t.deps.Cache.ResolveRoot()
}

// CacheLookup returns the cached location of a package and whether it is cached.
func (t *realTackle) CacheLookup(raw string) (string, bool, error) {
	id, err := identifier.Canonicalize(raw)
	if err != nil {
		return "", false, err
	}
	return t.deps.Cache.LookupRepository(id)
}
