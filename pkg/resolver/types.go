package resolver

import "net/url"

// Repository is a version resolution source. Package names are joined under URL.
type Repository struct {
	URL *url.URL
}

func (r Repository) String() string {
	if r.URL == nil {
		return ""
	}
	return r.URL.String()
}

// PackageURL returns the clone URL of name within the repository.
func (r Repository) PackageURL(name string) *url.URL {
	return r.URL.JoinPath(name)
}

// Location is where a resolved package can be obtained. Exactly one field is set.
type Location struct {
	Remote *url.URL
	Cached string
}

// RemoteLocation returns a Location pointing at a clone URL.
func RemoteLocation(u *url.URL) Location {
	return Location{Remote: u}
}

// CachedLocation returns a Location pointing at a cached directory.
func CachedLocation(path string) Location {
	return Location{Cached: path}
}

// IsCached reports whether the location is a local cache path.
func (l Location) IsCached() bool {
	return l.Cached != ""
}

func (l Location) String() string {
	if l.IsCached() {
		return l.Cached
	}
	if l.Remote != nil {
		return l.Remote.String()
	}
	return ""
}

// ResolvedPackage is the result of a successful resolution.
type ResolvedPackage struct {
	Name     string
	Version  Version
	Source   Repository
	Location Location
}
