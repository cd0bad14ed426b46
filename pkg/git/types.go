package git

// CloneParams contains parameters for Clone.
type CloneParams struct {
	RepoURL    string
	TargetPath string
	// AllTags fetches every tag of the remote, not only those reachable
	// from the cloned branch.
	AllTags bool
	// Tag checks out the given tag instead of the default branch.
	Tag string
}
