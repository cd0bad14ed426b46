package tackle

import (
	"context"

	"github.com/skyezerfox/tackle/pkg/forge"
	"github.com/skyezerfox/tackle/pkg/identifier"
)

// DefaultQueryLimit is the number of results Query returns unless told otherwise.
const DefaultQueryLimit = 20

// QueryOpts contains optional parameters for Query.
type QueryOpts struct {
	// Forge names the forge to search. Defaults to GitHub.
	Forge string
	Limit int
}

// Query searches a forge for repositories publishing hook packages.
func (t *realTackle) Query(ctx context.Context, query string, opts ...QueryOpts) ([]forge.PackageInfo, error) {
	options := extractQueryOptions(opts)

	f, err := t.deps.Forges.GetForge(options.Forge)
	if err != nil {
		return nil, err
	}

	t.VerbosePrint("Searching %s for %q", f.Name(), query)
	return f.SearchPackages(ctx, query, options.Limit)
}

// Info returns the forge metadata of a package.
func (t *realTackle) Info(ctx context.Context, raw string) (*forge.PackageInfo, error) {
	id, err := identifier.Canonicalize(raw)
	if err != nil {
		return nil, err
	}

	f, err := t.deps.Forges.GetForgeForPackage(id)
	if err != nil {
		return nil, err
	}

	return f.GetPackage(ctx, id)
}

func extractQueryOptions(opts []QueryOpts) QueryOpts {
	var options QueryOpts
	if len(opts) > 0 {
		options = opts[0]
	}
	if options.Forge == "" {
		options.Forge = forge.GitHubName
	}
	if options.Limit <= 0 {
		options.Limit = DefaultQueryLimit
	}
	return options
}
