package fetch

import (
	"context"
	"path/filepath"

	"github.com/skyezerfox/tackle/pkg/fs"
	"github.com/skyezerfox/tackle/pkg/git"
	"github.com/skyezerfox/tackle/pkg/identifier"
	"github.com/skyezerfox/tackle/pkg/logger"
	"github.com/skyezerfox/tackle/pkg/manifest"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=fetcher.go -destination=mocks/fetcher.gen.go -package=mocks

// HooksDir is the project-relative directory holding fetched packages.
const HooksDir = ".tackle/hooks"

// Fetcher interface fetches packages into a project.
type Fetcher interface {
	// Fetch clones https://<repository>.git into the project and loads its manifest.
	Fetch(ctx context.Context, raw string) (*manifest.Package, error)

	// FetchFrom clones source, a URL or a local repository path, into the
	// project location of id and loads its manifest.
	FetchFrom(ctx context.Context, id identifier.ID, source string) (*manifest.Package, error)

	// FetchTag is FetchFrom with the work tree checked out at tag.
	FetchTag(ctx context.Context, id identifier.ID, source, tag string) (*manifest.Package, error)

	// Load reads the manifest of an already fetched package.
	Load(raw string) (*manifest.Package, error)

	// Remove deletes a fetched package so that it can be fetched again.
	Remove(raw string) error

	// PackageDir returns the project location of a repository.
	PackageDir(id identifier.ID) string

	// ManifestDir returns the directory holding the package.toml of id: the
	// repository clone joined with the package subpath.
	ManifestDir(id identifier.ID) (string, error)
}

type realFetcher struct {
	fs          fs.FS
	git         git.Git
	logger      logger.Logger
	projectRoot string
}

// NewFetcherParams contains parameters for creating a new Fetcher instance.
type NewFetcherParams struct {
	FS          fs.FS
	Git         git.Git
	Logger      logger.Logger
	ProjectRoot string
}

// NewFetcher creates a new Fetcher instance.
func NewFetcher(params NewFetcherParams) Fetcher {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &realFetcher{
		fs:          params.FS,
		git:         params.Git,
		logger:      log,
		projectRoot: params.ProjectRoot,
	}
}

// PackageDir returns <project>/.tackle/hooks/<host>/<owner>/<repo>.
func (f *realFetcher) PackageDir(id identifier.ID) string {
	return filepath.Join(f.projectRoot, filepath.FromSlash(HooksDir), filepath.FromSlash(id.Repository))
}
