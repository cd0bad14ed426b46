package cache

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/skyezerfox/tackle/pkg/fs"
	"github.com/skyezerfox/tackle/pkg/git"
	"github.com/skyezerfox/tackle/pkg/identifier"
	"github.com/skyezerfox/tackle/pkg/logger"
	"github.com/skyezerfox/tackle/pkg/manifest"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=cache.go -destination=mocks/cache.gen.go -package=mocks

// DirName is the cache directory created under the home directory.
const DirName = ".tackle"

// Cache interface provides access to globally cached hook packages.
type Cache interface {
	// ResolveRoot returns the cache root, creating it on first use.
	ResolveRoot() (string, error)

	// LookupRepository returns the cached path of a repository and whether it exists.
	LookupRepository(id identifier.ID) (string, bool, error)

	// LookupPackage loads the manifest of a cached package. It returns nil, nil
	// when the repository is not cached.
	LookupPackage(raw string) (*manifest.Package, error)

	// Store clones a repository into the cache unless it is already there.
	Store(ctx context.Context, id identifier.ID) (string, error)

	// Remove deletes a cached repository.
	Remove(id identifier.ID) error
}

type realCache struct {
	fs     fs.FS
	git    git.Git
	logger logger.Logger

	rootOverride string

	mu   sync.Mutex
	root string
}

// NewCacheParams contains parameters for creating a new Cache instance.
type NewCacheParams struct {
	FS     fs.FS
	Git    git.Git
	Logger logger.Logger
	// Root replaces <home>/.tackle when set. A leading ~ is expanded.
	Root string
}

// NewCache creates a new Cache instance.
func NewCache(params NewCacheParams) Cache {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &realCache{
		fs:           params.FS,
		git:          params.Git,
		logger:       log,
		rootOverride: params.Root,
	}
}

func repositoryPath(root string, id identifier.ID) string {
	return filepath.Join(root, filepath.FromSlash(id.Repository))
}
