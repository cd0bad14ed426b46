package project

import (
	"path/filepath"

	"github.com/skyezerfox/tackle/pkg/fs"
	"github.com/skyezerfox/tackle/pkg/logger"
	"github.com/skyezerfox/tackle/pkg/manifest"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=project.go -destination=mocks/project.gen.go -package=mocks

// Layout of the .tackle directory, relative to the project root.
const (
	TackleDir     = ".tackle"
	ManifestFile  = "tackle.toml"
	HooksDir      = "hooks"
	GitignoreFile = ".gitignore"
)

// Project interface manages the tackle state of one repository.
type Project interface {
	// Root returns the work tree root.
	Root() string
	// IsInitialized reports whether .tackle exists.
	IsInitialized() (bool, error)
	// Init creates .tackle with a default manifest, a hooks directory and a .gitignore.
	Init() error
	// ReadManifest loads .tackle/tackle.toml.
	ReadManifest() (*Manifest, error)
	// WriteManifest replaces .tackle/tackle.toml.
	WriteManifest(mf *Manifest) error
	// AddHook records a package under a hook type, replacing an entry with the same URL.
	AddHook(hookType manifest.HookType, hook InstalledHook) error
	// RemoveHook forgets a package under whichever hook type holds it.
	RemoveHook(url string) (manifest.HookType, error)
	// InstallShims writes git hooks that call tackle, returning the paths written.
	InstallShims() ([]string, error)
}

type realProject struct {
	fs     fs.FS
	logger logger.Logger
	root   string
}

// OpenParams contains parameters for opening a Project.
type OpenParams struct {
	FS      fs.FS
	Context Context
	Logger  logger.Logger
}

// Open discovers the repository root through the context.
func Open(params OpenParams) (Project, error) {
	root, err := params.Context.DiscoverRoot()
	if err != nil {
		return nil, err
	}

	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}
	log.Debugf("Project root: %s", root)

	return &realProject{
		fs:     params.FS,
		logger: log,
		root:   root,
	}, nil
}

func (p *realProject) Root() string {
	return p.root
}

func (p *realProject) tackleDir() string {
	return filepath.Join(p.root, TackleDir)
}

func (p *realProject) manifestPath() string {
	return filepath.Join(p.tackleDir(), ManifestFile)
}

// IsInitialized reports whether .tackle exists as a directory.
func (p *realProject) IsInitialized() (bool, error) {
	exists, err := p.fs.Exists(p.tackleDir())
	if err != nil || !exists {
		return false, err
	}
	return p.fs.IsDir(p.tackleDir())
}
