package scheduler

import (
	"path/filepath"
	"sync"

	"github.com/skyezerfox/tackle/pkg/fs"
	"github.com/skyezerfox/tackle/pkg/git"
	"github.com/skyezerfox/tackle/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=env.go -destination=mocks/env.gen.go -package=mocks

// Env answers the environment questions asked by hook conditions.
type Env interface {
	// CurrentBranch returns the active branch name, empty when unknown.
	CurrentBranch() string
	// FileExists reports whether path is present.
	FileExists(path string) bool
	// ExecutableAvailable reports whether name is found on PATH.
	ExecutableAvailable(name string) bool
}

type projectEnv struct {
	fs     fs.FS
	git    git.Git
	logger logger.Logger
	root   string

	branchOnce sync.Once
	branch     string
}

// NewEnvParams contains parameters for creating a project-backed Env.
type NewEnvParams struct {
	FS     fs.FS
	Git    git.Git
	Logger logger.Logger
	// Root is the project work tree. Relative paths in exists clauses resolve against it.
	Root string
}

// NewEnv creates an Env backed by the project's work tree.
func NewEnv(params NewEnvParams) Env {
	log := params.Logger
	if log == nil {
		log = logger.NewNoopLogger()
	}

	return &projectEnv{
		fs:     params.FS,
		git:    params.Git,
		logger: log,
		root:   params.Root,
	}
}

// CurrentBranch reads the branch once per Env.
func (e *projectEnv) CurrentBranch() string {
	e.branchOnce.Do(func() {
		branch, err := e.git.GetCurrentBranch(e.root)
		if err != nil {
			e.logger.Warnf("Failed to read current branch: %v", err)
			return
		}
		e.branch = branch
	})
	return e.branch
}

func (e *projectEnv) FileExists(path string) bool {
	if !filepath.IsAbs(path) {
		path = filepath.Join(e.root, path)
	}
	exists, err := e.fs.Exists(path)
	return err == nil && exists
}

func (e *projectEnv) ExecutableAvailable(name string) bool {
	_, err := e.fs.Which(name)
	return err == nil
}
