// Package forge discovers hook packages published on code forges.
package forge

import (
	"context"
	"fmt"
	"time"

	"github.com/skyezerfox/tackle/pkg/identifier"
	"github.com/skyezerfox/tackle/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=forge.go -destination=mocks/forge.gen.go -package=mocks

// Topic marks repositories that publish tackle hook packages.
const Topic = "tackle-hooks"

// PackageInfo describes a published hook package repository.
type PackageInfo struct {
	// Identifier is the canonical host/owner/repo.
	Identifier  string
	Description string
	Stars       int
	URL         string
	Topics      []string
	UpdatedAt   time.Time
}

// Forge interface defines the methods that all forge implementations must provide.
type Forge interface {
	// Name returns the name of the forge.
	Name() string

	// Host returns the domain the forge serves packages from.
	Host() string

	// SearchPackages lists repositories tagged with Topic that match query.
	SearchPackages(ctx context.Context, query string, limit int) ([]PackageInfo, error)

	// GetPackage fetches the repository metadata of a package.
	GetPackage(ctx context.Context, id identifier.ID) (*PackageInfo, error)
}

// ManagerInterface defines the interface for forge management.
type ManagerInterface interface {
	// GetForge returns the forge implementation for the given name.
	GetForge(name string) (Forge, error)
	// GetForgeForPackage returns the forge hosting the given package.
	GetForgeForPackage(id identifier.ID) (Forge, error)
}

// Manager manages forge implementations and provides a unified interface.
type Manager struct {
	forges map[string]Forge
	logger logger.Logger
}

// NewManager creates a new forge manager with the given forges, or the
// default GitHub forge when none is passed.
func NewManager(log logger.Logger, forges ...Forge) *Manager {
	if log == nil {
		log = logger.NewNoopLogger()
	}

	m := &Manager{
		forges: make(map[string]Forge),
		logger: log,
	}

	if len(forges) == 0 {
		forges = []Forge{NewGitHub(GitHubOptions{})}
	}
	for _, f := range forges {
		m.forges[f.Name()] = f
	}

	return m
}

// GetForge returns the forge implementation for the given name.
func (m *Manager) GetForge(name string) (Forge, error) {
	forge, exists := m.forges[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, name)
	}
	return forge, nil
}

// GetForgeForPackage returns the forge hosting the given package.
func (m *Manager) GetForgeForPackage(id identifier.ID) (Forge, error) {
	host := id.Host()
	for _, forge := range m.forges {
		if forge.Host() == host {
			return forge, nil
		}
	}
	m.logger.Debugf("No forge serves %s", host)
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedForge, host)
}
