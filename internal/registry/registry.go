package registry

import (
	"fmt"
	"log/slog"

	"github.com/vk/devforge/internal/platform"
)

// Catalog is the interface that all compiled-in package catalogs must
// implement to be registered.
type Catalog interface {
	Register(r *Registry)
}

// Kind classifies a registered package.
type Kind string

const (
	// KindTool is a package installed into development shells.
	KindTool Kind = "tool"
	// KindBuilder is a build helper invoked to construct a derivation.
	KindBuilder Kind = "builder"
)

// RegisteredPackage describes one package a catalog provides to the
// package index. A nil Platforms slice means the package is available for
// every supported platform.
type RegisteredPackage struct {
	Name        string
	Version     string
	Description string
	Kind        Kind
	Platforms   []platform.Platform
}

// Registry holds the materialized package index for a single application
// instance: every package the compiled-in catalogs can supply, keyed by
// name.
type Registry struct {
	PackageRegistry map[string]*RegisteredPackage
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		PackageRegistry: make(map[string]*RegisteredPackage),
	}
}

// RegisterPackage adds a package to the index. Registering the same name
// twice is a programmer error in a catalog, so it panics.
func (r *Registry) RegisterPackage(pkg *RegisteredPackage) {
	if _, exists := r.PackageRegistry[pkg.Name]; exists {
		panic(fmt.Sprintf("package with name '%s' already registered", pkg.Name))
	}
	slog.Debug("Registering package.", "name", pkg.Name, "kind", pkg.Kind)
	r.PackageRegistry[pkg.Name] = pkg
}

// Supports reports whether the registered package is available for the
// given platform.
func (p *RegisteredPackage) Supports(system platform.Platform) bool {
	if p.Platforms == nil {
		return true
	}
	for _, candidate := range p.Platforms {
		if candidate == system {
			return true
		}
	}
	return false
}
