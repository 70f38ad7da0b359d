// Package index provides the platform-bound view of the package index.
//
// An Index wraps the registry; a Context binds it to one target platform
// and resolves name lookups into platform-instantiated package handles.
// Contexts are cheap, independent values with no shared mutable state, so
// constructing one twice for the same platform yields equivalent handles.
package index

import (
	"fmt"

	"github.com/vk/devforge/internal/cfgerr"
	"github.com/vk/devforge/internal/platform"
	"github.com/vk/devforge/internal/registry"
)

// Index is the platform-agnostic package index.
type Index struct {
	reg *registry.Registry
}

// New creates an Index backed by the given registry.
func New(reg *registry.Registry) *Index {
	return &Index{reg: reg}
}

// Context returns the instantiation context for the given platform.
func (i *Index) Context(system platform.Platform) *Context {
	return &Context{system: system, reg: i.reg}
}

// Context is a platform-bound handle to the package index, used to look up
// and configure builder helpers and tool packages.
type Context struct {
	system platform.Platform
	reg    *registry.Registry
}

// System returns the platform this context is bound to.
func (c *Context) System() platform.Platform {
	return c.system
}

// Package is a package handle instantiated for one platform.
type Package struct {
	Name    string            `json:"name"`
	Version string            `json:"version"`
	Kind    registry.Kind     `json:"kind"`
	System  platform.Platform `json:"system"`
}

// Lookup resolves a package name into a handle for this context's
// platform. A name absent from the index, or present but unavailable for
// the platform, is an ErrUnresolvedReference configuration error.
func (c *Context) Lookup(name string) (*Package, error) {
	pkg, ok := c.reg.PackageRegistry[name]
	if !ok {
		return nil, fmt.Errorf("%w: package %q", cfgerr.ErrUnresolvedReference, name)
	}
	if !pkg.Supports(c.system) {
		return nil, fmt.Errorf("%w: package %q is not available for %s", cfgerr.ErrUnresolvedReference, name, c.system)
	}
	return &Package{
		Name:    pkg.Name,
		Version: pkg.Version,
		Kind:    pkg.Kind,
		System:  c.system,
	}, nil
}
