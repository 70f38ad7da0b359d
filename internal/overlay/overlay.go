// Package overlay publishes the package derivation as a named, reusable
// extension function. External configurations holding a compatible
// instantiation context can obtain an equivalent derivation without their
// own copy of the builder logic.
package overlay

import (
	"github.com/vk/devforge/internal/config"
	"github.com/vk/devforge/internal/derivation"
	"github.com/vk/devforge/internal/index"
)

// Func is the platform-parametric extension function: given any compatible
// instantiation context, it returns a one-entry mapping from the overlay
// name to the package derivation built for that context. It is
// referentially transparent; failure modes are those of derivation.Build,
// propagated unchanged.
type Func func(ictx *index.Context) (map[string]*derivation.Derivation, error)

// Publish captures the package definition into the named extension
// function. The function is independent of any platform enumeration; the
// caller supplies whatever context it already holds.
func Publish(def *config.OverlayDefinition, pkg *config.PackageDefinition) (string, Func) {
	name := def.Name
	fn := func(ictx *index.Context) (map[string]*derivation.Derivation, error) {
		drv, err := derivation.Build(ictx, pkg)
		if err != nil {
			return nil, err
		}
		return map[string]*derivation.Derivation{name: drv}, nil
	}
	return name, fn
}
