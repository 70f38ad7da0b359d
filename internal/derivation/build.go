package derivation

import (
	"fmt"

	"github.com/vk/devforge/internal/cfgerr"
	"github.com/vk/devforge/internal/config"
	"github.com/vk/devforge/internal/index"
	"github.com/vk/devforge/internal/registry"
)

// Build constructs the package derivation for one instantiation context.
// It is a pure function: the builder helper is looked up in the context's
// package index (ErrUnresolvedReference if absent) and invoked with the
// fixed source location. No partial derivation is ever returned.
func Build(ictx *index.Context, pkg *config.PackageDefinition) (*Derivation, error) {
	builder, err := ictx.Lookup(pkg.Builder)
	if err != nil {
		return nil, fmt.Errorf("resolving builder helper: %w", err)
	}
	if builder.Kind != registry.KindBuilder {
		return nil, fmt.Errorf("%w: package %q is a %s package, not a builder helper",
			cfgerr.ErrUnresolvedReference, pkg.Builder, builder.Kind)
	}

	src := pkg.Src
	if src == "" {
		src = config.DefaultSrc
	}
	name := pkg.Name
	if name == "" {
		name = config.DefaultPackageName
	}

	return &Derivation{
		Name:    name,
		System:  ictx.System(),
		Src:     src,
		Builder: builder,
		Env:     pkg.Env,
	}, nil
}
