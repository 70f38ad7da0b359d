package inputs

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vk/devforge/internal/cfgerr"
	"github.com/vk/devforge/internal/config"
)

// Source is a materialized external source. Its Deps map carries one entry
// per declared sub-dependency: nil when the source resolves the dependency
// itself, or a pointer to another declared Source when a pin redirects it.
type Source struct {
	Name    string
	Locator string
	Deps    map[string]*Source
}

// Resolved is the fully-materialized input set, keyed by input name.
// It is fixed at resolution time and never mutated afterwards.
type Resolved map[string]*Source

// Resolve materializes the declared inputs and applies every pin
// directive, guaranteeing that a pinned sub-dependency resolves through
// the designated target's source. A pin referencing an undeclared input or
// an undeclared sub-dependency name is an ErrUnresolvedReference
// configuration error; all such errors are reported together.
func Resolve(defs map[string]*config.InputDefinition) (Resolved, error) {
	resolved := make(Resolved, len(defs))
	for name, def := range defs {
		src := &Source{
			Name:    name,
			Locator: def.Source,
			Deps:    make(map[string]*Source, len(def.Dependencies)),
		}
		for _, dep := range def.Dependencies {
			src.Deps[dep] = nil
		}
		resolved[name] = src
	}

	// Sorted iteration keeps the error report stable across runs.
	names := make([]string, 0, len(defs))
	for name := range defs {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		def := defs[name]
		src := resolved[name]

		deps := make([]string, 0, len(def.Follows))
		for dep := range def.Follows {
			deps = append(deps, dep)
		}
		sort.Strings(deps)

		for _, dep := range deps {
			target := def.Follows[dep]
			if _, declared := src.Deps[dep]; !declared {
				errs = append(errs, fmt.Errorf("%w: input %q pins sub-dependency %q, which it does not declare",
					cfgerr.ErrUnresolvedReference, name, dep))
				continue
			}
			targetSrc, ok := resolved[target]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: input %q pins %q to undeclared input %q",
					cfgerr.ErrUnresolvedReference, name, dep, target))
				continue
			}
			src.Deps[dep] = targetSrc
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return resolved, nil
}
