package registry

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/devforge/internal/cfgerr"
	"github.com/vk/devforge/internal/config"
	"github.com/vk/devforge/internal/ctxlog"
	"github.com/vk/devforge/internal/platform"
)

// Validate performs the eager parity check between the loaded configuration
// model and the materialized package index, so that every unresolved
// reference surfaces at startup rather than at first use. The roles map
// carries the recognized devshell tool roles and the package each resolves
// to.
func (r *Registry) Validate(ctx context.Context, model *config.Model, enum *platform.Enumerator, roles map[string]string) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	if model.Package == nil {
		errs = append(errs, "configuration must declare a package block")
	}
	if model.DevShell == nil {
		errs = append(errs, "configuration must declare a devshell block")
	}
	if model.Overlay == nil {
		errs = append(errs, "configuration must declare an overlay block")
	}

	if model.Package != nil {
		pkg, ok := r.PackageRegistry[model.Package.Builder]
		switch {
		case !ok:
			errs = append(errs, fmt.Sprintf("package: builder %q is not present in the package index", model.Package.Builder))
		case pkg.Kind != KindBuilder:
			errs = append(errs, fmt.Sprintf("package: %q is a %s package, not a builder helper", model.Package.Builder, pkg.Kind))
		default:
			for p := range enum.All() {
				if !pkg.Supports(p) {
					errs = append(errs, fmt.Sprintf("package: builder %q is not available for %s", model.Package.Builder, p))
				}
			}
		}
	}

	if model.DevShell != nil {
		for _, role := range model.DevShell.Tools {
			name, ok := roles[role]
			if !ok {
				errs = append(errs, fmt.Sprintf("devshell: %q is not a recognized tool role", role))
				continue
			}
			pkg, ok := r.PackageRegistry[name]
			if !ok {
				errs = append(errs, fmt.Sprintf("devshell: tool package %q for role %q is not present in the package index", name, role))
				continue
			}
			for p := range enum.All() {
				if !pkg.Supports(p) {
					errs = append(errs, fmt.Sprintf("devshell: tool package %q is not available for %s", name, p))
				}
			}
		}
	}

	if len(errs) > 0 {
		sort.Strings(errs)
		logger.Debug("Registry validation failed.", "error_count", len(errs))
		return fmt.Errorf("%w: registry validation failed:\n- %s",
			cfgerr.ErrUnresolvedReference, strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validation passed.")
	return nil
}
