package devshell

import (
	"fmt"

	"github.com/vk/devforge/internal/cfgerr"
	"github.com/vk/devforge/internal/config"
	"github.com/vk/devforge/internal/index"
	"github.com/vk/devforge/internal/platform"
)

// rolePackages maps the recognized tool roles onto the package each
// resolves to. The names are configuration constants, not computed.
var rolePackages = map[string]string{
	"compiler":        "rust-toolchain",
	"manifest-editor": "cargo-edit",
	"language-server": "rust-analyzer",
	"formatter":       "rustfmt",
}

// Roles returns a copy of the recognized tool role mapping.
func Roles() map[string]string {
	out := make(map[string]string, len(rolePackages))
	for role, name := range rolePackages {
		out[role] = name
	}
	return out
}

// Descriptor lists the tool packages required in the interactive
// development shell for one platform. Consumers must not rely on any
// ordering among the tools; the declared order is preserved for
// readability only.
type Descriptor struct {
	System platform.Platform `json:"system"`
	Tools  []*index.Package  `json:"tools"`
}

// Compose resolves the configured tool roles against one instantiation
// context. Any unrecognized role, and any tool package absent from the
// index for the context's platform, is an ErrUnresolvedReference error;
// a descriptor with fewer than the full tool set is never returned.
func Compose(ictx *index.Context, def *config.DevShellDefinition) (*Descriptor, error) {
	tools := make([]*index.Package, 0, len(def.Tools))
	for _, role := range def.Tools {
		name, ok := rolePackages[role]
		if !ok {
			return nil, fmt.Errorf("%w: %q is not a recognized tool role", cfgerr.ErrUnresolvedReference, role)
		}
		pkg, err := ictx.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("resolving tool for role %q: %w", role, err)
		}
		tools = append(tools, pkg)
	}
	return &Descriptor{System: ictx.System(), Tools: tools}, nil
}
