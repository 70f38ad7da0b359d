package devshell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/devforge/internal/cfgerr"
	"github.com/vk/devforge/internal/config"
	"github.com/vk/devforge/internal/index"
	"github.com/vk/devforge/internal/platform"
	"github.com/vk/devforge/internal/registry"
)

var allTools = []string{"compiler", "manifest-editor", "language-server", "formatter"}

func testContext(t *testing.T, omit string) *index.Context {
	t.Helper()
	r := registry.New()
	for _, name := range []string{"rust-toolchain", "cargo-edit", "rust-analyzer", "rustfmt"} {
		if name == omit {
			continue
		}
		r.RegisterPackage(&registry.RegisteredPackage{Name: name, Kind: registry.KindTool})
	}
	return index.New(r).Context(platform.X8664Linux)
}

func TestCompose(t *testing.T) {
	desc, err := Compose(testContext(t, ""), &config.DevShellDefinition{Tools: allTools})
	require.NoError(t, err)

	assert.Equal(t, platform.X8664Linux, desc.System)
	require.Len(t, desc.Tools, 4)

	names := make(map[string]struct{}, len(desc.Tools))
	for _, tool := range desc.Tools {
		names[tool.Name] = struct{}{}
		assert.Equal(t, platform.X8664Linux, tool.System)
	}
	for _, want := range []string{"rust-toolchain", "cargo-edit", "rust-analyzer", "rustfmt"} {
		assert.Contains(t, names, want)
	}
}

func TestCompose_UnknownRole(t *testing.T) {
	desc, err := Compose(testContext(t, ""), &config.DevShellDefinition{Tools: []string{"compiler", "debugger"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, cfgerr.ErrUnresolvedReference)
	assert.Contains(t, err.Error(), `"debugger"`)
	assert.Nil(t, desc)
}

func TestCompose_MissingToolPackage(t *testing.T) {
	desc, err := Compose(testContext(t, "rust-analyzer"), &config.DevShellDefinition{Tools: allTools})
	require.Error(t, err)
	assert.ErrorIs(t, err, cfgerr.ErrUnresolvedReference)
	assert.Nil(t, desc, "no partial descriptor may be returned")
}

func TestRoles_CoversTheRecognizedSet(t *testing.T) {
	roles := Roles()
	require.Len(t, roles, 4)
	for _, role := range allTools {
		assert.Contains(t, roles, role)
	}

	// Mutating the copy must not affect the package's own mapping.
	roles["compiler"] = "tampered"
	assert.Equal(t, "rust-toolchain", Roles()["compiler"])
}
