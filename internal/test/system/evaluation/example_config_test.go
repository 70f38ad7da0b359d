package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/devforge/internal/testutil"
)

// Test for: the documented example configuration, follows pin included,
// starts cleanly. The pinned sub-dependency must be declared in the
// input's dependencies attribute.
func TestEvaluation_ExampleConfigurationStartsCleanly(t *testing.T) {
	// --- Arrange ---
	// The example shipped as devforge.hcl, verbatim.
	files := map[string]string{
		"devforge.hcl": `
			input "pkgindex" {
				source = "forge.example.org/pkgindex/stable"
			}

			input "platformset" {
				source = "forge.example.org/platformset/default"
			}

			input "builder" {
				source       = "forge.example.org/cargo-builder/main"
				dependencies = ["pkgindex"]

				follows "pkgindex" {
					target = "pkgindex"
				}
			}

			package {
				src     = "."
				builder = "cargo-builder"
			}

			devshell {
				tools = ["compiler", "manifest-editor", "language-server", "formatter"]
			}

			overlay "devforge" {}
		`,
	}

	// --- Act ---
	result := testutil.RunHarness(t, files, nil)

	// --- Assert ---
	require.NoError(t, result.Err)
	require.NotNil(t, result.App)

	resolved := result.App.Inputs()
	require.Len(t, resolved, 3)
	builder := resolved["builder"]
	require.NotNil(t, builder)
	assert.Same(t, resolved["pkgindex"], builder.Deps["pkgindex"],
		"the builder's pinned sub-dependency must resolve through the declared pkgindex input")
}
