package system

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/devforge/internal/platform"
	"github.com/vk/devforge/internal/testutil"
)

// Test for: the default package derivation of a supported platform.
func TestEvaluation_DefaultPackage(t *testing.T) {
	// --- Arrange ---
	result := testutil.RunHarness(t, testutil.BaseConfig(), nil)
	require.NoError(t, result.Err)

	// --- Act ---
	set, err := result.App.Eval(context.Background(), 4)
	require.NoError(t, err)

	// --- Assert ---
	res, ok := set.Platforms[platform.X8664Linux]
	require.True(t, ok, "x86_64-linux must be present in the output set")

	drv := res.Package
	assert.Equal(t, "default", drv.Name)
	assert.Equal(t, ".", drv.Src, "the source location is the fixed relative path")
	assert.Equal(t, platform.X8664Linux, drv.System)
	assert.Equal(t, "cargo-builder", drv.Builder.Name)
}
