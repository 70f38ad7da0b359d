package overlay

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/devforge/internal/cfgerr"
	"github.com/vk/devforge/internal/config"
	"github.com/vk/devforge/internal/index"
	"github.com/vk/devforge/internal/platform"
	"github.com/vk/devforge/internal/registry"
)

func testIndex() *index.Index {
	r := registry.New()
	r.RegisterPackage(&registry.RegisteredPackage{
		Name:    "cargo-builder",
		Version: "0.4.1",
		Kind:    registry.KindBuilder,
	})
	return index.New(r)
}

func TestPublish(t *testing.T) {
	name, fn := Publish(
		&config.OverlayDefinition{Name: "devforge"},
		&config.PackageDefinition{Name: "default", Src: ".", Builder: "cargo-builder"},
	)
	assert.Equal(t, "devforge", name)

	entries, err := fn(testIndex().Context(platform.X8664Linux))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	drv, ok := entries["devforge"]
	require.True(t, ok)
	assert.Equal(t, ".", drv.Src)
	assert.Equal(t, platform.X8664Linux, drv.System)
}

func TestPublish_IsReferentiallyTransparent(t *testing.T) {
	_, fn := Publish(
		&config.OverlayDefinition{Name: "devforge"},
		&config.PackageDefinition{Name: "default", Src: ".", Builder: "cargo-builder"},
	)

	idx := testIndex()
	first, err := fn(idx.Context(platform.Aarch64Linux))
	require.NoError(t, err)
	second, err := fn(idx.Context(platform.Aarch64Linux))
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("equivalent contexts produced different derivations (-first +second):\n%s", diff)
	}
}

func TestPublish_AcceptsExternalContexts(t *testing.T) {
	// A context built by an external configuration, not by this one's
	// platform enumeration, yields an equivalent derivation.
	_, fn := Publish(
		&config.OverlayDefinition{Name: "devforge"},
		&config.PackageDefinition{Name: "default", Src: ".", Builder: "cargo-builder"},
	)

	external := testIndex().Context(platform.X8664Darwin)
	entries, err := fn(external)
	require.NoError(t, err)
	assert.Equal(t, platform.X8664Darwin, entries["devforge"].System)
}

func TestPublish_PropagatesBuilderErrors(t *testing.T) {
	_, fn := Publish(
		&config.OverlayDefinition{Name: "devforge"},
		&config.PackageDefinition{Name: "default", Builder: "ghc-builder"},
	)

	entries, err := fn(testIndex().Context(platform.X8664Linux))
	require.Error(t, err)
	assert.ErrorIs(t, err, cfgerr.ErrUnresolvedReference)
	assert.Nil(t, entries)
}
