package platform

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/devforge/internal/cfgerr"
)

func TestNewEnumerator_FullSet(t *testing.T) {
	enum, err := NewEnumerator(nil)
	require.NoError(t, err)

	assert.Equal(t, len(Supported()), enum.Len())
	for _, p := range Supported() {
		assert.True(t, enum.Contains(p))
	}
}

func TestNewEnumerator_Restricted(t *testing.T) {
	enum, err := NewEnumerator([]string{"x86_64-linux", "aarch64-darwin"})
	require.NoError(t, err)

	assert.Equal(t, 2, enum.Len())
	assert.True(t, enum.Contains(X8664Linux))
	assert.True(t, enum.Contains(Aarch64Darwin))
	assert.False(t, enum.Contains(X8664Darwin))
}

func TestNewEnumerator_UnsupportedPlatform(t *testing.T) {
	_, err := NewEnumerator([]string{"x86_64-linux", "riscv64-linux"})
	require.Error(t, err)
	assert.ErrorIs(t, err, cfgerr.ErrUnsupportedPlatform)
	assert.Contains(t, err.Error(), "riscv64-linux")
}

func TestEnumerator_AllIsRestartable(t *testing.T) {
	enum, err := NewEnumerator(nil)
	require.NoError(t, err)

	collect := func() []Platform {
		var out []Platform
		for p := range enum.All() {
			out = append(out, p)
		}
		return out
	}

	// Two independent consumers see the same enumeration.
	first := collect()
	second := collect()
	assert.Equal(t, first, second)
	assert.Len(t, first, enum.Len())

	// An aborted iteration does not affect later ones.
	for range enum.All() {
		break
	}
	assert.Equal(t, first, collect())
}

func TestEnumerator_Resolve(t *testing.T) {
	enum, err := NewEnumerator(nil)
	require.NoError(t, err)

	p, err := enum.Resolve("x86_64-linux")
	require.NoError(t, err)
	assert.Equal(t, X8664Linux, p)

	_, err = enum.Resolve("riscv64-linux")
	require.Error(t, err)
	assert.ErrorIs(t, err, cfgerr.ErrUnsupportedPlatform)
}

func TestCurrent(t *testing.T) {
	arch, archOK := map[string]string{"amd64": "x86_64", "arm64": "aarch64"}[runtime.GOARCH]
	osOK := runtime.GOOS == "linux" || runtime.GOOS == "darwin"

	current, err := Current()
	if archOK && osOK {
		require.NoError(t, err)
		assert.Equal(t, Platform(arch+"-"+runtime.GOOS), current)
	} else {
		require.Error(t, err)
		assert.ErrorIs(t, err, cfgerr.ErrUnsupportedPlatform)
	}
}
