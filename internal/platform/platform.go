package platform

import (
	"fmt"
	"runtime"

	"github.com/vk/devforge/internal/cfgerr"
)

// Platform is an opaque architecture+OS identifier, e.g. "x86_64-linux".
type Platform string

// The supported target platforms. The set is a fixed constant of the
// platform-set helper; restricting it is possible, extending it is not.
const (
	X8664Linux    Platform = "x86_64-linux"
	Aarch64Linux  Platform = "aarch64-linux"
	X8664Darwin   Platform = "x86_64-darwin"
	Aarch64Darwin Platform = "aarch64-darwin"
)

// supported is the full enumeration, in its canonical order.
var supported = []Platform{X8664Linux, Aarch64Linux, X8664Darwin, Aarch64Darwin}

// Supported returns a copy of the full supported platform enumeration.
func Supported() []Platform {
	out := make([]Platform, len(supported))
	copy(out, supported)
	return out
}

// goarchNames maps GOARCH values onto the architecture half of a Platform.
var goarchNames = map[string]string{
	"amd64": "x86_64",
	"arm64": "aarch64",
}

// Current maps the invoking host (GOOS/GOARCH) to its platform identifier.
// It returns ErrUnsupportedPlatform when the host is outside the
// supported enumeration.
func Current() (Platform, error) {
	arch, ok := goarchNames[runtime.GOARCH]
	if !ok {
		return "", fmt.Errorf("%w: host architecture %q", cfgerr.ErrUnsupportedPlatform, runtime.GOARCH)
	}

	switch runtime.GOOS {
	case "linux", "darwin":
		return Platform(arch + "-" + runtime.GOOS), nil
	default:
		return "", fmt.Errorf("%w: host operating system %q", cfgerr.ErrUnsupportedPlatform, runtime.GOOS)
	}
}
