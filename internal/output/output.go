package output

import (
	"encoding/json"

	"github.com/vk/devforge/internal/derivation"
	"github.com/vk/devforge/internal/devshell"
	"github.com/vk/devforge/internal/overlay"
	"github.com/vk/devforge/internal/platform"
)

// PlatformOutputs holds the default derivation and the shell descriptor
// resolved for one platform.
type PlatformOutputs struct {
	Package *derivation.Derivation
	Shell   *devshell.Descriptor
}

// Set is the final published structure: per-platform outputs keyed by
// platform, plus the single platform-independent overlay entry.
type Set struct {
	Platforms   map[platform.Platform]*PlatformOutputs
	OverlayName string
	Overlay     overlay.Func
}

// Combine assembles the final output set from the two independently
// resolved halves. Keeping per-platform resolution and overlay
// construction separate means neither depends on the other's evaluation
// order.
func Combine(perPlatform map[platform.Platform]*PlatformOutputs, name string, fn overlay.Func) *Set {
	return &Set{
		Platforms:   perPlatform,
		OverlayName: name,
		Overlay:     fn,
	}
}

// jsonPlatform carries one platform's outputs for the eval rendering.
type jsonPlatform struct {
	Package json.RawMessage      `json:"package"`
	Shell   *devshell.Descriptor `json:"shell"`
}

type jsonSet struct {
	Platforms map[string]*jsonPlatform `json:"platforms"`
	Overlays  []string                 `json:"overlays"`
}

// JSON renders the output set for external consumers. The overlay function
// itself is not serializable; it is rendered as its published name.
func (s *Set) JSON() ([]byte, error) {
	out := &jsonSet{
		Platforms: make(map[string]*jsonPlatform, len(s.Platforms)),
		Overlays:  []string{s.OverlayName},
	}
	for p, res := range s.Platforms {
		drv, err := res.Package.JSON()
		if err != nil {
			return nil, err
		}
		out.Platforms[string(p)] = &jsonPlatform{
			Package: drv,
			Shell:   res.Shell,
		}
	}
	return json.MarshalIndent(out, "", "  ")
}
