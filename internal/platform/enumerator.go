package platform

import (
	"fmt"
	"iter"

	"github.com/vk/devforge/internal/cfgerr"
)

// Enumerator produces the finite, restartable sequence of platforms the
// configuration is evaluated for. It holds no mutable state, so the same
// enumeration can be iterated independently by every downstream consumer.
type Enumerator struct {
	platforms []Platform
}

// NewEnumerator builds an Enumerator over the supported platform set,
// optionally restricted to a subset. Requesting a platform outside the
// supported set is an ErrUnsupportedPlatform configuration error.
func NewEnumerator(restrict []string) (*Enumerator, error) {
	if len(restrict) == 0 {
		return &Enumerator{platforms: Supported()}, nil
	}

	seen := make(map[Platform]struct{}, len(supported))
	for _, p := range supported {
		seen[p] = struct{}{}
	}

	var platforms []Platform
	for _, name := range restrict {
		p := Platform(name)
		if _, ok := seen[p]; !ok {
			return nil, fmt.Errorf("%w: %q", cfgerr.ErrUnsupportedPlatform, name)
		}
		platforms = append(platforms, p)
	}
	return &Enumerator{platforms: platforms}, nil
}

// All returns the lazy platform sequence. Each call yields a fresh,
// independent iteration over the same enumeration.
func (e *Enumerator) All() iter.Seq[Platform] {
	return func(yield func(Platform) bool) {
		for _, p := range e.platforms {
			if !yield(p) {
				return
			}
		}
	}
}

// Len returns the number of platforms in the enumeration.
func (e *Enumerator) Len() int {
	return len(e.platforms)
}

// Contains reports whether p is part of the enumeration.
func (e *Enumerator) Contains(p Platform) bool {
	for _, candidate := range e.platforms {
		if candidate == p {
			return true
		}
	}
	return false
}

// Resolve validates a requested platform name against the enumeration and
// returns its identifier, or ErrUnsupportedPlatform.
func (e *Enumerator) Resolve(name string) (Platform, error) {
	p := Platform(name)
	if !e.Contains(p) {
		return "", fmt.Errorf("%w: %q", cfgerr.ErrUnsupportedPlatform, name)
	}
	return p, nil
}
