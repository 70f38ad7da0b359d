// Package cfgerr defines the sentinel errors of the configuration error
// taxonomy. Callers wrap them with fmt.Errorf("%w: ...") so that the
// offending name travels with the error and errors.Is still matches.
package cfgerr

import "errors"

// ErrUnresolvedReference indicates that a pin, lookup, or tool name refers
// to a name absent from the relevant registry or index.
var ErrUnresolvedReference = errors.New("unresolved reference")

// ErrUnsupportedPlatform indicates that a requested platform is not part of
// the supported enumeration.
var ErrUnsupportedPlatform = errors.New("unsupported platform")
