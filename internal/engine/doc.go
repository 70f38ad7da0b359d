// Package engine defines the delegation boundary to the external build
// engine that realizes derivations. This layer only declares what to
// invoke and with which parameters; downstream build failures are passed
// through verbatim.
package engine
