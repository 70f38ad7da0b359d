// Package derivation defines the build description record consumed by the
// external build engine, and the pure builder that constructs one from an
// instantiation context. Actual compilation is deferred to the engine when
// the derivation is later realized.
package derivation
