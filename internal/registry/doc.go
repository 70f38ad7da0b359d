// Package registry provides the materialized package index.
//
// The Registry stores mappings between the string identifiers used in
// forge configurations (builder helpers, devshell tool packages) and the
// package descriptions the compiled-in catalogs supply for them.
//
// During application startup, the registry is populated by the catalogs
// and then validated against the loaded configuration model, so that every
// name the configuration references is known to resolve before any
// derivation or shell descriptor is constructed.
package registry
