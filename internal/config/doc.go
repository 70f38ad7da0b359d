// Package config defines the format-agnostic configuration model for the
// forge, along with the Loader interface for reading it from various
// sources.
//
// The `config.Model` is the single source of truth for input resolution,
// derivation building, and devshell composition. Concrete loader
// implementations, such as for HCL, are provided in separate packages.
package config
