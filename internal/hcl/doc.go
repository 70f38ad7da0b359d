// Package hcl implements the config.Loader interface for HCL forge
// configuration files. It discovers .hcl files, decodes them against the
// schema package, and translates the result into the format-agnostic
// config model.
package hcl
