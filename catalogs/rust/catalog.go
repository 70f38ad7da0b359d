// Package rust provides the compiled-in package catalog for Rust
// projects: the toolchain and development tools the forge configuration
// can reference by name, plus the cargo builder helper.
package rust

import "github.com/vk/devforge/internal/registry"

// Catalog implements the registry.Catalog interface for this package.
type Catalog struct{}

// Register adds the Rust packages to the index. All entries are available
// for every supported platform.
func (c *Catalog) Register(r *registry.Registry) {
	r.RegisterPackage(&registry.RegisteredPackage{
		Name:        "rust-toolchain",
		Version:     "1.87.0",
		Description: "Rust compiler with cargo",
		Kind:        registry.KindTool,
	})
	r.RegisterPackage(&registry.RegisteredPackage{
		Name:        "cargo-edit",
		Version:     "0.13.2",
		Description: "Cargo subcommands for editing the dependency manifest",
		Kind:        registry.KindTool,
	})
	r.RegisterPackage(&registry.RegisteredPackage{
		Name:        "rust-analyzer",
		Version:     "2025-05-12",
		Description: "Language server for Rust",
		Kind:        registry.KindTool,
	})
	r.RegisterPackage(&registry.RegisteredPackage{
		Name:        "rustfmt",
		Version:     "1.8.0",
		Description: "Rust source formatter",
		Kind:        registry.KindTool,
	})
	r.RegisterPackage(&registry.RegisteredPackage{
		Name:        "cargo-builder",
		Version:     "0.4.1",
		Description: "Build helper producing derivations for cargo workspaces",
		Kind:        registry.KindBuilder,
	})
}
