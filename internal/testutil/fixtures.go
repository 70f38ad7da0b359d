package testutil

import "github.com/vk/devforge/internal/registry"

// BaseConfig returns a minimal, valid forge configuration: the three
// standard inputs with the builder's index dependency pinned, the package
// block, the full devshell tool set, and the overlay entry.
func BaseConfig() map[string]string {
	return map[string]string{
		"devforge.hcl": `
			input "pkgindex" {
				source = "forge.example.org/pkgindex/stable"
			}

			input "platformset" {
				source = "forge.example.org/platformset/default"
			}

			input "builder" {
				source       = "forge.example.org/cargo-builder/main"
				dependencies = ["pkgindex"]

				follows "pkgindex" {
					target = "pkgindex"
				}
			}

			package {
				builder = "cargo-builder"
			}

			devshell {
				tools = ["compiler", "manifest-editor", "language-server", "formatter"]
			}

			overlay "devforge" {}
		`,
	}
}

// Catalog is a configurable catalog for tests that need a package index
// with specific contents, such as a missing builder or a platform-limited
// tool.
type Catalog struct {
	Packages []*registry.RegisteredPackage
}

// Register registers every configured package.
func (c *Catalog) Register(r *registry.Registry) {
	for _, pkg := range c.Packages {
		r.RegisterPackage(pkg)
	}
}
