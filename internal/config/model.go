package config

// Defaults applied by loaders when the `package` block omits the
// corresponding attribute.
const (
	// DefaultPackageName is the derivation name used when the package
	// block does not set one.
	DefaultPackageName = "default"

	// DefaultSrc is the fixed relative path to the package's own source
	// tree.
	DefaultSrc = "."
)

// Model is the unified, format-agnostic representation of the entire forge
// configuration: the declared inputs, the package build description, the
// development shell description, and the published overlay.
type Model struct {
	Inputs   map[string]*InputDefinition
	Package  *PackageDefinition
	DevShell *DevShellDefinition
	Overlay  *OverlayDefinition

	// Platforms optionally restricts the evaluation to a subset of the
	// supported platform enumeration. Empty means the full set.
	Platforms []string
}

// InputDefinition is the format-agnostic representation of an `input`
// block: a named reference to an external source of package or helper
// definitions, with optional pinning of its own sub-dependencies to other
// declared inputs.
type InputDefinition struct {
	Name   string
	Source string

	// Dependencies names the sub-dependencies the source resolves for
	// itself. Only a declared sub-dependency can be pinned.
	Dependencies []string

	// Follows maps a sub-dependency name to the declared input whose
	// source it must resolve through.
	Follows map[string]string
}

// PackageDefinition is the format-agnostic representation of the `package`
// block: which builder helper to invoke and against which source tree.
type PackageDefinition struct {
	Name    string
	Src     string
	Builder string
	Env     map[string]string
}

// DevShellDefinition is the format-agnostic representation of the
// `devshell` block: the tool roles that must be present in the
// interactive development environment.
type DevShellDefinition struct {
	Tools []string
}

// OverlayDefinition is the format-agnostic representation of the `overlay`
// block: the name under which the package derivation is published to
// external configurations.
type OverlayDefinition struct {
	Name string
}
