package schema

import "github.com/hashicorp/hcl/v2"

// --- Input Blocks ---

// Follows represents a `follows` block within an input: a pin directive
// redirecting one of the input's own sub-dependencies to another declared
// input.
type Follows struct {
	Dependency string `hcl:"dependency,label"`
	Target     string `hcl:"target"`
}

// Input represents an `input` block: a named external source together with
// its declared sub-dependencies and pin directives.
type Input struct {
	Name         string     `hcl:"name,label"`
	Source       string     `hcl:"source"`
	Dependencies []string   `hcl:"dependencies,optional"`
	Follows      []*Follows `hcl:"follows,block"`
}

// --- Output Blocks ---

// Package represents the `package` block: the build description for the
// project's own source tree.
type Package struct {
	Name    string            `hcl:"name,optional"`
	Src     string            `hcl:"src,optional"`
	Builder string            `hcl:"builder"`
	Env     map[string]string `hcl:"env,optional"`
}

// DevShell represents the `devshell` block: the tool roles required in the
// interactive development environment.
type DevShell struct {
	Tools []string `hcl:"tools"`
}

// Overlay represents an `overlay` block: the name under which the package
// derivation is exposed to external configurations.
type Overlay struct {
	Name string `hcl:"name,label"`
}

// Root represents the top-level structure of a forge configuration file.
// Any block may appear in any file; files are merged during loading.
type Root struct {
	Platforms []string   `hcl:"platforms,optional"`
	Inputs    []*Input   `hcl:"input,block"`
	Package   *Package   `hcl:"package,block"`
	DevShell  *DevShell  `hcl:"devshell,block"`
	Overlays  []*Overlay `hcl:"overlay,block"`
	Remain    hcl.Body   `hcl:",remain"`
}
