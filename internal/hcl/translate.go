package hcl

import (
	"fmt"

	"github.com/vk/devforge/internal/config"
	"github.com/vk/devforge/internal/schema"
)

// merge translates every block decoded from one file into the agnostic
// model. Singleton blocks (package, devshell, overlay, platforms) may only
// appear once across all files.
func (l *Loader) merge(model *config.Model, root *schema.Root, file string) error {
	for _, in := range root.Inputs {
		if _, exists := model.Inputs[in.Name]; exists {
			return fmt.Errorf("input %q redeclared in %s", in.Name, file)
		}
		def, err := l.translateInput(in, file)
		if err != nil {
			return err
		}
		model.Inputs[def.Name] = def
	}

	if root.Package != nil {
		if model.Package != nil {
			return fmt.Errorf("package block redeclared in %s", file)
		}
		model.Package = l.translatePackage(root.Package)
	}

	if root.DevShell != nil {
		if model.DevShell != nil {
			return fmt.Errorf("devshell block redeclared in %s", file)
		}
		model.DevShell = &config.DevShellDefinition{Tools: root.DevShell.Tools}
	}

	for _, ov := range root.Overlays {
		if model.Overlay != nil {
			return fmt.Errorf("overlay %q redeclared in %s: the overlay entry must be present exactly once", ov.Name, file)
		}
		model.Overlay = &config.OverlayDefinition{Name: ov.Name}
	}

	if len(root.Platforms) > 0 {
		if model.Platforms != nil {
			return fmt.Errorf("platforms attribute redeclared in %s", file)
		}
		model.Platforms = root.Platforms
	}

	return nil
}

// translateInput converts the HCL-specific input schema into the agnostic
// model, flattening the follows blocks into a pin map.
func (l *Loader) translateInput(in *schema.Input, file string) (*config.InputDefinition, error) {
	def := &config.InputDefinition{
		Name:         in.Name,
		Source:       in.Source,
		Dependencies: in.Dependencies,
		Follows:      make(map[string]string),
	}
	for _, f := range in.Follows {
		if _, exists := def.Follows[f.Dependency]; exists {
			return nil, fmt.Errorf("input %q: follows %q redeclared in %s", in.Name, f.Dependency, file)
		}
		def.Follows[f.Dependency] = f.Target
	}
	return def, nil
}

// translatePackage converts the HCL-specific package schema into the
// agnostic model, applying the defaults for omitted attributes.
func (l *Loader) translatePackage(p *schema.Package) *config.PackageDefinition {
	def := &config.PackageDefinition{
		Name:    p.Name,
		Src:     p.Src,
		Builder: p.Builder,
		Env:     p.Env,
	}
	if def.Name == "" {
		def.Name = config.DefaultPackageName
	}
	if def.Src == "" {
		def.Src = config.DefaultSrc
	}
	return def
}
