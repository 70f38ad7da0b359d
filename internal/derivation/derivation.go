package derivation

import (
	"github.com/vk/devforge/internal/index"
	"github.com/vk/devforge/internal/platform"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Derivation is the declarative build description handed to the external
// build engine. It is always fully specified: the builder has been
// resolved to a concrete package handle and the source location is fixed.
type Derivation struct {
	Name    string
	System  platform.Platform
	Src     string
	Builder *index.Package
	Env     map[string]string
}

// Value renders the derivation as a cty object, the common currency for
// serialization towards the external build engine.
func (d *Derivation) Value() cty.Value {
	builder := cty.ObjectVal(map[string]cty.Value{
		"name":    cty.StringVal(d.Builder.Name),
		"version": cty.StringVal(d.Builder.Version),
	})

	env := cty.MapValEmpty(cty.String)
	if len(d.Env) > 0 {
		vals := make(map[string]cty.Value, len(d.Env))
		for k, v := range d.Env {
			vals[k] = cty.StringVal(v)
		}
		env = cty.MapVal(vals)
	}

	return cty.ObjectVal(map[string]cty.Value{
		"name":    cty.StringVal(d.Name),
		"system":  cty.StringVal(string(d.System)),
		"src":     cty.StringVal(d.Src),
		"builder": builder,
		"env":     env,
	})
}

// JSON serializes the derivation for consumption by the external build
// engine.
func (d *Derivation) JSON() ([]byte, error) {
	v := d.Value()
	return ctyjson.Marshal(v, v.Type())
}
