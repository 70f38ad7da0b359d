package app

import (
	"github.com/vk/devforge/catalogs/rust"
	"github.com/vk/devforge/internal/registry"
)

// coreCatalogs is the definitive list of all package catalogs that are
// compiled into the devforge binary.
var coreCatalogs = []registry.Catalog{
	&rust.Catalog{},
}
