package rdspec

import (
	"github.com/modelhub/rdspec/fversion"
)

type registryKey struct {
	Type   string
	Series string
}

// schemaRegistry maps (resource type, major.minor series) to a descriptor.
// Populated at init, read-only afterwards; a tagged strategy table, not a
// type hierarchy.
var schemaRegistry = map[registryKey]*Descriptor{}

// RegisterSchema installs a descriptor under its type and version series.
func RegisterSchema(d *Descriptor) {
	schemaRegistry[registryKey{Type: d.Type, Series: d.Version.Series()}] = d
}

// LookupSchema resolves a descriptor with the documented fallback order:
// exact (type, series) match, then the latest series of the type, then the
// generic type at its latest version.
func LookupSchema(typ, series string) (*Descriptor, bool) {
	if d, ok := schemaRegistry[registryKey{Type: typ, Series: series}]; ok {
		return d, true
	}
	if latest, ok := fversion.Latest(typ); ok {
		if d, ok := schemaRegistry[registryKey{Type: typ, Series: latest.Series()}]; ok {
			return d, true
		}
	}
	if latest, ok := fversion.Latest(fversion.TypeGeneric); ok {
		if d, ok := schemaRegistry[registryKey{Type: fversion.TypeGeneric, Series: latest.Series()}]; ok {
			return d, false
		}
	}
	return nil, false
}
