package rdspec

import "github.com/modelhub/rdspec/fversion"

// SupportedFormatVersions enumerates every format version the installed
// schema set can validate per resource type, including versions reachable
// only through the migration chain.
func SupportedFormatVersions() map[string][]string {
	return fversion.Supported()
}
