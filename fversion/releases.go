package fversion

import "sort"

// Resource type names with their own version lineage.
const (
	TypeModel      = "model"
	TypeDataset    = "dataset"
	TypeCollection = "collection"
	TypeGeneric    = "generic"
)

// releases enumerates every format version the installed schema set can
// validate, including versions reachable only through migration. Populated
// once at init and read-only afterwards.
var releases = map[string][]Version{}

func register(typ string, versions ...string) {
	vs := make([]Version, 0, len(versions))
	for _, s := range versions {
		vs = append(vs, MustParse(s))
	}
	sort.Slice(vs, func(i, j int) bool { return vs[i].Less(vs[j]) })
	releases[typ] = vs
}

func init() {
	register(TypeModel,
		"0.3.0", "0.3.1", "0.3.2", "0.3.3", "0.3.4", "0.3.5", "0.3.6",
		"0.4.0", "0.4.1", "0.4.2", "0.4.3", "0.4.4", "0.4.5", "0.4.6",
		"0.4.7", "0.4.8", "0.4.9")
	register(TypeDataset, "0.2.0", "0.2.1", "0.2.2", "0.2.3")
	register(TypeCollection, "0.2.0", "0.2.1", "0.2.2", "0.2.3")
	register(TypeGeneric, "0.2.0", "0.2.1", "0.2.2", "0.2.3")
}

// KnownType reports whether typ owns a version lineage.
func KnownType(typ string) bool {
	_, ok := releases[typ]
	return ok
}

// Releases lists the known versions of typ in ascending order.
func Releases(typ string) []Version {
	vs := releases[typ]
	out := make([]Version, len(vs))
	copy(out, vs)
	return out
}

// Latest returns the newest known version of typ.
func Latest(typ string) (Version, bool) {
	vs := releases[typ]
	if len(vs) == 0 {
		return Version{}, false
	}
	return vs[len(vs)-1], true
}

// LatestPatch returns the newest known patch of a major.minor series.
func LatestPatch(typ, series string) (Version, bool) {
	var best Version
	found := false
	for _, v := range releases[typ] {
		if v.Series() == series {
			best = v
			found = true
		}
	}
	return best, found
}

// Known reports whether the exact version is a released one for typ.
func Known(typ string, v Version) bool {
	for _, r := range releases[typ] {
		if r == v {
			return true
		}
	}
	return false
}

// Supported maps every resource type to its version strings, ascending.
func Supported() map[string][]string {
	out := make(map[string][]string, len(releases))
	for typ, vs := range releases {
		ss := make([]string, len(vs))
		for i, v := range vs {
			ss[i] = v.String()
		}
		out[typ] = ss
	}
	return out
}
