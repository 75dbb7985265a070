// Package fversion models the three-component format versions that identify
// which schema generation a resource description was authored against, and the
// registry of released versions per resource type.
package fversion

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Version is a major.minor.patch triple with numeric ordering.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64
}

// Parse accepts a strict three-component version string. Pre-release and build
// metadata are rejected; format versions are plain triples.
func Parse(s string) (Version, error) {
	v, err := semver.StrictNewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("fversion: %q is not a version triple: %w", s, err)
	}
	if v.Prerelease() != "" || v.Metadata() != "" {
		return Version{}, fmt.Errorf("fversion: %q carries pre-release or build metadata", s)
	}
	return Version{Major: v.Major(), Minor: v.Minor(), Patch: v.Patch()}, nil
}

// MustParse is Parse for static version literals.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Series is the major.minor key a version belongs to.
func (v Version) Series() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// Compare orders versions by numeric triple: -1, 0 or +1.
func (v Version) Compare(o Version) int {
	a := semver.New(v.Major, v.Minor, v.Patch, "", "")
	b := semver.New(o.Major, o.Minor, o.Patch, "", "")
	return a.Compare(b)
}

func (v Version) Less(o Version) bool { return v.Compare(o) < 0 }
