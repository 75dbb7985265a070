package constraint

import (
	"context"
	"regexp"
	"strings"
)

// versionPattern follows the public version-string grammar: an optional epoch,
// dotted release segments, then optional pre/post/dev/local segments.
// Surrounding whitespace is tolerated and trimmed before matching.
var versionPattern = regexp.MustCompile(
	`(?i)^v?` +
		`(?:[0-9]+!)?` + // epoch
		`[0-9]+(?:\.[0-9]+)*` + // release
		`(?:[-_.]?(?:a|b|c|rc|alpha|beta|pre|preview)[-_.]?[0-9]*)?` + // pre
		`(?:(?:-[0-9]+)|(?:[-_.]?(?:post|rev|r)[-_.]?[0-9]*))?` + // post
		`(?:[-_.]?dev[-_.]?[0-9]*)?` + // dev
		`(?:\+[a-z0-9]+(?:[-_.][a-z0-9]+)*)?$`) // local

// VersionString checks that a value is a syntactically valid public version
// string.
func VersionString() Constraint { return versionString{} }

type versionString struct{}

func (versionString) Validate(_ context.Context, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, violation(CodeInvalidType, "expected string, got %T", v)
	}
	if !versionPattern.MatchString(strings.TrimSpace(s)) {
		return v, violation(CodeInvalidVersion, "%q is not a valid version string", s)
	}
	return s, nil
}
