package constraint

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Suffix builds a constraint that checks the final dot-suffix of a path or URL
// against an allowed set. Comparison is case-folded unless caseSensitive.
// Construction fails on an empty set or on a suffix without a leading dot.
func Suffix(suffixes []string, caseSensitive bool) (Constraint, error) {
	if len(suffixes) == 0 {
		return nil, fmt.Errorf("constraint: empty suffix set")
	}
	allowed := make([]string, 0, len(suffixes))
	for _, s := range suffixes {
		if !strings.HasPrefix(s, ".") {
			return nil, fmt.Errorf("constraint: suffix %q lacks a leading dot", s)
		}
		allowed = append(allowed, s)
	}
	return suffixCheck{allowed: allowed, caseSensitive: caseSensitive}, nil
}

// MustSuffix is Suffix for static suffix sets.
func MustSuffix(caseSensitive bool, suffixes ...string) Constraint {
	c, err := Suffix(suffixes, caseSensitive)
	if err != nil {
		panic(err)
	}
	return c
}

type suffixCheck struct {
	allowed       []string
	caseSensitive bool
}

func (c suffixCheck) Validate(_ context.Context, v any) (any, error) {
	var s string
	switch t := v.(type) {
	case string:
		s = t
	case fmt.Stringer:
		s = t.String()
	default:
		return v, violation(CodeInvalidType, "expected string or path, got %T", v)
	}
	ext := pathSuffix(s)
	for _, a := range c.allowed {
		if c.caseSensitive {
			if ext == a {
				return v, nil
			}
		} else if strings.EqualFold(ext, a) {
			return v, nil
		}
	}
	return v, &Violation{
		Code:    CodeInvalidSuffix,
		Message: fmt.Sprintf("%q does not end with one of %s", s, strings.Join(c.allowed, ", ")),
		Params:  map[string]any{"suffixes": c.allowed, "got": ext},
	}
}

// pathSuffix extracts the final dot-suffix of the path component. For URLs the
// last path segment is used; query and fragment never contribute.
func pathSuffix(s string) string {
	p := s
	if u, err := url.Parse(s); err == nil && u.Scheme != "" && u.Host != "" {
		p = u.Path
	}
	base := path.Base(strings.ReplaceAll(p, "\\", "/"))
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return ""
	}
	return base[i:]
}
