package constraint

import (
	"context"
	"regexp"
)

var orcidShape = regexp.MustCompile(`^[0-9]{4}-[0-9]{4}-[0-9]{4}-[0-9]{3}[0-9X]$`)

// Orcid validates an ORCID identifier: four hyphen-separated groups of four
// characters whose last character is the ISO 7064 MOD 11-2 check digit
// ('X' stands for 10).
func Orcid() Constraint { return orcid{} }

type orcid struct{}

func (orcid) Validate(_ context.Context, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, violation(CodeInvalidType, "expected string, got %T", v)
	}
	if !orcidShape.MatchString(s) {
		return v, violation(CodeInvalidOrcid, "%q is not a valid ORCID iD", s)
	}
	total := 0
	for _, r := range s[:len(s)-1] {
		if r == '-' {
			continue
		}
		total = (total + int(r-'0')) * 2
	}
	check := (12 - total%11) % 11
	want := byte('0' + check)
	if check == 10 {
		want = 'X'
	}
	if s[len(s)-1] != want {
		return v, violation(CodeInvalidOrcid, "%q has an invalid ORCID checksum", s)
	}
	return s, nil
}
