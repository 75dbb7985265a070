package constraint

import (
	"context"
	"go/token"
	"unicode"
)

// Identifier checks that a string is a legal bare identifier and not a Go
// keyword. Keeping identifiers clear of keywords lets them appear as unquoted
// field names in generated code.
func Identifier() Constraint { return identifier{} }

type identifier struct{}

func (identifier) Validate(_ context.Context, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, violation(CodeInvalidType, "expected string, got %T", v)
	}
	if s == "" {
		return v, violation(CodeInvalidIdentifier, "identifier must not be empty")
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return v, violation(CodeInvalidIdentifier, "%q is not a valid identifier", s)
	}
	if token.IsKeyword(s) {
		return v, violation(CodeInvalidIdentifier, "%q collides with a reserved keyword", s)
	}
	return s, nil
}
