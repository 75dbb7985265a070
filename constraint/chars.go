package constraint

import (
	"context"
	"errors"
)

// RestrictCharacters builds a constraint that accepts only strings whose every
// character belongs to alphabet. An empty alphabet is a construction-time
// error, not a validation failure.
func RestrictCharacters(alphabet string) (Constraint, error) {
	if alphabet == "" {
		return nil, errors.New("constraint: empty alphabet")
	}
	set := make(map[rune]struct{}, len(alphabet))
	for _, r := range alphabet {
		set[r] = struct{}{}
	}
	return restrictChars{set: set, display: alphabet}, nil
}

// MustRestrictCharacters is RestrictCharacters for static alphabets.
func MustRestrictCharacters(alphabet string) Constraint {
	c, err := RestrictCharacters(alphabet)
	if err != nil {
		panic(err)
	}
	return c
}

type restrictChars struct {
	set     map[rune]struct{}
	display string
}

func (c restrictChars) Validate(_ context.Context, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, violation(CodeInvalidType, "expected string, got %T", v)
	}
	for _, r := range s {
		if _, ok := c.set[r]; !ok {
			return v, &Violation{
				Code:    CodeRestrictedChar,
				Message: "character " + string(r) + " of " + s + " is not in " + c.display,
				Params:  map[string]any{"character": string(r), "alphabet": c.display},
			}
		}
	}
	return s, nil
}
