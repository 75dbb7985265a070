package constraint

import (
	"context"
	"fmt"
)

// Constraint validates a single value and returns it (possibly normalized).
// Implementations are small immutable value objects; composition happens via
// Chain rather than embedding.
type Constraint interface {
	Validate(ctx context.Context, v any) (any, error)
}

// Func adapts a plain function to the Constraint interface.
type Func func(ctx context.Context, v any) (any, error)

func (f Func) Validate(ctx context.Context, v any) (any, error) { return f(ctx, v) }

// Violation is a single constraint failure. Code identifies the rule family;
// Params carries structured parameters for i18n and observability.
type Violation struct {
	Code    string
	Message string
	Params  map[string]any
}

func (v *Violation) Error() string { return v.Message }

func violation(code, format string, args ...any) *Violation {
	return &Violation{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Violation codes produced by this package.
const (
	CodeInvalidType       = "invalid_type"
	CodeRestrictedChar    = "restricted_character"
	CodeInvalidSuffix     = "invalid_suffix"
	CodeDuplicateEntries  = "duplicate_entries"
	CodeInvalidVersion    = "invalid_version"
	CodeInvalidIdentifier = "invalid_identifier"
	CodeInvalidDatetime   = "invalid_datetime"
	CodeInvalidOrcid      = "invalid_orcid"
	CodeInvalidSIUnit     = "invalid_si_unit"
)

// Chain composes constraints in declaration order. The output of each
// constraint feeds the next; the first hard failure stops the chain. A
// swallowed warning (see Warn) keeps the chain running on the original value.
func Chain(cs ...Constraint) Constraint {
	return chain(cs)
}

type chain []Constraint

func (c chain) Validate(ctx context.Context, v any) (any, error) {
	cur := v
	for _, step := range c {
		if step == nil {
			continue
		}
		out, err := step.Validate(ctx, cur)
		if err != nil {
			return cur, err
		}
		cur = out
	}
	return cur, nil
}
