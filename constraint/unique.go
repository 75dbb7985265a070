package constraint

import (
	"context"
	"fmt"
)

// UniqueEntries fails when a sequence holds duplicate elements. Only the fact
// of duplication is reported, not which element repeats.
func UniqueEntries() Constraint { return uniqueEntries{} }

type uniqueEntries struct{}

func (uniqueEntries) Validate(_ context.Context, v any) (any, error) {
	seq, ok := v.([]any)
	if !ok {
		return v, violation(CodeInvalidType, "expected sequence, got %T", v)
	}
	seen := make(map[string]struct{}, len(seq))
	for _, e := range seq {
		seen[fmt.Sprintf("%#v", e)] = struct{}{}
	}
	if len(seen) != len(seq) {
		return v, violation(CodeDuplicateEntries, "sequence contains duplicate entries")
	}
	return seq, nil
}
