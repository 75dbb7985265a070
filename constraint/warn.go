package constraint

import (
	"context"
	"errors"
)

// Warned is the warning-classified failure produced by a Warn wrapper whose
// inner constraint failed at or above the active threshold. It carries the
// offending value and any caller-supplied metadata alongside the cause.
type Warned struct {
	Cause    error
	Severity Severity
	Value    any
	Meta     map[string]any
}

func (w *Warned) Error() string { return w.Cause.Error() }

func (w *Warned) Unwrap() error { return w.Cause }

// AsWarned extracts a Warned from an error chain.
func AsWarned(err error) (*Warned, bool) {
	var w *Warned
	if errors.As(err, &w) {
		return w, true
	}
	return nil, false
}

// Warn converts a strict constraint into a severity-graded one. When the inner
// constraint fails, the failure is compared against the threshold in ctx: at
// or above the threshold it surfaces as a Warned failure, below it the
// failure is swallowed and the original value passes through unchanged.
// Without any threshold in ctx the strictest level applies.
func Warn(inner Constraint, sev Severity, meta map[string]any) Constraint {
	return warned{inner: inner, sev: sev, meta: meta}
}

type warned struct {
	inner Constraint
	sev   Severity
	meta  map[string]any
}

func (w warned) Validate(ctx context.Context, v any) (any, error) {
	out, err := w.inner.Validate(ctx, v)
	if err == nil {
		return out, nil
	}
	if w.sev < ThresholdFrom(ctx) {
		return v, nil
	}
	return v, &Warned{Cause: err, Severity: w.sev, Value: v, Meta: w.meta}
}
