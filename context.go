package rdspec

import (
	"context"

	"github.com/spf13/afero"

	"github.com/modelhub/rdspec/constraint"
	"github.com/modelhub/rdspec/ref"
)

// Severity re-exports the constraint severity levels; INFO < WARNING < ALERT
// < ERROR.
type Severity = constraint.Severity

const (
	SeverityInfo    = constraint.SeverityInfo
	SeverityWarning = constraint.SeverityWarning
	SeverityAlert   = constraint.SeverityAlert
	SeverityError   = constraint.SeverityError
)

// ValidationContext carries everything a validation run resolves against: the
// root for relative references, the minimum severity that escalates wrapped
// violations, and the filesystem used for existence checks. It is created
// once per validation call and never mutated afterwards.
type ValidationContext struct {
	Root      ref.Root
	Threshold Severity
	Fs        afero.Fs
}

// DefaultContext applies the strictest threshold and the OS filesystem.
// Leniency is always opt-in.
func DefaultContext() ValidationContext {
	return ValidationContext{Threshold: SeverityError, Fs: afero.NewOsFs()}
}

// Context installs the validation context into ctx for consumption by nested
// validators: the threshold for constraint.Warn and the root for ref lookups.
func (vc ValidationContext) Context(ctx context.Context) context.Context {
	ctx = constraint.WithThreshold(ctx, vc.Threshold)
	if vc.Root != nil {
		ctx = ref.WithRoot(ctx, vc.Root)
	}
	return ctx
}

type contextKey int

const _ctxKeyValidation contextKey = iota

// WithContext returns a child context carrying vc (and its threshold/root
// keys for the sub-packages).
func WithContext(ctx context.Context, vc ValidationContext) context.Context {
	return context.WithValue(vc.Context(ctx), _ctxKeyValidation, vc)
}

// ContextFrom reads the active ValidationContext, defaulting to the strictest
// configuration when none was supplied.
func ContextFrom(ctx context.Context) ValidationContext {
	if vc, ok := ctx.Value(_ctxKeyValidation).(ValidationContext); ok {
		return vc
	}
	return DefaultContext()
}
