package constraint

import (
	"context"
	"fmt"
)

// Severity expresses how serious a violation is. The levels are totally
// ordered; SeverityError is the highest.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityAlert
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityAlert:
		return "alert"
	case SeverityError:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// ParseSeverity maps a severity name back to its level.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "info":
		return SeverityInfo, nil
	case "warning":
		return SeverityWarning, nil
	case "alert":
		return SeverityAlert, nil
	case "error":
		return SeverityError, nil
	}
	return SeverityError, fmt.Errorf("unknown severity %q", s)
}

type contextKey int

const _ctxKeyThreshold contextKey = iota

// WithThreshold returns a child context carrying the minimum severity that
// escalates a warn-wrapped violation. Consumed by Warn.
func WithThreshold(ctx context.Context, s Severity) context.Context {
	return context.WithValue(ctx, _ctxKeyThreshold, s)
}

// ThresholdFrom reads the active severity threshold. When no threshold was
// supplied the strictest level applies; leniency is always opt-in.
func ThresholdFrom(ctx context.Context) Severity {
	if v, ok := ctx.Value(_ctxKeyThreshold).(Severity); ok {
		return v
	}
	return SeverityError
}
