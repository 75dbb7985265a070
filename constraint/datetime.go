package constraint

import (
	"context"
	"strings"
	"time"
)

// iso8601Layouts cover datetime strings with and without zone or sub-second
// precision. A trailing 'Z' is rewritten to '+00:00' before parsing.
var iso8601Layouts = []string{
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02T15:04:05-07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Datetime accepts native time values unchanged and parses ISO-8601 strings
// into time.Time. Any other input type fails naming the offending type.
func Datetime() Constraint { return datetime{} }

type datetime struct{}

func (datetime) Validate(_ context.Context, v any) (any, error) {
	switch t := v.(type) {
	case time.Time:
		return t, nil
	case string:
		s := t
		if strings.HasSuffix(s, "Z") {
			s = strings.TrimSuffix(s, "Z") + "+00:00"
		}
		for _, layout := range iso8601Layouts {
			if parsed, err := time.Parse(layout, s); err == nil {
				return parsed, nil
			}
		}
		return v, violation(CodeInvalidDatetime, "%q is not an ISO 8601 datetime", t)
	}
	return v, violation(CodeInvalidDatetime, "expected datetime or ISO 8601 string, got %T", v)
}
