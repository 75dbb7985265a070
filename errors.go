package rdspec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/modelhub/rdspec/constraint"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType          = constraint.CodeInvalidType
	CodeRequired             = "required"
	CodeRestrictedChar       = constraint.CodeRestrictedChar
	CodeInvalidSuffix        = constraint.CodeInvalidSuffix
	CodeDuplicateEntries     = constraint.CodeDuplicateEntries
	CodeInvalidVersion       = constraint.CodeInvalidVersion
	CodeInvalidIdentifier    = constraint.CodeInvalidIdentifier
	CodeInvalidDatetime      = constraint.CodeInvalidDatetime
	CodeInvalidOrcid         = constraint.CodeInvalidOrcid
	CodeInvalidSIUnit        = constraint.CodeInvalidSIUnit
	CodeDoesNotExist         = "does_not_exist"
	CodeInvalidReference     = "invalid_reference"
	CodeUnknownFormatVersion = "unknown_format_version"
	CodeUnknownResourceType  = "unknown_resource_type"
	CodeInternalError        = "internal_error"
	CodeValueError           = "value_error"
)

// Loc is the path from the document root to the offending field, as an ordered
// sequence of field names and sequence indexes.
type Loc []any

// Field appends a mapping key; the receiver is never mutated.
func (l Loc) Field(name string) Loc {
	return append(append(Loc{}, l...), name)
}

// Index appends a sequence index; the receiver is never mutated.
func (l Loc) Index(i int) Loc {
	return append(append(Loc{}, l...), i)
}

// Pointer renders the location as a JSON Pointer with RFC6901 escaping.
func (l Loc) Pointer() string {
	if len(l) == 0 {
		return "/"
	}
	b := &strings.Builder{}
	for _, part := range l {
		b.WriteByte('/')
		switch p := part.(type) {
		case string:
			b.WriteString(strings.ReplaceAll(strings.ReplaceAll(p, "~", "~0"), "/", "~1"))
		case int:
			b.WriteString(strconv.Itoa(p))
		default:
			fmt.Fprint(b, p)
		}
	}
	return b.String()
}

// Dotted renders the location in the legacy dotted-path form.
func (l Loc) Dotted() string {
	parts := make([]string, len(l))
	for i, part := range l {
		parts[i] = fmt.Sprint(part)
	}
	return strings.Join(parts, ".")
}

// Issue represents a single located validation entry, error or warning.
type Issue struct {
	Loc     Loc    `json:"loc"`
	Message string `json:"msg"`
	Code    string `json:"type"`
	// Params carries structured parameters (e.g., the offending value) for
	// observability; it is not part of the wire shape.
	Params map[string]any `json:"-"`
	// Trace retains the originating stack for issues converted from
	// unexpected failures.
	Trace string `json:"-"`
}

// Issues is a collection of validation entries that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := len(iss)
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		fmt.Fprintf(b, "%s at %s", iss[i].Code, iss[i].Loc.Pointer())
	}
	if n := len(iss); n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}
