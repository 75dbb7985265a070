package constraint

import (
	"context"
	"regexp"
	"strings"
)

// siTermPattern matches one unit term: optional metric prefix, base SI symbol,
// optional caret-prefixed integer exponent. The sign rule (numerator terms
// take positive exponents only) is enforced by the tokenizer, not here.
var siTermPattern = regexp.MustCompile(
	`^(?:da|[QRYZEPTGMkhdcmunpfazyrqµ])?` +
		`(?:mol|cd|Hz|Pa|Wb|Bq|Gy|Sv|kat|lm|lx|eV|rad|sr|Da|min|[mgsAKNJWCVFSTHLlhtu]|Ω)` +
		`(\^-?[1-9][0-9]*)?$`)

// SIUnit validates a compound SI unit expression such as "kg/m^2·s^-2".
// Terms chain with "·" (multiplication) or "/" (division); "×" and "*" are
// normalized to "·" and the normalized string is returned.
func SIUnit() Constraint { return siUnit{} }

type siUnit struct{}

func (siUnit) Validate(_ context.Context, v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, violation(CodeInvalidType, "expected string, got %T", v)
	}
	norm := strings.NewReplacer("×", "·", "*", "·").Replace(s)
	rest := norm
	denominator := false
	for {
		i := strings.IndexAny(rest, "·/")
		term := rest
		if i >= 0 {
			term = rest[:i]
		}
		m := siTermPattern.FindStringSubmatch(term)
		if m == nil {
			return v, violation(CodeInvalidSIUnit, "%q is not a valid SI unit", s)
		}
		if !denominator && strings.HasPrefix(m[1], "^-") {
			return v, violation(CodeInvalidSIUnit, "%q has a negative exponent outside a denominator", s)
		}
		if i < 0 {
			return norm, nil
		}
		if rest[i] == '/' {
			denominator = true
			rest = rest[i+1:]
		} else {
			rest = rest[i+len("·"):]
		}
	}
}
