package rdspec

import "fmt"

// RawMapping is a string-keyed mapping of raw document values.
type RawMapping = map[string]any

// RawSequence is an ordered sequence of raw document values.
type RawSequence = []any

// IsRawValue reports whether v belongs to the universe of legal raw document
// values: a leaf scalar (string, bool, integer, float or nil), a sequence of
// raw values, or a string-keyed mapping of raw values. The check is recursive
// and structural; input is assumed to be a parsed tree, not a graph.
func IsRawValue(v any) bool {
	switch t := v.(type) {
	case nil, string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		return true
	case RawSequence:
		for _, e := range t {
			if !IsRawValue(e) {
				return false
			}
		}
		return true
	case RawMapping:
		for _, e := range t {
			if !IsRawValue(e) {
				return false
			}
		}
		return true
	}
	return false
}

// IsRawMapping reports whether v is a string-keyed mapping of raw values.
func IsRawMapping(v any) bool {
	m, ok := v.(RawMapping)
	return ok && IsRawValue(m)
}

// normalizeRawValue rewrites parser output into canonical raw-value form,
// converting any-keyed mappings with string keys along the way. Non-string
// mapping keys are an error.
func normalizeRawValue(v any) (any, error) {
	switch t := v.(type) {
	case map[any]any:
		out := make(RawMapping, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("rdspec: non-string mapping key %v (%T)", k, k)
			}
			ne, err := normalizeRawValue(e)
			if err != nil {
				return nil, err
			}
			out[ks] = ne
		}
		return out, nil
	case RawMapping:
		for k, e := range t {
			ne, err := normalizeRawValue(e)
			if err != nil {
				return nil, err
			}
			t[k] = ne
		}
		return t, nil
	case RawSequence:
		for i, e := range t {
			ne, err := normalizeRawValue(e)
			if err != nil {
				return nil, err
			}
			t[i] = ne
		}
		return t, nil
	}
	return v, nil
}
