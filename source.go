package rdspec

import (
	"fmt"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// YAMLBytes parses YAML input into a canonical raw mapping. Mapping keys that
// are not strings are rejected.
func YAMLBytes(b []byte) (RawMapping, error) {
	var raw any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("rdspec: yaml: %w", err)
	}
	return toRawMapping(raw)
}

// JSONBytes parses JSON input into a canonical raw mapping.
func JSONBytes(b []byte) (RawMapping, error) {
	var raw any
	if err := gojson.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("rdspec: json: %w", err)
	}
	return toRawMapping(raw)
}

func toRawMapping(raw any) (RawMapping, error) {
	norm, err := normalizeRawValue(raw)
	if err != nil {
		return nil, err
	}
	m, ok := norm.(RawMapping)
	if !ok {
		return nil, fmt.Errorf("rdspec: document root must be a mapping, got %T", norm)
	}
	return m, nil
}
