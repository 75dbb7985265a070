package rdspec

import (
	"fmt"

	gojson "github.com/goccy/go-json"

	"github.com/modelhub/rdspec/i18n"
)

// LibraryVersion stamps every Summary with the validating library release.
const LibraryVersion = "0.6.3"

// Summary statuses. A summary fails iff it carries errors; warnings never
// affect the status.
const (
	StatusPassed = "passed"
	StatusFailed = "failed"
)

// Summary aggregates the outcome of one top-level validation call. It is
// immutable after construction.
type Summary struct {
	LibraryVersion string `json:"library_version"`
	Name           string `json:"name"`
	SourceName     string `json:"source_name"`
	Status         string `json:"status"`
	Errors         Issues `json:"errors"`
	Warnings       Issues `json:"warnings"`
}

// Passed reports whether validation produced no errors.
func (s *Summary) Passed() bool { return s.Status == StatusPassed }

// JSON renders the summary in the documented wire shape.
func (s *Summary) JSON() ([]byte, error) {
	return gojson.MarshalIndent(s, "", "  ")
}

// Localize returns a copy of the summary with every issue message rendered
// through tr, keyed by the issue code. Issue params are passed along as
// message data.
func (s *Summary) Localize(tr i18n.Translator) Summary {
	out := *s
	out.Errors = localizeIssues(s.Errors, tr)
	out.Warnings = localizeIssues(s.Warnings, tr)
	return out
}

func localizeIssues(iss Issues, tr i18n.Translator) Issues {
	if len(iss) == 0 {
		return iss
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		var data map[string]string
		if len(it.Params) > 0 {
			data = make(map[string]string, len(it.Params))
			for k, v := range it.Params {
				data[k] = fmt.Sprint(v)
			}
		}
		it.Message = tr.Message(it.Code, data)
		out[i] = it
	}
	return out
}

// LegacySummary reshapes errors and warnings into dotted-path-keyed maps for
// older consumers. Colliding paths keep the first message.
type LegacySummary struct {
	LibraryVersion string            `json:"library_version"`
	Name           string            `json:"name"`
	SourceName     string            `json:"source_name"`
	Status         string            `json:"status"`
	Errors         map[string]string `json:"errors"`
	Warnings       map[string]string `json:"warnings"`
}

// Legacy converts the summary into its backward-compatible variant.
func (s *Summary) Legacy() LegacySummary {
	return LegacySummary{
		LibraryVersion: s.LibraryVersion,
		Name:           s.Name,
		SourceName:     s.SourceName,
		Status:         s.Status,
		Errors:         dottedMap(s.Errors),
		Warnings:       dottedMap(s.Warnings),
	}
}

func dottedMap(iss Issues) map[string]string {
	out := make(map[string]string, len(iss))
	for _, it := range iss {
		key := it.Loc.Dotted()
		if _, taken := out[key]; !taken {
			out[key] = it.Message
		}
	}
	return out
}
