package rdspec_test

import (
	"strings"
	"testing"

	rdspec "github.com/modelhub/rdspec"
	"github.com/modelhub/rdspec/i18n"
)

func TestSummaryJSONShape(t *testing.T) {
	s := &rdspec.Summary{
		LibraryVersion: rdspec.LibraryVersion,
		Name:           "unet",
		SourceName:     "/data/rdf.yaml",
		Status:         rdspec.StatusFailed,
		Errors: rdspec.Issues{
			{Loc: rdspec.Loc{"weights", 0}, Code: rdspec.CodeRequired, Message: "field required"},
		},
		Warnings: rdspec.Issues{},
	}
	b, err := s.JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(b)
	for _, want := range []string{`"loc"`, `"msg"`, `"type"`, `"status": "failed"`, `"library_version"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("wire shape missing %s:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Params") || strings.Contains(out, "Trace") {
		t.Fatalf("internal fields must not serialize:\n%s", out)
	}
}

func TestSummaryLegacyVariant(t *testing.T) {
	s := &rdspec.Summary{
		Status: rdspec.StatusFailed,
		Errors: rdspec.Issues{
			{Loc: rdspec.Loc{"weights", "pytorch_state_dict", "source"}, Code: rdspec.CodeRequired, Message: "field required"},
		},
		Warnings: rdspec.Issues{
			{Loc: rdspec.Loc{"name"}, Code: rdspec.CodeRestrictedChar, Message: "odd character"},
		},
	}
	legacy := s.Legacy()
	if got := legacy.Errors["weights.pytorch_state_dict.source"]; got != "field required" {
		t.Fatalf("legacy errors reshape: got %v", legacy.Errors)
	}
	if got := legacy.Warnings["name"]; got != "odd character" {
		t.Fatalf("legacy warnings reshape: got %v", legacy.Warnings)
	}
}

func TestSummaryLocalize(t *testing.T) {
	s := &rdspec.Summary{
		Status: rdspec.StatusFailed,
		Errors: rdspec.Issues{
			{Loc: rdspec.Loc{"authors", 0, "orcid"}, Code: rdspec.CodeInvalidOrcid, Message: "checksum mismatch"},
		},
		Warnings: rdspec.Issues{
			{Loc: rdspec.Loc{"name"}, Code: rdspec.CodeRestrictedChar, Message: "odd character",
				Params: map[string]any{"value": "bad/name"}},
		},
	}
	ja := s.Localize(i18n.New("ja"))
	if got := ja.Errors[0].Message; got != "ORCID iD が不正です" {
		t.Fatalf("localized error message: got %q", got)
	}
	if got := ja.Warnings[0].Message; got != "使用できない文字が含まれています" {
		t.Fatalf("localized warning message: got %q", got)
	}

	// The receiver keeps its original messages; only the copy is rendered.
	if s.Errors[0].Message != "checksum mismatch" {
		t.Fatalf("receiver mutated: %q", s.Errors[0].Message)
	}
	if ja.Errors[0].Code != rdspec.CodeInvalidOrcid || ja.Warnings[0].Loc.Dotted() != "name" {
		t.Fatalf("localization must keep codes and locations")
	}
}

func TestSummaryPassed(t *testing.T) {
	s := &rdspec.Summary{Status: rdspec.StatusPassed}
	if !s.Passed() {
		t.Fatalf("expected passed")
	}
	s.Status = rdspec.StatusFailed
	if s.Passed() {
		t.Fatalf("expected failed")
	}
}
