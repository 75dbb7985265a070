package rdspec_test

import (
	"strings"
	"testing"

	rdspec "github.com/modelhub/rdspec"
)

func TestLocRendering(t *testing.T) {
	loc := rdspec.Loc{}.Field("weights").Field("pytorch_state_dict").Index(0)
	if got := loc.Pointer(); got != "/weights/pytorch_state_dict/0" {
		t.Fatalf("pointer: got %q", got)
	}
	if got := loc.Dotted(); got != "weights.pytorch_state_dict.0" {
		t.Fatalf("dotted: got %q", got)
	}
	if got := (rdspec.Loc{}).Pointer(); got != "/" {
		t.Fatalf("root pointer: got %q", got)
	}
	if got := (rdspec.Loc{"a/b", "c~d"}).Pointer(); got != "/a~1b/c~0d" {
		t.Fatalf("escaping: got %q", got)
	}
}

func TestLocAppendDoesNotMutate(t *testing.T) {
	base := rdspec.Loc{"weights"}
	a := base.Field("a")
	b := base.Field("b")
	if a.Pointer() == b.Pointer() {
		t.Fatalf("sibling locations must diverge")
	}
	if base.Pointer() != "/weights" {
		t.Fatalf("base location mutated: %q", base.Pointer())
	}
}

func TestIssuesErrorSummary(t *testing.T) {
	iss := rdspec.Issues{
		{Loc: rdspec.Loc{"a"}, Code: rdspec.CodeRequired},
		{Loc: rdspec.Loc{"b"}, Code: rdspec.CodeInvalidType},
		{Loc: rdspec.Loc{"c"}, Code: rdspec.CodeInvalidOrcid},
		{Loc: rdspec.Loc{"d"}, Code: rdspec.CodeInvalidSuffix},
	}
	s := iss.Error()
	if !strings.Contains(s, "required at /a") || !strings.Contains(s, "total 4") {
		t.Fatalf("unexpected summary %q", s)
	}
	if (rdspec.Issues{}).Error() != "" {
		t.Fatalf("empty issues must render empty")
	}
}
