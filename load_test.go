package rdspec_test

import (
	"strings"
	"testing"

	"github.com/spf13/afero"

	rdspec "github.com/modelhub/rdspec"
	"github.com/modelhub/rdspec/ref"
)

func modelDoc(version string) rdspec.RawMapping {
	return rdspec.RawMapping{
		"type":           "model",
		"format_version": version,
		"name":           "unet",
		"weights": rdspec.RawMapping{
			"pytorch_state_dict": rdspec.RawMapping{"source": "weights.pt"},
		},
		"dependencies": rdspec.RawMapping{"manager": "conda", "file": "env.yaml"},
	}
}

func TestLoadDescriptionEndToEnd(t *testing.T) {
	res, summary, err := rdspec.LoadDescription(modelDoc("0.4.1"))
	if err != nil {
		t.Fatalf("unexpected precondition error: %v", err)
	}
	if !summary.Passed() {
		t.Fatalf("expected pass, errors: %v", summary.Errors)
	}
	if res == nil {
		t.Fatalf("passing validation must yield a resource")
	}
	if got := res.FormatVersion.String(); got != "0.4.9" {
		t.Fatalf("expected migration to latest 0.4.x, got %s", got)
	}
	if _, present := res.Doc["dependencies"]; present {
		t.Fatalf("root-level dependencies must be relocated")
	}
	weights := res.Doc["weights"].(rdspec.RawMapping)
	entry := weights["pytorch_state_dict"].(rdspec.RawMapping)
	if _, present := entry["dependencies"]; !present {
		t.Fatalf("dependencies must land under weights.pytorch_state_dict")
	}
	if summary.LibraryVersion != rdspec.LibraryVersion {
		t.Fatalf("summary must carry the library version stamp")
	}
}

func TestLoadDescriptionForwardCompatibility(t *testing.T) {
	_, summary, err := rdspec.LoadDescription(modelDoc("9999.0.0"))
	if err != nil {
		t.Fatalf("unexpected precondition error: %v", err)
	}
	if !summary.Passed() {
		t.Fatalf("future patch version must validate against latest, errors: %v", summary.Errors)
	}
	if len(summary.Warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %v", summary.Warnings)
	}
	if got := summary.Warnings[0].Loc.Pointer(); got != "/format_version" {
		t.Fatalf("warning must sit at format_version, got %s", got)
	}
}

func TestLoadDescriptionPreconditionFaults(t *testing.T) {
	doc := modelDoc("0.4.9")
	delete(doc, "type")
	if _, _, err := rdspec.LoadDescription(doc); err == nil {
		t.Fatalf("missing type field must be a precondition fault")
	}

	doc = modelDoc("0.4.9")
	doc["format_version"] = 4
	if _, _, err := rdspec.LoadDescription(doc); err == nil {
		t.Fatalf("non-string format_version must be a precondition fault")
	}
}

func TestLoadDescriptionMalformedVersion(t *testing.T) {
	res, summary, err := rdspec.LoadDescription(modelDoc("not.a.version"))
	if err != nil {
		t.Fatalf("malformed version is a domain failure, not a precondition fault: %v", err)
	}
	if res != nil || summary.Passed() {
		t.Fatalf("expected failed summary")
	}
	if summary.Errors[0].Loc.Pointer() != "/format_version" {
		t.Fatalf("error must sit at format_version, got %v", summary.Errors[0].Loc)
	}
}

func TestLoadDescriptionAccumulatesAllErrors(t *testing.T) {
	doc := rdspec.RawMapping{
		"type":           "model",
		"format_version": "0.4.9",
		// name and weights both missing, tags duplicated
		"tags": rdspec.RawSequence{"a", "a"},
	}
	_, summary, err := rdspec.LoadDescription(doc)
	if err != nil {
		t.Fatalf("unexpected precondition error: %v", err)
	}
	if summary.Passed() {
		t.Fatalf("expected failure")
	}
	codes := map[string]int{}
	for _, e := range summary.Errors {
		codes[e.Code]++
	}
	if codes[rdspec.CodeRequired] < 2 {
		t.Fatalf("expected both missing required fields reported, got %v", summary.Errors)
	}
	if codes[rdspec.CodeDuplicateEntries] != 1 {
		t.Fatalf("expected the duplicate tags error alongside, got %v", summary.Errors)
	}
}

func TestLoadDescriptionWarningsNeverAffectStatus(t *testing.T) {
	doc := modelDoc("0.4.9")
	doc["name"] = "unet№7" // outside the portable name alphabet

	_, strictSummary, err := rdspec.LoadDescription(doc)
	if err != nil {
		t.Fatalf("unexpected precondition error: %v", err)
	}
	if !strictSummary.Passed() || len(strictSummary.Warnings) != 0 {
		t.Fatalf("warning-severity rule must be silent at the strict threshold: %+v", strictSummary)
	}

	_, lenientSummary, err := rdspec.LoadDescription(doc, rdspec.WithThreshold(rdspec.SeverityWarning))
	if err != nil {
		t.Fatalf("unexpected precondition error: %v", err)
	}
	if !lenientSummary.Passed() {
		t.Fatalf("warnings must not fail the summary: %v", lenientSummary.Errors)
	}
	if len(lenientSummary.Warnings) == 0 {
		t.Fatalf("expected the name advisory at the lenient threshold")
	}
	if got := lenientSummary.Warnings[0].Loc.Pointer(); got != "/name" {
		t.Fatalf("warning must sit at name, got %s", got)
	}
}

func TestLoadDescriptionUnknownTypeFallsBackToGeneric(t *testing.T) {
	doc := rdspec.RawMapping{
		"type":           "notebook",
		"format_version": "0.2.3",
		"name":           "my notebook",
	}
	res, summary, err := rdspec.LoadDescription(doc)
	if err != nil {
		t.Fatalf("unexpected precondition error: %v", err)
	}
	if !summary.Passed() {
		t.Fatalf("generic fallback expected to pass, errors: %v", summary.Errors)
	}
	if res.Type != "generic" {
		t.Fatalf("expected generic fallback, got %q", res.Type)
	}
	found := false
	for _, w := range summary.Warnings {
		if w.Code == rdspec.CodeUnknownResourceType && w.Loc.Pointer() == "/type" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an unknown-type advisory, got %v", summary.Warnings)
	}
}

func TestLoadDescriptionExistenceChecks(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "/root/weights.pt", []byte("w"), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	if err := afero.WriteFile(fs, "/root/env.yaml", []byte("{}"), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}

	doc := modelDoc("0.4.9")
	doc["documentation"] = "docs.md" // not on the fs
	_, summary, err := rdspec.LoadDescription(doc,
		rdspec.WithRoot(ref.DirRoot{Path: "/root"}),
		rdspec.WithFs(fs))
	if err != nil {
		t.Fatalf("unexpected precondition error: %v", err)
	}
	if summary.Passed() {
		t.Fatalf("missing documentation file must fail under a filesystem root")
	}
	sawMissing := false
	for _, e := range summary.Errors {
		if e.Code == rdspec.CodeDoesNotExist && strings.Contains(e.Message, "docs.md") {
			sawMissing = true
		}
	}
	if !sawMissing {
		t.Fatalf("expected a does_not_exist error, got %v", summary.Errors)
	}

	if err := afero.WriteFile(fs, "/root/docs.md", []byte("# d"), 0o644); err != nil {
		t.Fatalf("fixture: %v", err)
	}
	_, summary, err = rdspec.LoadDescription(doc,
		rdspec.WithRoot(ref.DirRoot{Path: "/root"}),
		rdspec.WithFs(fs))
	if err != nil {
		t.Fatalf("unexpected precondition error: %v", err)
	}
	if !summary.Passed() {
		t.Fatalf("expected pass once the file exists, errors: %v", summary.Errors)
	}
}

func TestLoadDescriptionURLRootSkipsExistence(t *testing.T) {
	doc := modelDoc("0.4.9")
	doc["documentation"] = "docs.md"
	_, summary, err := rdspec.LoadDescription(doc,
		rdspec.WithRoot(ref.URLRoot{Raw: "https://example.com/models/unet"}))
	if err != nil {
		t.Fatalf("unexpected precondition error: %v", err)
	}
	if !summary.Passed() {
		t.Fatalf("URL roots must never check existence, errors: %v", summary.Errors)
	}
	if want := "https://example.com/models/unet/rdf.yaml"; summary.SourceName != want {
		t.Fatalf("source name: got %q, want %q", summary.SourceName, want)
	}
}

func TestLoadDescriptionFormatVersionOverride(t *testing.T) {
	doc := modelDoc("0.4.9")
	doc["format_version"] = "0.4.1"
	res, summary, err := rdspec.LoadDescription(doc, rdspec.WithFormatVersion("0.4.9"))
	if err != nil {
		t.Fatalf("unexpected precondition error: %v", err)
	}
	if !summary.Passed() {
		t.Fatalf("expected pass, errors: %v", summary.Errors)
	}
	// Overriding to 0.4.9 skips the 0.4.1 migrations entirely.
	if _, present := res.Doc["dependencies"]; !present {
		t.Fatalf("override must suppress the relocation migrations")
	}
}

func TestSupportedFormatVersions(t *testing.T) {
	sup := rdspec.SupportedFormatVersions()
	model := sup["model"]
	if len(model) == 0 || model[0] != "0.3.0" || model[len(model)-1] != "0.4.9" {
		t.Fatalf("model versions must include the migration-only lineage, got %v", model)
	}
}
