package rdspec

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	perrors "github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/modelhub/rdspec/fversion"
	"github.com/modelhub/rdspec/migrate"
	"github.com/modelhub/rdspec/ref"
)

// FormatVersionDiscover selects the format version declared by the document.
const FormatVersionDiscover = "discover"

// documentFilename is the conventional name a description document is stored
// under; the summary's source identifier joins it onto the root.
const documentFilename = "rdf.yaml"

// LoadOption configures one LoadDescription call.
type LoadOption func(*loadOptions)

type loadOptions struct {
	vc            ValidationContext
	logger        log.Logger
	formatVersion string
}

// WithRoot sets the root that relative references resolve against.
func WithRoot(root ref.Root) LoadOption {
	return func(o *loadOptions) { o.vc.Root = root }
}

// WithThreshold sets the minimum severity escalated during validation.
func WithThreshold(s Severity) LoadOption {
	return func(o *loadOptions) { o.vc.Threshold = s }
}

// WithFs substitutes the filesystem used for existence checks.
func WithFs(fs afero.Fs) LoadOption {
	return func(o *loadOptions) { o.vc.Fs = fs }
}

// WithLogger routes advisory and debug events; default is a nop logger.
func WithLogger(l log.Logger) LoadOption {
	return func(o *loadOptions) { o.logger = l }
}

// WithFormatVersion overrides the document's declared format version.
func WithFormatVersion(v string) LoadOption {
	return func(o *loadOptions) { o.formatVersion = v }
}

// LoadDescription validates a raw resource-description document: it resolves
// the target format version, migrates the document up the version chain, runs
// the matching schema and assembles a Summary. The returned error is non-nil
// only for precondition faults (the input is not a candidate document at
// all); domain violations land in the Summary. The Resource is non-nil only
// when validation passed.
func LoadDescription(doc RawMapping, opts ...LoadOption) (*Resource, *Summary, error) {
	o := loadOptions{vc: DefaultContext(), logger: log.NewNopLogger(), formatVersion: FormatVersionDiscover}
	for _, opt := range opts {
		opt(&o)
	}

	if !IsRawValue(doc) {
		return nil, nil, perrors.New("rdspec: input is not a raw-value tree")
	}
	typ, ok := doc["type"].(string)
	if !ok {
		return nil, nil, perrors.New("rdspec: document has no string \"type\" field")
	}
	declaredStr, ok := doc["format_version"].(string)
	if !ok {
		return nil, nil, perrors.New("rdspec: document has no string \"format_version\" field")
	}
	if o.formatVersion != "" && o.formatVersion != FormatVersionDiscover {
		declaredStr = o.formatVersion
	}

	name, _ := doc["name"].(string)
	base := Summary{
		LibraryVersion: LibraryVersion,
		Name:           name,
		SourceName:     sourceName(o.vc.Root),
	}

	declared, err := fversion.Parse(strings.TrimSpace(declaredStr))
	if err != nil {
		s := base
		s.Status = StatusFailed
		s.Errors = Issues{{
			Loc:     Loc{"format_version"},
			Code:    CodeInvalidVersion,
			Message: fmt.Sprintf("%q is not a valid format version", declaredStr),
		}}
		return nil, &s, nil
	}

	var advisories Issues
	effType := typ
	if !fversion.KnownType(typ) {
		level.Debug(o.logger).Log("msg", "unknown resource type, validating against generic schema", "type", typ)
		advisories = append(advisories, Issue{
			Loc:     Loc{"type"},
			Code:    CodeUnknownResourceType,
			Message: fmt.Sprintf("unknown resource type %q, validating against the generic schema", typ),
			Params:  map[string]any{"severity": SeverityAlert.String()},
		})
		effType = fversion.TypeGeneric
	}

	latest, _ := fversion.Latest(effType)
	if !fversion.Known(effType, declared) && !latest.Less(declared) {
		advisories = append(advisories, Issue{
			Loc:     Loc{"format_version"},
			Code:    CodeUnknownFormatVersion,
			Message: fmt.Sprintf("unknown format version %s, validating as %s", declared, latest),
			Params:  map[string]any{"severity": SeverityInfo.String()},
		})
	}

	migrated, final := doc, declared
	if chain, ok := migrate.ChainFor(effType); ok {
		var notes []migrate.Advisory
		migrated, final, notes = chain.Run(doc, declared, o.logger)
		for _, n := range notes {
			advisories = append(advisories, Issue{
				Loc:     Loc{n.Field},
				Code:    CodeUnknownFormatVersion,
				Message: n.Message,
				Params:  map[string]any{"severity": n.Severity.String()},
			})
		}
	}

	desc, _ := LookupSchema(effType, final.Series())
	if desc == nil {
		return nil, nil, perrors.Errorf("rdspec: no schema installed for type %q", effType)
	}

	ctx := context.Background()

	// First pass at the strictest threshold decides the headline status
	// without advisory noise.
	strict := o.vc
	strict.Threshold = SeverityError
	errs, warns := validateGuarded(ctx, desc, strict, migrated)

	warnings := warns
	if len(errs) == 0 && o.vc.Threshold < SeverityError {
		errs2, warns2 := validateGuarded(ctx, desc, o.vc, migrated)
		if len(errs2) > 0 {
			// Relaxing the threshold can only soften failures; new errors
			// here mean a validator misbehaved.
			errs = append(errs, Issue{
				Loc:     Loc{},
				Code:    CodeInternalError,
				Message: fmt.Sprintf("lenient pass produced %d new error(s): %s", len(errs2), errs2.Error()),
			})
		}
		warnings = warns2
	}

	s := base
	s.Errors = errs
	s.Warnings = append(advisories, warnings...)
	s.Status = StatusPassed
	if len(errs) > 0 {
		s.Status = StatusFailed
	}

	if !s.Passed() {
		return nil, &s, nil
	}
	return &Resource{
		Type:          effType,
		FormatVersion: final,
		Name:          name,
		Descriptor:    desc,
		Doc:           migrated,
	}, &s, nil
}

// validateGuarded shields the orchestrator from validator bugs: a panic that
// escapes the field walker becomes an internal_error issue retaining the
// stack instead of aborting the call.
func validateGuarded(ctx context.Context, d *Descriptor, vc ValidationContext, doc RawMapping) (errs, warns Issues) {
	defer func() {
		if r := recover(); r != nil {
			errs = append(errs, Issue{
				Loc:     Loc{},
				Code:    CodeInternalError,
				Message: fmt.Sprintf("%v", r),
				Trace:   string(debug.Stack()),
			})
		}
	}()
	errs, warns = d.Validate(ctx, vc, doc)
	return errs, warns
}

func sourceName(root ref.Root) string {
	if root == nil {
		return documentFilename
	}
	return root.Join(documentFilename)
}

// Resource is the typed outcome of a successful validation: the migrated
// document plus the descriptor it validated against.
type Resource struct {
	Type          string
	FormatVersion fversion.Version
	Name          string
	Descriptor    *Descriptor
	Doc           RawMapping
}
