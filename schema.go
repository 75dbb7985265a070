package rdspec

import (
	"context"
	"fmt"
	"net/url"
	"runtime/debug"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/modelhub/rdspec/constraint"
	"github.com/modelhub/rdspec/fversion"
	"github.com/modelhub/rdspec/ref"
)

var osFs = afero.NewOsFs()

func isURL(s string) bool {
	if !strings.Contains(s, "://") {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// Field describes one schema field: its constraint stack, whether it is
// required, whether its value belongs in a resource package, and how nested
// content is validated.
type Field struct {
	Name      string
	Required  bool
	InPackage bool

	// Check validates the field value (after reference resolution when the
	// field is a reference).
	Check constraint.Constraint

	// IsRef marks the field as a path reference of kind RefKind, resolved
	// against the context root.
	IsRef   bool
	RefKind ref.Kind

	// Fields validates a nested mapping with fixed keys. Each and EachFields
	// validate sequence elements. Keyed validates a mapping with
	// caller-chosen keys, applying KeyCheck to every key and EachFields to
	// every value.
	Fields     []Field
	Each       constraint.Constraint
	EachFields []Field
	Keyed      bool
	KeyCheck   constraint.Constraint
}

// Descriptor is the versioned schema of one resource type: an ordered field
// table. Validation accumulates every violation instead of stopping at the
// first.
type Descriptor struct {
	Type    string
	Version fversion.Version
	Fields  []Field
}

// Validate runs the descriptor's field constraints over doc, returning hard
// errors and warning-classified issues separately.
func (d *Descriptor) Validate(ctx context.Context, vc ValidationContext, doc RawMapping) (Issues, Issues) {
	ctx = vc.Context(ctx)
	w := &walker{ctx: ctx, vc: vc}
	for _, f := range d.Fields {
		w.field(Loc{}, f, doc)
	}
	return w.errs, w.warns
}

type walker struct {
	ctx   context.Context
	vc    ValidationContext
	errs  Issues
	warns Issues
}

func (w *walker) field(parent Loc, f Field, doc RawMapping) {
	loc := parent.Field(f.Name)
	v, present := doc[f.Name]
	if !present {
		if f.Required {
			w.errs = append(w.errs, Issue{Loc: loc, Code: CodeRequired, Message: "field required"})
		}
		return
	}
	w.value(loc, f, v)
}

func (w *walker) value(loc Loc, f Field, v any) {
	// A broken constraint must not abort validation of the remaining fields.
	defer func() {
		if r := recover(); r != nil {
			w.errs = append(w.errs, Issue{
				Loc:     loc,
				Code:    CodeInternalError,
				Message: fmt.Sprintf("%v", r),
				Trace:   string(debug.Stack()),
			})
		}
	}()

	if f.IsRef {
		v = w.resolveRef(loc, f, v)
		if v == nil {
			return
		}
	}
	if f.Check != nil {
		if out, err := f.Check.Validate(w.ctx, v); err != nil {
			w.record(loc, err)
		} else {
			v = out
		}
	}
	switch {
	case len(f.Fields) > 0 && !f.Keyed:
		m, ok := v.(RawMapping)
		if !ok {
			w.errs = append(w.errs, Issue{Loc: loc, Code: CodeInvalidType, Message: fmt.Sprintf("expected mapping, got %T", v)})
			return
		}
		for _, sub := range f.Fields {
			w.field(loc, sub, m)
		}
	case f.Keyed:
		m, ok := v.(RawMapping)
		if !ok {
			w.errs = append(w.errs, Issue{Loc: loc, Code: CodeInvalidType, Message: fmt.Sprintf("expected mapping, got %T", v)})
			return
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			kloc := loc.Field(k)
			if f.KeyCheck != nil {
				if _, err := f.KeyCheck.Validate(w.ctx, k); err != nil {
					w.record(kloc, err)
				}
			}
			w.entry(kloc, f, m[k])
		}
	case f.Each != nil || len(f.EachFields) > 0:
		seq, ok := v.(RawSequence)
		if !ok {
			w.errs = append(w.errs, Issue{Loc: loc, Code: CodeInvalidType, Message: fmt.Sprintf("expected sequence, got %T", v)})
			return
		}
		for i, e := range seq {
			w.entry(loc.Index(i), f, e)
		}
	}
}

// entry validates one sequence element or keyed-mapping value.
func (w *walker) entry(loc Loc, f Field, v any) {
	if len(f.EachFields) > 0 {
		m, ok := v.(RawMapping)
		if !ok {
			w.errs = append(w.errs, Issue{Loc: loc, Code: CodeInvalidType, Message: fmt.Sprintf("expected mapping, got %T", v)})
			return
		}
		for _, sub := range f.EachFields {
			w.field(loc, sub, m)
		}
		return
	}
	if f.Each != nil {
		if _, err := f.Each.Validate(w.ctx, v); err != nil {
			w.record(loc, err)
		}
	}
}

// resolveRef turns a string value into a validated reference. Returns nil
// after recording an issue.
func (w *walker) resolveRef(loc Loc, f Field, v any) any {
	s, ok := v.(string)
	if !ok {
		w.errs = append(w.errs, Issue{Loc: loc, Code: CodeInvalidType, Message: fmt.Sprintf("expected path or URL string, got %T", v)})
		return nil
	}
	if isURL(s) {
		// Remote references stay as-is; existence is never checked.
		return s
	}
	root := w.vc.Root
	checkExists := root != nil
	if root == nil {
		root = ref.DirRoot{Path: "."}
	}
	r, err := ref.New(f.RefKind, s, root)
	if err != nil {
		w.errs = append(w.errs, Issue{Loc: loc, Code: CodeInvalidReference, Message: err.Error()})
		return nil
	}
	if checkExists && !r.IsRemote() {
		if err := r.CheckExists(w.fs()); err != nil {
			w.errs = append(w.errs, Issue{Loc: loc, Code: CodeDoesNotExist, Message: err.Error()})
			return nil
		}
	}
	return r
}

func (w *walker) fs() afero.Fs {
	if w.vc.Fs != nil {
		return w.vc.Fs
	}
	return osFs
}

// record classifies a constraint failure: warning-classified failures land in
// the warning list, everything else is a hard error.
func (w *walker) record(loc Loc, err error) {
	if wd, ok := constraint.AsWarned(err); ok {
		params := map[string]any{"value": wd.Value}
		for k, v := range wd.Meta {
			params[k] = v
		}
		w.warns = append(w.warns, Issue{
			Loc:     loc,
			Code:    codeOf(wd.Cause),
			Message: wd.Error(),
			Params:  params,
		})
		return
	}
	w.errs = append(w.errs, Issue{Loc: loc, Code: codeOf(err), Message: err.Error()})
}

func codeOf(err error) string {
	if viol, ok := err.(*constraint.Violation); ok {
		return viol.Code
	}
	return CodeValueError
}
