package rdspec

// PackageContents collects the fields of a validated resource that belong in
// a package: a map from dotted location path to the raw source value (local
// path or URL). External packagers consume this without re-reading the
// schema.
func PackageContents(res *Resource) map[string]any {
	out := map[string]any{}
	if res == nil || res.Descriptor == nil {
		return out
	}
	for _, f := range res.Descriptor.Fields {
		collectPackaged(Loc{}, f, res.Doc, out)
	}
	return out
}

func collectPackaged(parent Loc, f Field, doc RawMapping, out map[string]any) {
	v, present := doc[f.Name]
	if !present {
		return
	}
	loc := parent.Field(f.Name)
	if f.InPackage {
		if seq, ok := v.(RawSequence); ok {
			for i, e := range seq {
				out[loc.Index(i).Dotted()] = e
			}
		} else {
			out[loc.Dotted()] = v
		}
		return
	}
	switch {
	case len(f.Fields) > 0 && !f.Keyed:
		if m, ok := v.(RawMapping); ok {
			for _, sub := range f.Fields {
				collectPackaged(loc, sub, m, out)
			}
		}
	case f.Keyed:
		if m, ok := v.(RawMapping); ok {
			for k, e := range m {
				em, ok := e.(RawMapping)
				if !ok {
					continue
				}
				for _, sub := range f.EachFields {
					collectPackaged(loc.Field(k), sub, em, out)
				}
			}
		}
	case len(f.EachFields) > 0:
		if seq, ok := v.(RawSequence); ok {
			for i, e := range seq {
				em, ok := e.(RawMapping)
				if !ok {
					continue
				}
				for _, sub := range f.EachFields {
					collectPackaged(loc.Index(i), sub, em, out)
				}
			}
		}
	}
}
