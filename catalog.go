package rdspec

import (
	"github.com/modelhub/rdspec/constraint"
	"github.com/modelhub/rdspec/fversion"
	"github.com/modelhub/rdspec/ref"
)

// nameAlphabet keeps resource names portable across filesystems and archives.
const nameAlphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 _-.()"

func personFields() []Field {
	return []Field{
		{Name: "name", Required: true},
		{Name: "affiliation"},
		{Name: "email"},
		{Name: "github_user"},
		{Name: "orcid", Check: constraint.Orcid()},
	}
}

func commonFields() []Field {
	return []Field{
		{Name: "format_version", Required: true, Check: constraint.VersionString()},
		{Name: "type", Required: true},
		{Name: "name", Required: true, Check: constraint.Warn(
			constraint.MustRestrictCharacters(nameAlphabet),
			constraint.SeverityWarning, nil)},
		{Name: "description"},
		{Name: "version", Check: constraint.VersionString()},
		{Name: "authors", EachFields: personFields()},
		{Name: "maintainers", EachFields: personFields()},
		{Name: "cite", EachFields: []Field{
			{Name: "text", Required: true},
			{Name: "doi"},
			{Name: "url"},
		}},
		{Name: "documentation", IsRef: true, RefKind: ref.KindFile, InPackage: true,
			Check: constraint.Warn(
				constraint.MustSuffix(false, ".md"),
				constraint.SeverityWarning, nil)},
		{Name: "covers", InPackage: true,
			Each: constraint.MustSuffix(false, ".png", ".jpg", ".jpeg", ".gif")},
		{Name: "tags", Check: constraint.UniqueEntries()},
		{Name: "license", Check: constraint.Warn(
			constraint.MustRestrictCharacters(
				"ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789.-+"),
			constraint.SeverityWarning, nil)},
		{Name: "git_repo"},
		{Name: "attachments"},
		{Name: "config"},
	}
}

func modelDescriptor() *Descriptor {
	fields := commonFields()
	fields = append(fields,
		Field{Name: "timestamp", Check: constraint.Datetime()},
		Field{Name: "weights", Required: true, Keyed: true,
			KeyCheck: constraint.Identifier(),
			EachFields: []Field{
				{Name: "source", Required: true, IsRef: true, RefKind: ref.KindFile, InPackage: true},
				{Name: "sha256", Check: constraint.Warn(
					constraint.MustRestrictCharacters("0123456789abcdefABCDEF"),
					constraint.SeverityAlert, nil)},
				{Name: "dependencies", Fields: []Field{
					{Name: "manager", Required: true},
					{Name: "file", Required: true, IsRef: true, RefKind: ref.KindFile, InPackage: true},
				}},
			}},
		Field{Name: "inputs", EachFields: []Field{
			{Name: "name", Required: true, Check: constraint.Identifier()},
			{Name: "axes"},
			{Name: "unit", Check: constraint.SIUnit()},
		}},
		Field{Name: "outputs", EachFields: []Field{
			{Name: "name", Required: true, Check: constraint.Identifier()},
			{Name: "axes"},
			{Name: "unit", Check: constraint.SIUnit()},
		}},
		Field{Name: "test_inputs", InPackage: true,
			Each: constraint.Warn(constraint.MustSuffix(false, ".npy"), constraint.SeverityWarning, nil)},
		Field{Name: "test_outputs", InPackage: true,
			Each: constraint.Warn(constraint.MustSuffix(false, ".npy"), constraint.SeverityWarning, nil)},
		Field{Name: "sample_inputs", InPackage: true},
		Field{Name: "sample_outputs", InPackage: true},
		Field{Name: "run_mode"},
	)
	return &Descriptor{
		Type:    fversion.TypeModel,
		Version: fversion.MustParse("0.4.9"),
		Fields:  fields,
	}
}

func genericDescriptor(typ string) *Descriptor {
	fields := commonFields()
	switch typ {
	case fversion.TypeDataset:
		fields = append(fields, Field{Name: "source", IsRef: true, RefKind: ref.KindFile, InPackage: true})
	case fversion.TypeCollection:
		fields = append(fields, Field{Name: "collection", Required: true, EachFields: []Field{
			{Name: "id", Required: true, Check: constraint.Identifier()},
		}})
	}
	return &Descriptor{
		Type:    typ,
		Version: fversion.MustParse("0.2.3"),
		Fields:  fields,
	}
}

func init() {
	RegisterSchema(modelDescriptor())
	RegisterSchema(genericDescriptor(fversion.TypeGeneric))
	RegisterSchema(genericDescriptor(fversion.TypeDataset))
	RegisterSchema(genericDescriptor(fversion.TypeCollection))
}
