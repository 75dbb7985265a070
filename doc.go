package rdspec

// Package rdspec validates and migrates resource-description documents: the
// YAML/JSON metadata records that describe machine-learning model packages and
// related scientific resources.
//
// - Constrained-type validators with a validate(value) -> value contract live
//   under constraint/; severity-graded wrapping turns any of them into a
//   non-blocking advisory under a lenient threshold.
// - ref/ resolves path references relative to a document root (directory or
//   base URL) without ever touching the network.
// - fversion/ and migrate/ carry documents across the format-version lineage
//   of their resource type before schema validation runs.
//
// Design policy:
// - Keep the public API (raw value model, issues, summaries, the schema
//   registry and LoadDescription) in the root package.
// - Sub-packages never import the root; severity thresholds and resolution
//   roots thread through context.Context.
//
// Typical usage:
//
//	doc, err := rdspec.YAMLBytes(data)
//	res, summary, err := rdspec.LoadDescription(doc,
//		rdspec.WithRoot(ref.DirRoot{Path: dir}),
//		rdspec.WithThreshold(rdspec.SeverityWarning))
