package migrate

import "github.com/modelhub/rdspec/fversion"

func vs(ss ...string) []fversion.Version {
	out := make([]fversion.Version, len(ss))
	for i, s := range ss {
		out[i] = fversion.MustParse(s)
	}
	return out
}

func init() {
	registerChain(fversion.TypeModel,
		Transition{
			From:  vs("0.3.0", "0.3.1", "0.3.2", "0.3.3", "0.3.4", "0.3.5", "0.3.6"),
			To:    fversion.MustParse("0.4.0"),
			Apply: modelTo040,
		},
		Transition{
			From:  vs("0.4.0"),
			To:    fversion.MustParse("0.4.1"),
			Apply: modelTo041,
		},
		Transition{
			From:  vs("0.4.1", "0.4.2", "0.4.3", "0.4.4"),
			To:    fversion.MustParse("0.4.5"),
			Apply: modelTo045,
		},
		Transition{
			From:  vs("0.4.5"),
			To:    fversion.MustParse("0.4.6"),
			Apply: modelTo046,
		},
		Transition{
			From:  vs("0.4.6"),
			To:    fversion.MustParse("0.4.7"),
			Apply: modelTo047,
		},
		Transition{
			From:  vs("0.4.7"),
			To:    fversion.MustParse("0.4.8"),
			Apply: modelTo048,
		},
		Transition{
			From:  vs("0.4.8"),
			To:    fversion.MustParse("0.4.9"),
			Apply: func(map[string]any) {}, // schema-only release, no structural change
		},
	)

	generic := []Transition{
		{
			From:  vs("0.2.0", "0.2.1"),
			To:    fversion.MustParse("0.2.2"),
			Apply: genericTo022,
		},
		{
			From:  vs("0.2.2"),
			To:    fversion.MustParse("0.2.3"),
			Apply: dropEmptyFutureConfig,
		},
	}
	registerChain(fversion.TypeGeneric, generic...)
	registerChain(fversion.TypeDataset, generic...)
	registerChain(fversion.TypeCollection, generic...)
}

// modelTo040 collapses legacy {"uri": ...} wrappers into plain source values
// and renames "uri" to "source" inside weights entries.
func modelTo040(doc map[string]any) {
	collapseURI(doc, "documentation")
	collapseURISeq(doc, "covers")
	collapseURISeq(doc, "test_inputs")
	collapseURISeq(doc, "test_outputs")
	if weights, ok := doc["weights"].(map[string]any); ok {
		for _, v := range weights {
			entry, ok := v.(map[string]any)
			if !ok {
				continue
			}
			if uri, ok := entry["uri"]; ok {
				if _, taken := entry["source"]; !taken {
					entry["source"] = uri
				}
				delete(entry, "uri")
			}
		}
	}
}

// modelTo041 defaults the resource type tag for documents that predate it.
func modelTo041(doc map[string]any) {
	if _, ok := doc["type"]; !ok {
		doc["type"] = fversion.TypeModel
	}
}

// modelTo045 relocates a root-level "dependencies" mapping into the
// pytorch_state_dict weights entry. The move happens only when both the
// source field and the target entry are mappings; anything else is left for
// schema validation to flag.
func modelTo045(doc map[string]any) {
	deps, ok := doc["dependencies"].(map[string]any)
	if !ok {
		return
	}
	weights, ok := doc["weights"].(map[string]any)
	if !ok {
		return
	}
	entry, ok := weights["pytorch_state_dict"].(map[string]any)
	if !ok {
		return
	}
	if _, taken := entry["dependencies"]; !taken {
		entry["dependencies"] = deps
	}
	delete(doc, "dependencies")
}

// modelTo046 rewrites bare author and maintainer strings into named mappings.
func modelTo046(doc map[string]any) {
	wrapNames(doc, "authors")
	wrapNames(doc, "maintainers")
}

// modelTo047 wraps a scalar "tags" value into a sequence.
func modelTo047(doc map[string]any) {
	if tag, ok := doc["tags"].(string); ok {
		doc["tags"] = []any{tag}
	}
}

// modelTo048 drops the empty optional "future" sub-config and then the
// "config" container itself when that emptied it.
func modelTo048(doc map[string]any) {
	dropEmptyFutureConfig(doc)
}

func genericTo022(doc map[string]any) {
	collapseURI(doc, "documentation")
	collapseURISeq(doc, "covers")
}

func dropEmptyFutureConfig(doc map[string]any) {
	config, ok := doc["config"].(map[string]any)
	if !ok {
		return
	}
	if future, ok := config["future"].(map[string]any); ok && len(future) == 0 {
		delete(config, "future")
	}
	if len(config) == 0 {
		delete(doc, "config")
	}
}

// collapseURI replaces doc[key] = {"uri": u, ...} with just u.
func collapseURI(doc map[string]any, key string) {
	m, ok := doc[key].(map[string]any)
	if !ok {
		return
	}
	if uri, ok := m["uri"]; ok {
		doc[key] = uri
	}
}

// collapseURISeq applies the uri collapse to every element of a sequence.
func collapseURISeq(doc map[string]any, key string) {
	seq, ok := doc[key].([]any)
	if !ok {
		return
	}
	for i, e := range seq {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		if uri, ok := m["uri"]; ok {
			seq[i] = uri
		}
	}
}

func wrapNames(doc map[string]any, key string) {
	seq, ok := doc[key].([]any)
	if !ok {
		return
	}
	for i, e := range seq {
		if name, ok := e.(string); ok {
			seq[i] = map[string]any{"name": name}
		}
	}
}
