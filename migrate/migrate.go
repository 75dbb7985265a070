// Package migrate rewrites resource-description documents across format
// versions. Each transition bumps one version step (or collapses a declared
// range) and must be idempotent on its own output; structural correctness is
// left to the schema validation that follows.
package migrate

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/modelhub/rdspec/constraint"
	"github.com/modelhub/rdspec/fversion"
)

// Advisory records a non-blocking observation made while migrating, such as a
// declared version newer than any known release.
type Advisory struct {
	Field    string
	Message  string
	Severity constraint.Severity
}

// Transition moves a document one step up the version lineage. From lists
// every declared version the step accepts; a single-element From is a plain
// bump, more elements collapse a range. A document older than every From
// version is also taken, so pre-lineage documents enter at the oldest step.
// Apply mutates doc in place and skips malformed sub-structures silently.
type Transition struct {
	From  []fversion.Version
	To    fversion.Version
	Apply func(doc map[string]any)
}

// accepts reports whether a document at v takes this step.
func (t Transition) accepts(v fversion.Version) bool {
	if len(t.From) == 0 {
		return false
	}
	older := true
	for _, f := range t.From {
		if f == v {
			return true
		}
		if !v.Less(f) {
			older = false
		}
	}
	return older
}

// Chain is the ordered transition sequence of one resource type.
type Chain struct {
	Type  string
	steps []Transition
}

var chains = map[string]*Chain{}

// ChainFor returns the migration chain of a resource type.
func ChainFor(typ string) (*Chain, bool) {
	c, ok := chains[typ]
	return c, ok
}

func registerChain(typ string, steps ...Transition) *Chain {
	c := &Chain{Type: typ, steps: steps}
	chains[typ] = c
	return c
}

// Run migrates a copy of doc from its declared version to the latest known
// version of the chain's type. The input document is never mutated. A declared
// version newer than the latest known release is treated as the latest and
// reported through an alert advisory; a version older than the oldest known
// transition starts at the oldest step.
func (c *Chain) Run(doc map[string]any, declared fversion.Version, logger log.Logger) (map[string]any, fversion.Version, []Advisory) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	out := deepCopyMapping(doc)
	latest, _ := fversion.Latest(c.Type)

	var advisories []Advisory
	current := declared
	if latest.Less(current) {
		advisories = append(advisories, Advisory{
			Field:    "format_version",
			Severity: constraint.SeverityAlert,
			Message:  "format_version " + declared.String() + " is newer than the latest supported " + latest.String() + "; validating as " + latest.String(),
		})
		level.Debug(logger).Log("msg", "substituting unknown future version", "declared", declared.String(), "using", latest.String())
		current = latest
	}

	for _, step := range c.steps {
		if !step.accepts(current) {
			continue
		}
		step.Apply(out)
		level.Debug(logger).Log("msg", "applied migration step", "type", c.Type, "from", current.String(), "to", step.To.String())
		current = step.To
	}
	out["format_version"] = current.String()
	return out, current, advisories
}

func deepCopyMapping(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return deepCopyMapping(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = deepCopyValue(e)
		}
		return out
	}
	return v
}
