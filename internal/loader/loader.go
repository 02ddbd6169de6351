// Package loader decides how a loading runtime should obtain each registry
// entry's script. It performs no I/O; the caller injects the tag.
package loader

import (
	"fmt"

	"github.com/Chapsvision-dev/script-registry/internal/registry"
	"github.com/Chapsvision-dev/script-registry/internal/resolver"
)

// Mode tells the runtime what to do with an entry.
type Mode string

const (
	// ModeBundle: URL was computed by the entry's resolver and may be proxied.
	ModeBundle Mode = "bundle"
	// ModeStatic: URL is the entry's literal source.
	ModeStatic Mode = "static"
	// ModePassthrough: load the provider's own script untouched.
	ModePassthrough Mode = "passthrough"
	// ModeDefault: no source declared; the implementation module picks its script.
	ModeDefault Mode = "default"
)

// Options tunes planning.
type Options struct {
	// Strict rejects options missing a resolver's required keys instead of
	// falling back to empty values.
	Strict bool
}

// Plan is the decision for one entry.
type Plan struct {
	Label  string
	Mode   Mode
	URL    string
	Import registry.ImportRef
}

// Rewritable reports whether the runtime may proxy or rewrite the URL.
func (p Plan) Rewritable() bool { return p.Mode == ModeBundle || p.Mode == ModeStatic }

// PlanEntry resolves e against opts. Only Dynamic sources ever reach a resolver.
func PlanEntry(e registry.Entry, opts resolver.Options, o Options) (Plan, error) {
	p := Plan{Label: e.Label, Import: e.Import}
	switch s := e.Source.(type) {
	case registry.Dynamic:
		if o.Strict {
			if err := resolver.Require(opts, e.Slug(), s.Required...); err != nil {
				return Plan{}, err
			}
		}
		u, err := s.Resolve(opts)
		if err != nil {
			return Plan{}, fmt.Errorf("resolve %s: %w", e.Label, err)
		}
		p.Mode, p.URL = ModeBundle, u
	case registry.Static:
		p.Mode, p.URL = ModeStatic, s.URL
	case registry.Unbundleable:
		p.Mode = ModePassthrough
	case nil:
		p.Mode = ModeDefault
	default:
		return Plan{}, fmt.Errorf("%w: %s: %T", registry.ErrAmbiguousSource, e.Label, s)
	}
	return p, nil
}

// PlanAll plans every entry with the options found under its slug in opts.
// Entries without options are planned with nil options.
func PlanAll(es registry.Entries, opts map[string]resolver.Options, o Options) ([]Plan, error) {
	plans := make([]Plan, 0, len(es))
	for _, e := range es {
		p, err := PlanEntry(e, opts[e.Slug()], o)
		if err != nil {
			return nil, err
		}
		plans = append(plans, p)
	}
	return plans, nil
}
