package registry

import "github.com/Chapsvision-dev/script-registry/internal/resolver"

// SourceKind names the Source variant of an entry.
type SourceKind string

const (
	KindNone         SourceKind = "none"
	KindDynamic      SourceKind = "dynamic"
	KindStatic       SourceKind = "static"
	KindUnbundleable SourceKind = "unbundleable"
)

// Source describes how a script URL is obtained. It is one of Dynamic,
// Static or Unbundleable. A nil Source means the entry declares none and
// the runtime falls back to the implementation module's own script.
type Source interface {
	Kind() SourceKind
	sealed()
}

// Dynamic computes the URL from runtime options.
type Dynamic struct {
	Resolve resolver.Func
	// Required lists option keys a strict runtime must see before resolving.
	Required []string
}

// Static is a literal, option-independent URL.
type Static struct {
	URL string
}

// Unbundleable marks a script that must never be proxied or rewritten.
type Unbundleable struct{}

func (Dynamic) Kind() SourceKind      { return KindDynamic }
func (Static) Kind() SourceKind       { return KindStatic }
func (Unbundleable) Kind() SourceKind { return KindUnbundleable }

func (Dynamic) sealed()      {}
func (Static) sealed()       {}
func (Unbundleable) sealed() {}

// KindOf reports the kind of s, including KindNone for a nil source.
func KindOf(s Source) SourceKind {
	if s == nil {
		return KindNone
	}
	return s.Kind()
}
