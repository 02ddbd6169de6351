package registry

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

var (
	// ErrAmbiguousSource marks a table entry whose source is not a usable variant.
	ErrAmbiguousSource = errors.New("ambiguous script source")
	// ErrInvalidEntry marks any other defect in the provider table.
	ErrInvalidEntry = errors.New("invalid registry entry")
	// ErrUnknownEntry is returned by lookups that match nothing.
	ErrUnknownEntry = errors.New("unknown registry entry")
)

// ImportRef names the implementation module the loading runtime resolves
// for option validation and lifecycle hooks.
type ImportRef struct {
	Name string
	From string
}

// Entry describes one third-party script provider.
type Entry struct {
	Label    string
	Category Category
	Source   Source
	Logo     Logo
	Import   ImportRef
}

// Slug returns the kebab-case form of the label ("Google Analytics" -> "google-analytics").
func (e Entry) Slug() string { return Slugify(e.Label) }

// Slugify lower-cases s and joins its alphanumeric runs with "-".
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			dash = false
			continue
		}
		dash = true
	}
	return b.String()
}

// PathIndirection remaps a canonical module specifier. It runs once per
// entry while the registry is built.
type PathIndirection func(specifier string) string

// Identity leaves specifiers unchanged.
func Identity(s string) string { return s }

// RootedAt re-roots relative specifiers ("./runtime/x") under root, e.g. to
// give documentation tooling absolute paths. An empty root is Identity.
func RootedAt(root string) PathIndirection {
	root = strings.TrimSpace(root)
	if root == "" {
		return Identity
	}
	return func(s string) string {
		if !strings.HasPrefix(s, "./") && !strings.HasPrefix(s, "../") {
			return s
		}
		return path.Join(root, s)
	}
}

// Build returns the provider table in display order, with indirect applied
// to every module specifier. A nil indirect is Identity. If indirect yields
// an empty string the canonical specifier is kept.
//
// Build panics if the compiled-in table is malformed; that is a programming
// error, never a runtime condition.
func Build(indirect PathIndirection) Entries {
	if indirect == nil {
		indirect = Identity
	}
	defs := providers()
	out := make(Entries, 0, len(defs))
	for _, d := range defs {
		from := indirect(d.module)
		if from == "" {
			from = d.module
		}
		out = append(out, Entry{
			Label:    d.label,
			Category: d.category,
			Source:   d.source,
			Logo:     d.logo,
			Import:   ImportRef{Name: d.export, From: from},
		})
	}
	if err := out.Validate(); err != nil {
		panic(err)
	}
	return out
}

// Entries is an ordered provider table.
type Entries []Entry

// Validate checks the table invariants: unique labels and slugs, known
// categories, non-empty imports and well-formed sources.
func (es Entries) Validate() error {
	labels := make(map[string]struct{}, len(es))
	slugs := make(map[string]struct{}, len(es))
	for i, e := range es {
		if strings.TrimSpace(e.Label) == "" {
			return fmt.Errorf("%w: entry %d has no label", ErrInvalidEntry, i)
		}
		if _, dup := labels[e.Label]; dup {
			return fmt.Errorf("%w: duplicate label %q", ErrInvalidEntry, e.Label)
		}
		labels[e.Label] = struct{}{}
		slug := e.Slug()
		if _, dup := slugs[slug]; dup {
			return fmt.Errorf("%w: duplicate slug %q", ErrInvalidEntry, slug)
		}
		slugs[slug] = struct{}{}
		if !e.Category.Valid() {
			return fmt.Errorf("%w: %s: unknown category %q", ErrInvalidEntry, e.Label, e.Category)
		}
		if e.Import.Name == "" || e.Import.From == "" {
			return fmt.Errorf("%w: %s: incomplete import reference", ErrInvalidEntry, e.Label)
		}
		if e.Logo == nil {
			return fmt.Errorf("%w: %s: missing logo", ErrInvalidEntry, e.Label)
		}
		switch s := e.Source.(type) {
		case nil, Unbundleable:
		case Dynamic:
			if s.Resolve == nil {
				return fmt.Errorf("%w: %s: dynamic source without resolver", ErrAmbiguousSource, e.Label)
			}
		case Static:
			if strings.TrimSpace(s.URL) == "" {
				return fmt.Errorf("%w: %s: static source without URL", ErrAmbiguousSource, e.Label)
			}
		default:
			return fmt.Errorf("%w: %s: unsupported source %T", ErrAmbiguousSource, e.Label, s)
		}
	}
	return nil
}

// Lookup finds an entry by label (any letter case) or slug.
func (es Entries) Lookup(name string) (Entry, bool) {
	name = strings.TrimSpace(name)
	for _, e := range es {
		if strings.EqualFold(e.Label, name) || e.Slug() == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Find is Lookup returning ErrUnknownEntry when nothing matches.
func (es Entries) Find(name string) (Entry, error) {
	e, ok := es.Lookup(name)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownEntry, name)
	}
	return e, nil
}

// ByCategory returns the entries of c, in table order.
func (es Entries) ByCategory(c Category) Entries {
	var out Entries
	for _, e := range es {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

func (es Entries) Labels() []string {
	out := make([]string, len(es))
	for i, e := range es {
		out[i] = e.Label
	}
	return out
}
