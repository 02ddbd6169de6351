package registry

import (
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/Chapsvision-dev/script-registry/internal/resolver"
)

func TestBuild_IdentityByDefault(t *testing.T) {
	es := Build(nil)
	if len(es) != 17 {
		t.Fatalf("want 17 entries, got %d", len(es))
	}
	for _, e := range es {
		if !strings.HasPrefix(e.Import.From, "./runtime/registry/") {
			t.Fatalf("%s: module path changed: %q", e.Label, e.Import.From)
		}
	}
	if got := es[0].Label; got != "Google Analytics" {
		t.Fatalf("display order changed, first entry %q", got)
	}
	if got := es[len(es)-1].Label; got != "NPM" {
		t.Fatalf("display order changed, last entry %q", got)
	}
}

func TestBuild_IndirectionOnlyTouchesModulePath(t *testing.T) {
	plain := Build(nil)
	upper := Build(strings.ToUpper)
	if len(plain) != len(upper) {
		t.Fatalf("length mismatch: %d vs %d", len(plain), len(upper))
	}
	for i := range plain {
		a, b := plain[i], upper[i]
		if b.Import.From != strings.ToUpper(a.Import.From) {
			t.Fatalf("%s: want %q, got %q", a.Label, strings.ToUpper(a.Import.From), b.Import.From)
		}
		if a.Label != b.Label || a.Category != b.Category || a.Import.Name != b.Import.Name ||
			KindOf(a.Source) != KindOf(b.Source) || !reflect.DeepEqual(a.Logo, b.Logo) {
			t.Fatalf("%s: fields other than module path changed", a.Label)
		}
	}
}

func TestBuild_IndirectionCalledOncePerEntry(t *testing.T) {
	calls := map[string]int{}
	es := Build(func(s string) string {
		calls[s]++
		return s
	})
	if len(calls) != len(es) {
		t.Fatalf("want %d distinct specifiers, got %d", len(es), len(calls))
	}
	for s, n := range calls {
		if n != 1 {
			t.Fatalf("%s: indirection called %d times", s, n)
		}
	}
}

func TestBuild_EmptyIndirectionKeepsCanonical(t *testing.T) {
	for _, e := range Build(func(string) string { return "" }) {
		if e.Import.From == "" {
			t.Fatalf("%s: empty module path", e.Label)
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a, b := Build(nil), Build(Identity)
	for i := range a {
		if a[i].Label != b[i].Label || a[i].Import != b[i].Import || KindOf(a[i].Source) != KindOf(b[i].Source) {
			t.Fatalf("entry %d differs between builds", i)
		}
		if d, ok := a[i].Source.(Dynamic); ok {
			u1, err1 := d.Resolve(resolver.Options{})
			u2, err2 := b[i].Source.(Dynamic).Resolve(resolver.Options{})
			if err1 != nil || err2 != nil || u1 != u2 {
				t.Fatalf("%s: resolvers disagree: %q/%q (%v/%v)", a[i].Label, u1, u2, err1, err2)
			}
		}
	}
}

func TestBuild_ConcurrentCallsAreIndependent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			es := Build(RootedAt("/srv/app"))
			es[0].Label = "mutated"
		}()
	}
	wg.Wait()
	if Build(nil)[0].Label != "Google Analytics" {
		t.Fatal("builds share state")
	}
}

func TestEntries_TableInvariants(t *testing.T) {
	es := Build(nil)
	if err := es.Validate(); err != nil {
		t.Fatalf("shipped table invalid: %v", err)
	}
	seen := map[string]bool{}
	for _, e := range es {
		if seen[e.Label] {
			t.Fatalf("duplicate label %q", e.Label)
		}
		seen[e.Label] = true
		if e.Import.From == "" {
			t.Fatalf("%s: empty module path", e.Label)
		}
	}
}

func TestEntries_Sources(t *testing.T) {
	es := Build(nil)
	want := map[string]SourceKind{
		"Google Analytics":   KindDynamic,
		"Fathom Analytics":   KindUnbundleable,
		"Matomo Analytics":   KindUnbundleable,
		"Google Tag Manager": KindNone,
		"X Pixel":            KindStatic,
		"Stripe":             KindUnbundleable,
		"Lemon Squeezy":      KindUnbundleable,
		"YouTube Player":     KindNone,
		"NPM":                KindDynamic,
	}
	for label, kind := range want {
		e, ok := es.Lookup(label)
		if !ok {
			t.Fatalf("missing %q", label)
		}
		if got := KindOf(e.Source); got != kind {
			t.Fatalf("%s: want %s, got %s", label, kind, got)
		}
	}
	x, _ := es.Lookup("x-pixel")
	if x.Source.(Static).URL != "https://static.ads-twitter.com/uwt.js" {
		t.Fatalf("unexpected X Pixel src: %#v", x.Source)
	}
	if _, themed := x.Logo.(ThemedLogo); !themed {
		t.Fatalf("X Pixel logo should be themed, got %T", x.Logo)
	}
	if x.Logo.Markup(Dark) == x.Logo.Markup(Light) {
		t.Fatal("themed logo should differ per theme")
	}
}

func TestEntries_Validate_Defects(t *testing.T) {
	good := func() Entry {
		return Entry{
			Label: "A", Category: Utility, Logo: SingleLogo("<svg/>"),
			Import: ImportRef{Name: "useA", From: "./a"},
		}
	}
	tests := []struct {
		name   string
		mutate func(es Entries) Entries
		want   error
	}{
		{"dynamic without resolver", func(es Entries) Entries { es[0].Source = Dynamic{}; return es }, ErrAmbiguousSource},
		{"static without url", func(es Entries) Entries { es[0].Source = Static{URL: " "}; return es }, ErrAmbiguousSource},
		{"pointer variant", func(es Entries) Entries { es[0].Source = &Static{URL: "x"}; return es }, ErrAmbiguousSource},
		{"duplicate label", func(es Entries) Entries { return append(es, es[0]) }, ErrInvalidEntry},
		{"duplicate slug", func(es Entries) Entries {
			e := es[0]
			e.Label = "a"
			return append(es, e)
		}, ErrInvalidEntry},
		{"bad category", func(es Entries) Entries { es[0].Category = "misc"; return es }, ErrInvalidEntry},
		{"empty import", func(es Entries) Entries { es[0].Import.From = ""; return es }, ErrInvalidEntry},
		{"no label", func(es Entries) Entries { es[0].Label = ""; return es }, ErrInvalidEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(Entries{good()}).Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, err)
			}
		})
	}
}

func TestEntries_LookupAndCategories(t *testing.T) {
	es := Build(nil)
	for _, name := range []string{"Google Analytics", "google analytics", "google-analytics"} {
		if e, ok := es.Lookup(name); !ok || e.Label != "Google Analytics" {
			t.Fatalf("lookup %q failed", name)
		}
	}
	if _, err := es.Find("nope"); !errors.Is(err, ErrUnknownEntry) {
		t.Fatalf("want ErrUnknownEntry, got %v", err)
	}
	total := 0
	for _, c := range Categories() {
		for _, e := range es.ByCategory(c) {
			if e.Category != c {
				t.Fatalf("%s in wrong category", e.Label)
			}
		}
		total += len(es.ByCategory(c))
	}
	if total != len(es) {
		t.Fatalf("categories cover %d of %d entries", total, len(es))
	}
	if got := es.ByCategory(Payments).Labels(); strings.Join(got, ",") != "Stripe,Lemon Squeezy" {
		t.Fatalf("unexpected payments: %v", got)
	}
}

func TestRootedAt(t *testing.T) {
	in := RootedAt("/srv/app/src")
	if got := in("./runtime/registry/npm"); got != "/srv/app/src/runtime/registry/npm" {
		t.Fatalf("unexpected %q", got)
	}
	if got := in("#build/npm"); got != "#build/npm" {
		t.Fatalf("non-relative specifier should be untouched, got %q", got)
	}
	if got := RootedAt("  ")("./x"); got != "./x" {
		t.Fatalf("empty root should be identity, got %q", got)
	}
}

func TestSlugifyAndCategory(t *testing.T) {
	cases := map[string]string{
		"Google Analytics": "google-analytics",
		"YouTube Player":   "youtube-player",
		"X Pixel":          "x-pixel",
		"  NPM ":           "npm",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
	if c, err := ParseCategory(" Payments "); err != nil || c != Payments {
		t.Fatalf("ParseCategory: %v %v", c, err)
	}
	if _, err := ParseCategory("misc"); err == nil {
		t.Fatal("want error for unknown category")
	}
}
