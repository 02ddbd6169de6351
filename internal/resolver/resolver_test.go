package resolver

import (
	"errors"
	"net/url"
	"strings"
	"testing"
)

func TestResolvers_Table(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
		opts Options
		want string
	}{
		{"ga with id", GoogleAnalytics, Options{"id": "UA-123"}, "https://www.googletagmanager.com/gtag/js?id=UA-123"},
		{"ga empty", GoogleAnalytics, Options{}, "https://www.googletagmanager.com/gtag/js"},
		{"ga nil opts", GoogleAnalytics, nil, "https://www.googletagmanager.com/gtag/js"},
		{"plausible single", Plausible, Options{"extension": "hash"}, "https://plausible.io/js/script.hash.js"},
		{"plausible list", Plausible, Options{"extension": []string{"outbound-links", "file-downloads"}},
			"https://plausible.io/js/script.outbound-links.file-downloads.js"},
		{"plausible any list", Plausible, Options{"extension": []any{"b", "a"}}, "https://plausible.io/js/script.b.a.js"},
		{"plausible empty", Plausible, Options{}, "https://plausible.io/js/script.js"},
		{"cloudflare", CloudflareWebAnalytics, Options{"token": "x"}, "https://static.cloudflareinsights.com/beacon.min.js"},
		{"segment key", Segment, Options{"writeKey": "abc"}, "https://cdn.segment.com/analytics.js/v1/abc/analytics.min.js"},
		{"segment empty", Segment, Options{}, "https://cdn.segment.com/analytics.js/v1/analytics.min.js"},
		{"meta pixel", MetaPixel, nil, "https://connect.facebook.net/en_US/fbevents.js"},
		{"intercom", Intercom, Options{"app_id": "akg5rmxb"}, "https://widget.intercom.io/widget/akg5rmxb"},
		{"intercom empty", Intercom, Options{}, "https://widget.intercom.io/widget"},
		{"hotjar", Hotjar, Options{"id": 3456}, "https://static.hotjar.com/c/hotjar-3456.js?sv=6"},
		{"hotjar float id and sv", Hotjar, Options{"id": float64(3456), "sv": "7"}, "https://static.hotjar.com/c/hotjar-3456.js?sv=7"},
		{"hotjar empty", Hotjar, Options{}, "https://static.hotjar.com/c/hotjar-.js?sv=6"},
		{"npm latest", Npm, Options{"packageName": "foo"}, "https://unpkg.com/foo@latest"},
		{"npm file", Npm, Options{"packageName": "foo", "version": "2.0.0", "file": "/dist/x.js"}, "https://unpkg.com/foo@2.0.0/dist/x.js"},
		{"npm relative file", Npm, Options{"packageName": "foo", "file": "dist/x.js"}, "https://unpkg.com/foo@latest/dist/x.js"},
		{"npm scoped", Npm, Options{"packageName": "@scope/pkg", "version": "1.2.3"}, "https://unpkg.com/@scope/pkg@1.2.3"},
		{"npm no escape", Npm, Options{"packageName": "foo", "file": "/../../etc/passwd"}, "https://unpkg.com/foo@latest/etc/passwd"},
		{"npm root file", Npm, Options{"packageName": "foo", "file": "/"}, "https://unpkg.com/foo@latest"},
		{"npm empty", Npm, Options{}, "https://unpkg.com/@latest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.opts)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestResolvers_EmptyOptionsYieldValidURL(t *testing.T) {
	all := map[string]Func{
		"ga": GoogleAnalytics, "plausible": Plausible, "cloudflare": CloudflareWebAnalytics,
		"segment": Segment, "meta": MetaPixel, "intercom": Intercom, "hotjar": Hotjar, "npm": Npm,
	}
	for name, fn := range all {
		for _, opts := range []Options{nil, {}} {
			got, err := fn(opts)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", name, err)
			}
			if got == "" {
				t.Fatalf("%s: empty URL", name)
			}
			if strings.Contains(got, "undefined") || strings.Contains(strings.TrimPrefix(got, "https://"), "//") {
				t.Fatalf("%s: malformed URL %q", name, got)
			}
			u, err := url.Parse(got)
			if err != nil || u.Scheme != "https" || u.Host == "" {
				t.Fatalf("%s: not an absolute https URL: %q (%v)", name, got, err)
			}
		}
	}
}

func TestResolvers_Idempotent(t *testing.T) {
	opts := Options{
		"id": "UA-1", "extension": []string{"a", "b"}, "writeKey": "k", "app_id": "x",
		"packageName": "foo", "version": "1.0.0", "file": "index.js",
	}
	for _, fn := range []Func{GoogleAnalytics, Plausible, CloudflareWebAnalytics, Segment, MetaPixel, Intercom, Hotjar, Npm} {
		a, errA := fn(opts)
		b, errB := fn(Options{
			"id": "UA-1", "extension": []string{"a", "b"}, "writeKey": "k", "app_id": "x",
			"packageName": "foo", "version": "1.0.0", "file": "index.js",
		})
		if errA != nil || errB != nil {
			t.Fatalf("unexpected errors: %v / %v", errA, errB)
		}
		if a != b {
			t.Fatalf("resolver not deterministic: %q vs %q", a, b)
		}
	}
}

func TestResolvers_GoogleAnalyticsIDParam(t *testing.T) {
	got, _ := GoogleAnalytics(Options{"id": "UA-123"})
	u, _ := url.Parse(got)
	if u.Query().Get("id") != "UA-123" {
		t.Fatalf("want id=UA-123 in %q", got)
	}
	got, _ = GoogleAnalytics(Options{})
	u, _ = url.Parse(got)
	if _, ok := u.Query()["id"]; ok {
		t.Fatalf("id parameter must be omitted, got %q", got)
	}
}

func TestResolvers_InvalidTypes(t *testing.T) {
	tests := []struct {
		name  string
		fn    Func
		opts  Options
		field string
	}{
		{"plausible number", Plausible, Options{"extension": 42}, "extension"},
		{"plausible mixed list", Plausible, Options{"extension": []any{"a", 1}}, "extension"},
		{"segment bool", Segment, Options{"writeKey": true}, "writeKey"},
		{"hotjar fractional id", Hotjar, Options{"id": 1.5}, "id"},
		{"ga map", GoogleAnalytics, Options{"id": map[string]string{}}, "id"},
		{"npm package int", Npm, Options{"packageName": 7}, "packageName"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.fn(tt.opts)
			if !errors.Is(err, ErrInvalidOptions) {
				t.Fatalf("want ErrInvalidOptions, got %v", err)
			}
			var oe *OptionError
			if !errors.As(err, &oe) || oe.Field != tt.field {
				t.Fatalf("want OptionError for %q, got %#v", tt.field, err)
			}
		})
	}
}

func TestRequire(t *testing.T) {
	if err := Require(Options{"packageName": "foo"}, "npm", "packageName"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, opts := range []Options{nil, {}, {"packageName": ""}, {"packageName": "  "}, {"packageName": []string{}}} {
		err := Require(opts, "npm", "packageName")
		if !errors.Is(err, ErrInvalidOptions) {
			t.Fatalf("opts %v: want ErrInvalidOptions, got %v", opts, err)
		}
		if !strings.Contains(err.Error(), "npm") || !strings.Contains(err.Error(), "packageName") {
			t.Fatalf("error should name provider and field: %v", err)
		}
	}
}

func TestParsePairs(t *testing.T) {
	opts, err := ParsePairs([]string{"id=3456", "extension=a", "extension=b", "extension=c", "file=/x=y.js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts["id"] != "3456" || opts["file"] != "/x=y.js" {
		t.Fatalf("unexpected opts: %#v", opts)
	}
	exts, ok := opts["extension"].([]string)
	if !ok || strings.Join(exts, ",") != "a,b,c" {
		t.Fatalf("want ordered extension list, got %#v", opts["extension"])
	}

	if _, err := ParsePairs([]string{"novalue"}); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("want ErrInvalidOptions, got %v", err)
	}
	if _, err := ParsePairs([]string{"=x"}); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("want ErrInvalidOptions, got %v", err)
	}
}
