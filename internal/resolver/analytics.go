package resolver

import "strings"

const (
	googleTagBase       = "https://www.googletagmanager.com/gtag/js"
	plausibleBase       = "https://plausible.io/js/"
	cloudflareBeaconURL = "https://static.cloudflareinsights.com/beacon.min.js"
)

// GoogleAnalyticsInput holds the gtag measurement or property id.
type GoogleAnalyticsInput struct {
	ID string
}

// GoogleAnalyticsURL returns the gtag.js URL, with an id query parameter only
// when an id is set.
func GoogleAnalyticsURL(in GoogleAnalyticsInput) string {
	return withQuery(googleTagBase, map[string]string{"id": in.ID})
}

// GoogleAnalytics resolves options {"id"}.
func GoogleAnalytics(opts Options) (string, error) {
	id, err := opts.ident("google-analytics", "id")
	if err != nil {
		return "", err
	}
	return GoogleAnalyticsURL(GoogleAnalyticsInput{ID: id}), nil
}

// PlausibleInput lists script extensions such as "outbound-links".
type PlausibleInput struct {
	Extensions []string
}

// PlausibleURL splices the extensions into script.<ext>...js, in order.
func PlausibleURL(in PlausibleInput) string {
	exts := make([]string, 0, len(in.Extensions))
	for _, e := range in.Extensions {
		if e = strings.Trim(strings.TrimSpace(e), "."); e != "" {
			exts = append(exts, e)
		}
	}
	if len(exts) == 0 {
		return plausibleBase + "script.js"
	}
	return plausibleBase + "script." + strings.Join(exts, ".") + ".js"
}

// Plausible resolves options {"extension"}: a string or a list of strings.
func Plausible(opts Options) (string, error) {
	exts, err := opts.strs("plausible-analytics", "extension")
	if err != nil {
		return "", err
	}
	return PlausibleURL(PlausibleInput{Extensions: exts}), nil
}

// CloudflareWebAnalytics ignores options.
func CloudflareWebAnalytics(Options) (string, error) {
	return cloudflareBeaconURL, nil
}
