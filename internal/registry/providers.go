package registry

import "github.com/Chapsvision-dev/script-registry/internal/resolver"

// provider is the compiled-in description of one table row, before path
// indirection.
type provider struct {
	label    string
	category Category
	source   Source
	logo     Logo
	export   string
	module   string
}

// providers returns a fresh copy of the table on every call.
func providers() []provider {
	return []provider{
		// analytics
		{
			label:    "Google Analytics",
			category: Analytics,
			source:   Dynamic{Resolve: resolver.GoogleAnalytics},
			logo:     SingleLogo(googleAnalyticsLogo),
			export:   "useScriptGoogleAnalytics",
			module:   "./runtime/registry/google-analytics",
		},
		{
			label:    "Plausible Analytics",
			category: Analytics,
			source:   Dynamic{Resolve: resolver.Plausible},
			logo:     SingleLogo(plausibleLogo),
			export:   "useScriptPlausibleAnalytics",
			module:   "./runtime/registry/plausible-analytics",
		},
		{
			label:    "Cloudflare Web Analytics",
			category: Analytics,
			source:   Dynamic{Resolve: resolver.CloudflareWebAnalytics},
			logo:     SingleLogo(cloudflareLogo),
			export:   "useScriptCloudflareWebAnalytics",
			module:   "./runtime/registry/cloudflare-web-analytics",
		},
		{
			// the script breaks when served from another origin
			label:    "Fathom Analytics",
			category: Analytics,
			source:   Unbundleable{},
			logo:     SingleLogo(fathomLogo),
			export:   "useScriptFathomAnalytics",
			module:   "./runtime/registry/fathom-analytics",
		},
		{
			label:    "Matomo Analytics",
			category: Analytics,
			source:   Unbundleable{},
			logo:     SingleLogo(matomoLogo),
			export:   "useScriptMatomoAnalytics",
			module:   "./runtime/registry/matomo-analytics",
		},
		// tracking
		{
			label:    "Google Tag Manager",
			category: Tracking,
			logo:     SingleLogo(googleTagManagerLogo),
			export:   "useScriptGoogleTagManager",
			module:   "./runtime/registry/google-tag-manager",
		},
		{
			label:    "Segment",
			category: Tracking,
			source:   Dynamic{Resolve: resolver.Segment, Required: []string{"writeKey"}},
			logo:     SingleLogo(segmentLogo),
			export:   "useScriptSegment",
			module:   "./runtime/registry/segment",
		},
		{
			label:    "Meta Pixel",
			category: Tracking,
			source:   Dynamic{Resolve: resolver.MetaPixel},
			logo:     SingleLogo(metaPixelLogo),
			export:   "useScriptMetaPixel",
			module:   "./runtime/registry/meta-pixel",
		},
		{
			label:    "X Pixel",
			category: Tracking,
			source:   Static{URL: "https://static.ads-twitter.com/uwt.js"},
			logo:     ThemedLogo{Dark: xPixelLogoDark, Light: xPixelLogoLight},
			export:   "useScriptXPixel",
			module:   "./runtime/registry/x-pixel",
		},
		// marketing
		{
			label:    "Intercom",
			category: Marketing,
			source:   Dynamic{Resolve: resolver.Intercom, Required: []string{"app_id"}},
			logo:     SingleLogo(intercomLogo),
			export:   "useScriptIntercom",
			module:   "./runtime/registry/intercom",
		},
		{
			label:    "Hotjar",
			category: Marketing,
			source:   Dynamic{Resolve: resolver.Hotjar, Required: []string{"id"}},
			logo:     SingleLogo(hotjarLogo),
			export:   "useScriptHotjar",
			module:   "./runtime/registry/hotjar",
		},
		// payments
		{
			label:    "Stripe",
			category: Payments,
			source:   Unbundleable{},
			logo:     SingleLogo(stripeLogo),
			export:   "useScriptStripe",
			module:   "./runtime/registry/stripe",
		},
		{
			label:    "Lemon Squeezy",
			category: Payments,
			source:   Unbundleable{},
			logo:     SingleLogo(lemonSqueezyLogo),
			export:   "useScriptLemonSqueezy",
			module:   "./runtime/registry/lemon-squeezy",
		},
		// content
		{
			label:    "Vimeo Player",
			category: Content,
			logo:     SingleLogo(vimeoLogo),
			export:   "useScriptVimeoPlayer",
			module:   "./runtime/registry/vimeo-player",
		},
		{
			label:    "YouTube Player",
			category: Content,
			logo:     SingleLogo(youtubeLogo),
			export:   "useScriptYouTubePlayer",
			module:   "./runtime/registry/youtube-player",
		},
		{
			label:    "Google Maps",
			category: Content,
			logo:     SingleLogo(googleMapsLogo),
			export:   "useScriptGoogleMaps",
			module:   "./runtime/registry/google-maps",
		},
		// other
		{
			label:    "NPM",
			category: Utility,
			source:   Dynamic{Resolve: resolver.Npm, Required: []string{"packageName"}},
			logo:     SingleLogo(npmLogo),
			export:   "useScriptNpm",
			module:   "./runtime/registry/npm",
		},
	}
}
