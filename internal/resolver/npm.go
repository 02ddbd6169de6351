package resolver

import (
	"net/url"
	"strings"
)

const (
	unpkgBase     = "https://unpkg.com/"
	npmDefaultTag = "latest"
)

// NpmInput addresses a file inside a published package on the unpkg CDN.
type NpmInput struct {
	PackageName string
	Version     string
	File        string
}

// NpmURL returns https://unpkg.com/<pkg>@<version>[/<file>]. Version defaults
// to "latest". File is joined relative to the package root and cannot escape it.
func NpmURL(in NpmInput) string {
	version := in.Version
	if version == "" {
		version = npmDefaultTag
	}
	base := unpkgBase + escapePackage(in.PackageName) + "@" + escapeSegment(version)
	return withBase(base, in.File)
}

// Npm resolves options {"packageName", "version", "file"}.
func Npm(opts Options) (string, error) {
	name, err := opts.str("npm", "packageName")
	if err != nil {
		return "", err
	}
	version, err := opts.ident("npm", "version")
	if err != nil {
		return "", err
	}
	file, err := opts.str("npm", "file")
	if err != nil {
		return "", err
	}
	return NpmURL(NpmInput{PackageName: strings.TrimSpace(name), Version: strings.TrimSpace(version), File: file}), nil
}

// escapePackage keeps the "@scope/name" separator while escaping each part.
func escapePackage(name string) string {
	parts := strings.Split(name, "/")
	for i, p := range parts {
		parts[i] = escapeSegment(p)
	}
	return strings.Join(parts, "/")
}

// escapeSegment escapes s as one path element. PathEscape leaves "@" alone,
// which unpkg uses as the scope and version marker.
func escapeSegment(s string) string {
	return url.PathEscape(s)
}
