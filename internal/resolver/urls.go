package resolver

import (
	"net/url"
	"path"
	"strings"
)

// joinURL appends path segments to base. Each segment is escaped as a single
// path element, and empty segments are dropped so a missing value never
// produces "//".
func joinURL(base string, segments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	elems := make([]string, 0, len(segments))
	for _, s := range segments {
		if s == "" {
			continue
		}
		elems = append(elems, url.PathEscape(s))
	}
	return u.JoinPath(elems...).String()
}

// withQuery sets query parameters on base. Parameters with an empty value
// are omitted entirely.
func withQuery(base string, params map[string]string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	for k, v := range params {
		if v == "" {
			continue
		}
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return u.String()
}

// withBase joins a file path against base. The file is treated as rooted at
// base: leading "/" and any ".." elements cannot climb above it.
func withBase(base, file string) string {
	file = strings.TrimSpace(file)
	if file == "" {
		return base
	}
	rooted := path.Clean("/" + file)
	if rooted == "/" {
		return base
	}
	if strings.HasSuffix(file, "/") {
		rooted += "/"
	}
	u, err := url.Parse(base)
	if err != nil {
		return strings.TrimRight(base, "/") + rooted
	}
	return u.JoinPath(rooted).String()
}
