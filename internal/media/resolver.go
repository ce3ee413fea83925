// Package media turns stored media paths into URLs clients can fetch.
package media

import (
	"net/http"
	"strings"
)

// Resolver joins stored relative paths onto a media base URL.
// A relative base is made absolute with the scheme and host of the request.
type Resolver struct {
	baseURL string
}

func NewResolver(baseURL string) *Resolver {
	if baseURL != "" && !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Resolver{baseURL: baseURL}
}

// BaseURL returns the configured base, always ending in a slash when set.
func (r *Resolver) BaseURL() string {
	return r.baseURL
}

// Resolve returns the public URL for path, or nil when path is empty.
// req may be nil, in which case a relative base stays relative.
func (r *Resolver) Resolve(req *http.Request, path string) *string {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if IsAbsolute(path) {
		return &path
	}

	url := r.baseURL + strings.TrimPrefix(path, "/")
	if !IsAbsolute(url) && req != nil {
		url = Origin(req) + "/" + strings.TrimPrefix(url, "/")
	}
	return &url
}

// IsAbsolute reports whether s already carries an http or https scheme.
func IsAbsolute(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// Origin returns scheme://host for req, preferring proxy headers.
func Origin(req *http.Request) string {
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	if proto := firstValue(req.Header.Get("X-Forwarded-Proto")); proto != "" {
		scheme = proto
	}

	host := req.Host
	if fwd := firstValue(req.Header.Get("X-Forwarded-Host")); fwd != "" {
		host = fwd
	}
	return scheme + "://" + host
}

// firstValue takes the left-most entry of a comma separated proxy header.
func firstValue(header string) string {
	if i := strings.IndexByte(header, ','); i >= 0 {
		header = header[:i]
	}
	return strings.TrimSpace(header)
}
