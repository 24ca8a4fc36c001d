package utils

import (
	"net/http"
)

// RequestScheme resolves the public scheme of an inbound request, honoring
// the proxy header when the service sits behind a TLS-terminating frontend.
func RequestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
