package client

import (
	"net"
	"net/url"
	"strings"
)

// fallbackBaseURL is used when neither an override nor a usable origin is
// configured.
const fallbackBaseURL = "http://localhost:5000/api"

// ResolveBaseURL determines the API base address. Resolution order:
//
//  1. An explicit override, taken verbatim (minus a trailing slash).
//  2. The dashboard's own origin with its port swapped for backendPort and
//     "/api" appended.
//  3. A hard-coded localhost fallback.
func ResolveBaseURL(override, origin, backendPort string) string {
	if override != "" {
		return strings.TrimSuffix(override, "/")
	}

	if origin != "" {
		if u, err := url.Parse(origin); err == nil && u.Scheme != "" && u.Hostname() != "" {
			host := u.Hostname()
			if backendPort != "" {
				host = net.JoinHostPort(host, backendPort)
			}
			derived := url.URL{Scheme: u.Scheme, Host: host, Path: "/api"}
			return derived.String()
		}
	}

	return fallbackBaseURL
}
