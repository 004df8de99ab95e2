// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix (e.g., "/dashboard").
	// If empty, any safe URL is allowed.
	AllowedPrefix string

	// ExcludedSubpaths are subpath patterns to reject.
	// These prevent redirect loops back to action pages.
	ExcludedSubpaths []string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string
}

// SafeBackURL extracts and validates a return URL from the request's
// "return" query parameter. Unsafe or disallowed values yield the fallback.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	return SafeReturn(query.Get(r, "return"), opts)
}

// SafeReturn validates a candidate return URL against opts.
func SafeReturn(candidate string, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(strings.TrimSpace(candidate), "", "")
	if ret == "" || !strings.HasPrefix(ret, "/") || strings.HasPrefix(ret, "//") {
		return opts.Fallback
	}
	if opts.AllowedPrefix != "" && !strings.HasPrefix(ret, opts.AllowedPrefix) {
		return opts.Fallback
	}
	for _, excluded := range opts.ExcludedSubpaths {
		if strings.Contains(ret, excluded) {
			return opts.Fallback
		}
	}
	return ret
}

// DashboardReturn is where a completed sign-in may send the operator.
var DashboardReturn = BackURLOptions{
	AllowedPrefix:    "/dashboard",
	ExcludedSubpaths: []string{"/auth/"},
	Fallback:         "/dashboard",
}
