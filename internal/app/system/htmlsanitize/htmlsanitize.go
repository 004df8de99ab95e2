// Package htmlsanitize cleans strings that arrive from the membership
// platform before they are shown on the dashboard or returned as JSON.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Plain strips all markup from s and returns plain text. Entities produced
// by the policy are decoded again, since templates escape on output.
func Plain(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
