// internal/app/system/sanitize/sanitize.go

// Package sanitize strips markup from free-text fields before they are
// persisted. Alert location and message are caller-supplied strings that get
// echoed back to every reader of the alert, so they are reduced to plain text.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Text removes all HTML elements and attributes from s and returns the
// trimmed plain text. Entities introduced by the sanitizer are unescaped so
// ordinary punctuation ("&", "<3") survives a round trip.
func Text(s string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(s)))
}
