package utils

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	slugTrim     = regexp.MustCompile(`^-+|-+$`)
)

// Slugify derives a URL-safe identifier from a display title: lowercase,
// drop everything but word characters, whitespace and hyphens, collapse any
// run of whitespace/underscore/hyphen into a single hyphen, trim the edges.
//
// The word-character filter is ASCII, so a title without any Latin letters or
// digits strips down to "". Callers must treat an empty result as a
// validation failure and reject the write instead of storing it.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return slugTrim.ReplaceAllString(s, "")
}
