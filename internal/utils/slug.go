package utils

import (
	"regexp"
	"strings"
)

var (
	slugSpaces   = regexp.MustCompile(`\s+`)
	slugStrip    = regexp.MustCompile(`[^\w\-]+`)
	slugCollapse = regexp.MustCompile(`\-\-+`)
)

// Slugify derives a URL slug from a title: lowercase, spaces to hyphens,
// everything outside [a-z0-9_-] stripped, runs of hyphens collapsed.
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
