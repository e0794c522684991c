// Package slug derives URL-safe identifiers from titles.
package slug

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	disallowed = regexp.MustCompile(`[^\w-]+`)
)

// Make lowercases the title, collapses runs of whitespace into a single
// hyphen and strips everything that is not a word character or hyphen.
// A title with no word characters yields an empty slug; callers reject
// that before writing.
func Make(title string) string {
	s := strings.ToLower(title)
	s = whitespace.ReplaceAllString(s, "-")
	s = disallowed.ReplaceAllString(s, "")
	return s
}
