// Package slug derives URL-safe identifiers from titles.
package slug

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Pattern is the canonical slug shape: lowercase alphanumeric runs
// separated by single hyphens.
var Pattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Make slugifies a title: lowercase, non-alphanumeric runs collapsed
// to single hyphens, no leading or trailing hyphen.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonSlugChars.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Expand prefixes a colliding slug with the first 8 hex chars of a
// fresh UUIDv4. Callers retry the insert at most once with the result.
func Expand(old string) string {
	return uuid.NewString()[:8] + "-" + old
}

// Valid reports whether s matches Pattern.
func Valid(s string) bool {
	return Pattern.MatchString(s)
}
