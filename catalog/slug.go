package catalog

import (
	"regexp"
	"strings"
)

var (
	nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	slugOrID = regexp.MustCompile(`(?i)^[a-z0-9-]+$`)
)

// Slugify converts a human-readable name into a URL-safe slug: lowercase,
// every maximal run of non-alphanumeric characters becomes a single hyphen.
// Example: "Dome Cameras" -> "dome-cameras". Stored slugs, URL resolution and
// duplicate detection all assume exactly this transform, so it is idempotent:
// Slugify(Slugify(x)) == Slugify(x).
func Slugify(name string) string {
	return nonAlnum.ReplaceAllString(strings.ToLower(name), "-")
}

// ValidKey reports whether a path segment can possibly be a slug or a hex
// object ID. The check is case-insensitive: stored slugs are always
// lowercase, but a raw object id may arrive with uppercase hex digits and
// still has to reach the id fallback. Anything else is rejected before
// touching the database.
func ValidKey(key string) bool {
	return slugOrID.MatchString(key)
}
