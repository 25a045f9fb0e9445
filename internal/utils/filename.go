package utils

import (
	"regexp"
	"strings"
)

var (
	// Anything outside letters, digits, underscore, hyphen, space and dot
	invalidFilenameChars = regexp.MustCompile(`[^\p{L}\p{N}_\- .]`)
	// Runs of underscores left behind by replacement
	repeatedUnderscores = regexp.MustCompile(`_{2,}`)
)

// SanitizeFilename makes a string safe to use as a filename: invalid
// characters become underscores, runs collapse to one, and leading or
// trailing underscores and whitespace are stripped.
func SanitizeFilename(name string) string {
	clean := invalidFilenameChars.ReplaceAllString(name, "_")
	clean = repeatedUnderscores.ReplaceAllString(clean, "_")
	clean = strings.TrimSpace(strings.Trim(clean, "_"))

	if clean == "" {
		clean = "Untitled"
	}
	return clean
}
