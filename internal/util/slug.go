package util

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	invalidChars = regexp.MustCompile(`[^a-z0-9\- ]+`) // Include space in the character set to handle it separately
	spaceRuns    = regexp.MustCompile(`[ ]+`)
)

// Slugify generates a filesystem- and header-safe slug from a given string.
// Used to build attachment filenames for recording downloads and report
// exports (campaign names regularly contain accents and punctuation).
func Slugify(input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("no input string supplied to Slugify")
	}

	normalized := norm.NFD.String(input)

	withoutDiacritics, _, err := transform.String(runes.Remove(runes.In(unicode.Mn)), normalized)
	if err != nil {
		return "", fmt.Errorf("error creating slug: %v", err)
	}

	lowerCase := strings.ToLower(withoutDiacritics)

	hyphenated := invalidChars.ReplaceAllString(lowerCase, "-")
	hyphenated = spaceRuns.ReplaceAllString(hyphenated, "-")

	trimmed := strings.Trim(hyphenated, "-")

	if trimmed == "" {
		return "", fmt.Errorf("input %q produced an empty slug", input)
	}

	return trimmed, nil
}
