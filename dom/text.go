package dom

import (
	"regexp"
	"strings"
)

// Runs of two or more whitespace characters, or any newline sequence,
// collapse to a single space.
var whitespaceRE = regexp.MustCompile(`[\r\n]+|\s{2,}`)

// NormalizeSpace strips leading and trailing whitespace and collapses
// interior whitespace runs to a single space.
func NormalizeSpace(s string) string {
	return whitespaceRE.ReplaceAllString(strings.TrimSpace(s), " ")
}
