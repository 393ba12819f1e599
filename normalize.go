package bodytext

import (
	"regexp"
	"strings"
)

var (
	lineEndingRuns = regexp.MustCompile(`\r\n?`)
	horizontalRuns = regexp.MustCompile(`[ \t]+`)
	blankLineRuns  = regexp.MustCompile("\n{3,}")
)

// NormalizeWhitespace converts all line-ending variants to "\n", collapses
// runs of spaces and tabs to a single space, collapses three or more
// consecutive newlines down to exactly two, and trims the result.
// The transformation is idempotent.
func NormalizeWhitespace(s string) string {
	s = lineEndingRuns.ReplaceAllString(s, "\n")
	s = horizontalRuns.ReplaceAllString(s, " ")
	s = blankLineRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
