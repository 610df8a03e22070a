package story

import (
	"regexp"
	"strings"
)

var (
	blockComment = regexp.MustCompile(`(?s)###.*?###`)
	lineComment  = regexp.MustCompile(`#[^\n]*`)
)

// CleanSource removes comments from a story source. A block comment is any
// span delimited by a `###` pair, markers included; a line comment runs from
// a `#` to the end of the line. Text outside comment spans is unchanged
// byte-for-byte, and the operation is idempotent.
//
// A removed block span is replaced by the newlines it contained, so line
// numbers reported against the original text stay accurate.
//
// The rules deliberately do not special-case `#` inside quoted string
// literals: a hash in a string still starts a comment.
func CleanSource(source string) string {
	cleaned := blockComment.ReplaceAllStringFunc(source, func(span string) string {
		return strings.Repeat("\n", strings.Count(span, "\n"))
	})
	return lineComment.ReplaceAllString(cleaned, "")
}
