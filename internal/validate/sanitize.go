package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

var (
	tagPattern     = regexp.MustCompile(`<[^>]*>`)
	markupPattern  = regexp.MustCompile(`[<>'"]`)
	controlPattern = regexp.MustCompile(`[\x00-\x1F\x7F-\x{9F}]`)
)

// Sanitize strips markup and control characters from input and trims the
// result. Tags are removed before stray brackets so text between tags survives.
func Sanitize(input any) string {
	if isFalsy(input) {
		return ""
	}

	var s string
	if str, ok := input.(string); ok {
		s = str
	} else if num, ok := stringOrNumber(input); ok {
		s = num
	} else {
		s = fmt.Sprint(input)
	}

	s = tagPattern.ReplaceAllString(s, "")
	s = markupPattern.ReplaceAllString(s, "")
	s = controlPattern.ReplaceAllString(s, "")
	return strings.TrimFunc(s, isTrimmable)
}

// isTrimmable matches the whitespace stripped from both ends of input,
// including the byte order mark.
func isTrimmable(r rune) bool {
	return unicode.IsSpace(r) || r == '\uFEFF'
}
