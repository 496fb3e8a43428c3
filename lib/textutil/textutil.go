package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)
var nonDigitRegex = regexp.MustCompile(`[^0-9]`)

// NormalizeKey turns a visible attribute label into a stable map key:
// lowercased, trimmed, runs of whitespace collapsed to a single underscore.
func NormalizeKey(label string) string {
	label = strings.ToLower(strings.Trim(label, " \n\t"))
	return whitespaceRegex.ReplaceAllString(label, "_")
}

// Digits strips everything but ASCII digits, e.g. turning a tel: href
// into a dialable number.
func Digits(s string) string {
	return nonDigitRegex.ReplaceAllString(s, "")
}
