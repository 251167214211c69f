package censor

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// mask replaces every non-overlapping match of re in s with a same-length
// run of '*'. Length is counted in runes, not bytes, so multi-byte
// characters keep the censored text aligned with the original. All spans
// are located against the incoming s before any are replaced. The built-in
// expressions never match a run of stars, so their passes are stable when
// repeated; a custom pattern that matches '*' re-censors its own output.
func mask(s string, re *regexp.Regexp) string {
	spans := re.FindAllStringIndex(s, -1)
	if len(spans) == 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	prev := 0
	for _, span := range spans {
		b.WriteString(s[prev:span[0]])
		b.WriteString(strings.Repeat("*", utf8.RuneCountInString(s[span[0]:span[1]])))
		prev = span[1]
	}
	b.WriteString(s[prev:])
	return b.String()
}
