package vocab

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// leet maps common substitution characters back to the letters they stand in
// for. It is applied only on the second matching pass, so in ordinary text
// these characters keep acting as word boundaries.
var leet = map[rune]rune{
	'0': 'o',
	'1': 'i',
	'3': 'e',
	'4': 'a',
	'5': 's',
	'7': 't',
	'@': 'a',
	'$': 's',
	'!': 'i',
}

// foldRune lowercases r and strips diacritics, so "FÜCK" walks the trie the
// same as "fuck". NFKD places the base letter first in a decomposition;
// standalone combining marks fall out as non-letters at the boundary check.
func foldRune(r rune) rune {
	r = unicode.ToLower(r)
	if r < utf8.RuneSelf {
		return r
	}
	d := norm.NFKD.String(string(r))
	base, _ := utf8.DecodeRuneInString(d)
	return unicode.ToLower(base)
}

// leetRune folds r and then applies the substitution table.
func leetRune(r rune) rune {
	r = foldRune(r)
	if sub, ok := leet[r]; ok {
		return sub
	}
	return r
}
