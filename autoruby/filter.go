// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package autoruby

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// IsRubyEligible reports whether the grapheme cluster g may receive automatic
// ruby. It must begin with a letter of category Lo or Lm, and no rune of it
// may be kana, a katakana phonetic extension, or a fullwidth or halfwidth
// form. This admits ideographs and the iteration mark 々 and rejects text that
// already reads phonetically.
func IsRubyEligible(g string) bool {
	first, n := utf8.DecodeRuneInString(g)
	if n == 0 || !unicode.In(first, unicode.Lo, unicode.Lm) {
		return false
	}
	for _, r := range g {
		if isKana(r) {
			return false
		}
		switch width.LookupRune(r).Kind() {
		case width.EastAsianFullwidth, width.EastAsianHalfwidth:
			return false
		}
	}
	return true
}

// isKana reports whether r lies in the Hiragana, Katakana, or Katakana
// Phonetic Extensions block.
func isKana(r rune) bool {
	return (r >= 0x3040 && r <= 0x309F) || (r >= 0x30A0 && r <= 0x30FF) || (r >= 0x31F0 && r <= 0x31FF)
}
