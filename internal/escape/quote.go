// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package escape handles escaping of characters that have a syntactic meaning
// in lyrics markup.
package escape

import (
	"strings"
	"unicode/utf8"

	"go4.org/mem"
)

// Char is the escape character. It forces the character that follows it to
// be read literally.
const Char = '`'

// Reserved lists the characters that must be escaped to appear literally.
const Reserved = "|()[]`"

// Grouping lists the syllable grouping markers. They are ordinary characters
// when escaped.
const Grouping = "{}"

// IsReserved reports whether r is one of the reserved syntax characters.
func IsReserved(r rune) bool { return r < utf8.RuneSelf && strings.IndexByte(Reserved, byte(r)) >= 0 }

// IsGrouping reports whether r is a syllable grouping marker.
func IsGrouping(r rune) bool { return r == '{' || r == '}' }

// Quote escapes src so that the markup reproduces its characters literally.
// Each reserved character and grouping marker is preceded by Char; all other
// input is copied unchanged.
func Quote(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for src.Len() != 0 {
		r, n := mem.DecodeRune(src)
		if n == 0 {
			n = 1
		}
		if IsReserved(r) || IsGrouping(r) {
			buf = append(buf, Char)
		}
		buf = mem.Append(buf, src.SliceTo(n))
		src = src.SliceFrom(n)
	}
	return buf
}
