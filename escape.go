// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lyriser

import (
	"unicode/utf8"

	"github.com/calbonaler/lyriser/internal/escape"

	"go4.org/mem"
)

// Syntax characters of the markup.
const (
	RubyBaseStart = '|' // starts a multi-character ruby base
	RubyStart     = '(' // starts ruby text
	RubyEnd       = ')' // ends ruby text
	SilentStart   = '[' // starts a silent region
	SilentEnd     = ']' // ends a silent region
	EscapeChar    = '`' // forces the next character to be literal

	StartGrouping = '{' // opens a syllable group unless escaped
	StopGrouping  = '}' // closes a syllable group unless escaped
)

// IsEscapeRequired reports whether the grapheme g is one of the six reserved
// syntax characters and must be escaped to appear literally.
func IsEscapeRequired(g string) bool {
	r, n := utf8.DecodeRuneInString(g)
	return n == len(g) && n > 0 && escape.IsReserved(r)
}

// Escape returns markup that reproduces text literally. Reserved characters
// and grouping markers are preceded by the escape character.
func Escape(text string) string { return string(escape.Quote(mem.S(text))) }
