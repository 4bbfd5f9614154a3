// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package lyrics

import (
	"unicode/utf8"
)

// FirstSyllable returns the location of the first syllable of s. It reports
// false if s has no syllables.
func (s *Source) FirstSyllable() (SyllableLocation, bool) {
	if len(s.Syllables) == 0 {
		return SyllableLocation{}, false
	}
	return SyllableLocation{}, true
}

// LastSyllable returns the location of the last syllable of s. It reports
// false if s has no syllables.
func (s *Source) LastSyllable() (SyllableLocation, bool) {
	n := len(s.Syllables)
	if n == 0 {
		return SyllableLocation{}, false
	}
	return SyllableLocation{Line: n - 1, Column: len(s.Syllables[n-1]) - 1}, true
}

// Syllable returns the syllable at loc, or nil if loc is out of range.
func (s *Source) Syllable(loc SyllableLocation) Syllable {
	if loc.Line < 0 || loc.Line >= len(s.Syllables) {
		return nil
	}
	line := s.Syllables[loc.Line]
	if loc.Column < 0 || loc.Column >= len(line) {
		return nil
	}
	return line[loc.Column]
}

// Clamp returns the location nearest to loc that lies within s. It is used
// to carry a position across a reparse that may have removed syllables. It
// reports false if s has no syllables.
func (s *Source) Clamp(loc SyllableLocation) (SyllableLocation, bool) {
	if len(s.Syllables) == 0 {
		return SyllableLocation{}, false
	}
	loc.Line = max(0, min(loc.Line, len(s.Syllables)-1))
	loc.Column = max(0, min(loc.Column, len(s.Syllables[loc.Line])-1))
	return loc, true
}

// NextSyllable returns the syllable after (forward) or before loc, moving
// across logical lines as needed. It reports false, returning loc unchanged,
// if there is no such syllable.
func (s *Source) NextSyllable(loc SyllableLocation, forward bool) (SyllableLocation, bool) {
	if s.Syllable(loc) == nil {
		return loc, false
	}
	step := -1
	if forward {
		step = 1
	}
	if col := loc.Column + step; col >= 0 && col < len(s.Syllables[loc.Line]) {
		return SyllableLocation{Line: loc.Line, Column: col}, true
	}
	line := loc.Line + step
	if line < 0 || line >= len(s.Syllables) {
		return loc, false
	}
	if forward {
		return SyllableLocation{Line: line}, true
	}
	return SyllableLocation{Line: line, Column: len(s.Syllables[line]) - 1}, true
}

// NextLine returns the location on the following (forward) or preceding
// logical line whose column is nearest to that of loc. It reports false,
// returning loc unchanged, if there is no such line.
func (s *Source) NextLine(loc SyllableLocation, forward bool) (SyllableLocation, bool) {
	if s.Syllable(loc) == nil {
		return loc, false
	}
	line := loc.Line - 1
	if forward {
		line = loc.Line + 1
	}
	if line < 0 || line >= len(s.Syllables) {
		return loc, false
	}
	return SyllableLocation{Line: line, Column: min(loc.Column, len(s.Syllables[line])-1)}, true
}

// SyllableLineForPhysical returns the logical line to display for the
// physical line at index i: the line itself if it is logical, otherwise the
// first logical line after it. It returns -1 if there is none.
func (s *Source) SyllableLineForPhysical(i int) int {
	n := s.Lines.LogicalIndex(i)
	if n < 0 {
		n = ^n
	}
	if n >= s.Lines.LogicalLineCount() {
		return -1
	}
	return n
}

// SubSyllableText returns the display text of sub: the character of the
// flattened text or of the ruby it refers to. A sub-syllable of a syllable
// division refers to the division mark, so its text is the base text the
// division is attached to.
func (s *Source) SubSyllableText(sub SubSyllable) string {
	if sub.IsSimple() {
		return charAt(s.Text, sub.CharacterIndex)
	}
	switch spec := s.Specifiers[sub.AttachedIndex].(type) {
	case Ruby:
		return charAt(spec.Text, sub.CharacterIndex)
	case SyllableDivision:
		return s.Text[spec.Range.Start:spec.Range.End()]
	default:
		panic(badSpecifier(spec))
	}
}

// charAt returns the character beginning at byte offset i of text.
func charAt(text string, i int) string {
	if i < 0 || i >= len(text) {
		return ""
	}
	_, n := utf8.DecodeRuneInString(text[i:])
	return text[i : i+n]
}
