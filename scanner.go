// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lyriser

import (
	"go4.org/mem"
)

// A Scanner is a character cursor over a single source string. The input is
// consumed one line at a time: call NextLine to move to a line, then Peek and
// Read to consume its content. Line terminators are never returned as content.
//
//	s := lyriser.NewScanner(input)
//	for s.NextLine() {
//	   for {
//	      if _, ok := s.Peek(); !ok {
//	         break
//	      }
//	      log.Printf("Next character: %q", s.Read())
//	   }
//	}
type Scanner struct {
	src  mem.RO
	term mem.RO // terminator consumed by the last call to NextLine

	line      int // 0-based; -1 before the first line
	lineStart int // offset of the first byte of the current line
	pos       int // offset of the next unread byte
}

// NewScanner constructs a new scanner that consumes text.
func NewScanner(text string) *Scanner { return &Scanner{src: mem.S(text), line: -1} }

// NextLine advances s to the beginning of the next line and reports whether
// there is such a line. The first call moves to the first line, which always
// exists even if the input is empty. Any unread content of the current line
// is skipped along with its terminator, which may be "\r", "\n", or "\r\n".
func (s *Scanner) NextLine() bool {
	s.term = mem.RO{}
	if s.line >= 0 {
		for {
			if s.pos >= s.src.Len() {
				return false
			}
			start := s.pos
			ch := s.src.At(s.pos)
			s.pos++
			if ch == '\r' {
				if s.pos < s.src.Len() && s.src.At(s.pos) == '\n' {
					s.pos++
				}
			} else if ch != '\n' {
				continue
			}
			s.term = s.src.Slice(start, s.pos)
			break
		}
	}
	s.line++
	s.lineStart = s.pos
	return true
}

// Terminator returns the exact line terminator consumed by the most recent
// call to NextLine. It is empty after the first call and at the end of input.
func (s *Scanner) Terminator() string { return s.term.StringCopy() }

// Peek reports the next rune of the current line without consuming it. It
// returns false at the end of the line.
func (s *Scanner) Peek() (rune, bool) {
	if s.pos >= s.src.Len() {
		return 0, false
	}
	r, _ := mem.DecodeRune(s.src.SliceFrom(s.pos))
	if r == '\r' || r == '\n' {
		return 0, false
	}
	return r, true
}

// Read consumes the next rune of the current line and returns its undecoded
// text. Invalid UTF-8 is consumed one byte at a time. Read panics if the
// scanner is at the end of a line; callers must check with Peek first.
func (s *Scanner) Read() string {
	if _, ok := s.Peek(); !ok {
		panic("lyriser: read past the end of a line")
	}
	_, n := mem.DecodeRune(s.src.SliceFrom(s.pos))
	if n == 0 {
		n = 1
	}
	text := s.src.Slice(s.pos, s.pos+n).StringCopy()
	s.pos += n
	return text
}

// Location returns the location of the next unread byte.
func (s *Scanner) Location() SourceLocation {
	return SourceLocation{
		Index:  s.pos,
		Line:   s.line + 1,
		Column: s.pos - s.lineStart + 1,
	}
}
