package lyriser

import "cmp"

// A SourceLocation describes a position in source text.
//
// Locations are ordered and compared by Index alone; Line and Column are
// carried for diagnostics.
type SourceLocation struct {
	Index  int // byte offset from the start of the document, 0-based
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 1-based
}

// Compare returns -1, 0, or +1 according to whether loc is before, at, or
// after other.
func (loc SourceLocation) Compare(other SourceLocation) int { return cmp.Compare(loc.Index, other.Index) }

// Before reports whether loc is strictly before other.
func (loc SourceLocation) Before(other SourceLocation) bool { return loc.Index < other.Index }

// Difference reports the number of bytes from reference to loc.
func (loc SourceLocation) Difference(reference SourceLocation) int { return loc.Index - reference.Index }

// A SourceSpan describes a contiguous span of source text.
// End is never before Start.
type SourceSpan struct {
	Start SourceLocation // inclusive
	End   SourceLocation // noninclusive
}

// Span constructs a span from start to end.
func Span(start, end SourceLocation) SourceSpan { return SourceSpan{Start: start, End: end} }

// Len reports the length of s in bytes.
func (s SourceSpan) Len() int { return s.End.Difference(s.Start) }

// IsEmpty reports whether s covers no source text.
func (s SourceSpan) IsEmpty() bool { return s.Len() == 0 }

// Contains reports whether the byte offset i lies within s.
func (s SourceSpan) Contains(i int) bool { return s.Start.Index <= i && i < s.End.Index }

// Equal reports whether s and o cover the same source offsets.
func (s SourceSpan) Equal(o SourceSpan) bool {
	return s.Start.Index == o.Start.Index && s.End.Index == o.End.Index
}
