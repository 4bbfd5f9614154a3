// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package lyrics flattens parsed lyrics markup into display text, attached
// specifiers, and a syllable index for navigation.
//
// A Source is built from the lines produced by ast.Parse. The text of all
// lines is joined with "\n" into one document-wide string, and every
// specifier range is an offset in that string. A LineMap records where each
// source ("physical") line begins, and which of them carry syllables; those
// are the "logical" lines used for navigation.
//
//	src := lyrics.Parse(input, nil)
//	for i := range src.Lines.PhysicalLineCount() {
//	   fmt.Println(src.LineText(i), src.LineSpecifiers(i))
//	}
package lyrics

import (
	"slices"

	"github.com/calbonaler/lyriser"
	"github.com/calbonaler/lyriser/ast"
)

// A PhysicalLine locates the flattened text and specifiers of one source
// line within a Source.
type PhysicalLine struct {
	TextStart      int // byte offset of the line in Source.Text
	TextLength     int // length of the line text in bytes
	AttachedStart  int // index of the first specifier of the line
	AttachedLength int // number of specifiers of the line
}

// A LineMap maps between physical lines and logical lines.
type LineMap struct {
	physical []PhysicalLine
	logical  []int // physical index of each logical line, increasing
}

// NewLineMap constructs a LineMap. The entries of logical must be valid
// indexes of physical, in increasing order.
func NewLineMap(physical []PhysicalLine, logical []int) LineMap {
	return LineMap{physical: slices.Clone(physical), logical: slices.Clone(logical)}
}

// PhysicalLineCount reports the number of physical lines.
func (m LineMap) PhysicalLineCount() int { return len(m.physical) }

// LogicalLineCount reports the number of logical lines.
func (m LineMap) LogicalLineCount() int { return len(m.logical) }

// PhysicalLine returns the physical line at index i.
func (m LineMap) PhysicalLine(i int) PhysicalLine { return m.physical[i] }

// LogicalLine returns the physical line of the logical line at index i.
func (m LineMap) LogicalLine(i int) PhysicalLine { return m.physical[m.logical[i]] }

// PhysicalIndex returns the physical index of the given logical line.
func (m LineMap) PhysicalIndex(logical int) int { return m.logical[logical] }

// LogicalIndex returns the logical index of the given physical line.
// If that line is not a logical line, it returns ^p, where p is the index of
// the first logical line after it.
func (m LineMap) LogicalIndex(physical int) int {
	i, ok := slices.BinarySearch(m.logical, physical)
	if !ok {
		return ^i
	}
	return i
}

// A Source is a flattened lyrics document. A Source is not modified after
// construction.
type Source struct {
	Text       string              // the text of all lines, joined by "\n"
	Specifiers []AttachedSpecifier // all specifiers, in document order
	Lines      LineMap             // physical and logical lines
	Syllables  [][]Syllable        // the syllables of each logical line
}

// Empty is the flattened form of an empty document.
var Empty = &Source{}

// Build flattens parsed lines into a Source.
func Build(lines []ast.Line) *Source {
	var t Transformer
	var physical []PhysicalLine
	var logical []int
	var syllables [][]Syllable
	for i, line := range lines {
		if i > 0 {
			t.Newline()
		}
		textStart, attachedStart := t.Len(), t.NumSpecifiers()

		var store SyllableStore
		t.Transform(line.Nodes, &store)
		store.Close()

		physical = append(physical, PhysicalLine{
			TextStart:      textStart,
			TextLength:     t.Len() - textStart,
			AttachedStart:  attachedStart,
			AttachedLength: t.NumSpecifiers() - attachedStart,
		})
		if store.HasAny() {
			logical = append(logical, i)
			syllables = append(syllables, store.Syllables())
		}
	}
	return &Source{
		Text:       t.Text(),
		Specifiers: t.Specifiers(),
		Lines:      LineMap{physical: physical, logical: logical},
		Syllables:  syllables,
	}
}

// Parse parses src and flattens the result. Parse errors are reported to
// sink, which may be nil.
func Parse(src string, sink lyriser.ErrorSink) *Source { return Build(ast.Parse(src, sink)) }

// LineText returns the flattened text of the physical line at index i.
func (s *Source) LineText(i int) string {
	p := s.Lines.PhysicalLine(i)
	return s.Text[p.TextStart : p.TextStart+p.TextLength]
}

// LineSpecifiers returns the specifiers of the physical line at index i,
// with ranges relative to the start of the line text.
func (s *Source) LineSpecifiers(i int) []AttachedSpecifier {
	p := s.Lines.PhysicalLine(i)
	out := make([]AttachedSpecifier, p.AttachedLength)
	for j, spec := range s.Specifiers[p.AttachedStart : p.AttachedStart+p.AttachedLength] {
		out[j] = spec.Move(-p.TextStart)
	}
	return out
}
