// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package lyrics

import "fmt"

// A TextRange is a half-open range of byte offsets in flattened text.
type TextRange struct {
	Start  int
	Length int
}

// End reports the offset just past the end of r.
func (r TextRange) End() int { return r.Start + r.Length }

// Move returns r translated by distance bytes.
func (r TextRange) Move(distance int) TextRange {
	return TextRange{Start: r.Start + distance, Length: r.Length}
}

func (r TextRange) String() string { return fmt.Sprintf("[%d,%d)", r.Start, r.End()) }

// An AttachedSpecifier is an annotation anchored to a range of flattened base
// text. It is exactly one of Ruby or SyllableDivision.
type AttachedSpecifier interface {
	// Base reports the range of base text the specifier is attached to.
	Base() TextRange

	// Move returns a copy of the specifier translated by distance bytes.
	Move(distance int) AttachedSpecifier

	isSpecifier()
}

// Ruby attaches phonetic text to a range of base text.
type Ruby struct {
	Range TextRange
	Text  string
}

func (Ruby) isSpecifier() {}

// Base satisfies the AttachedSpecifier interface.
func (r Ruby) Base() TextRange { return r.Range }

// Move satisfies the AttachedSpecifier interface.
func (r Ruby) Move(distance int) AttachedSpecifier {
	return Ruby{Range: r.Range.Move(distance), Text: r.Text}
}

func (r Ruby) String() string { return fmt.Sprintf("Ruby%v(%s)", r.Range, r.Text) }

// SyllableDivision marks that the timing of a range of base text divides
// evenly into DivisionCount units. It has no visible text of its own.
type SyllableDivision struct {
	Range         TextRange
	DivisionCount int
}

func (SyllableDivision) isSpecifier() {}

// Base satisfies the AttachedSpecifier interface.
func (d SyllableDivision) Base() TextRange { return d.Range }

// Move satisfies the AttachedSpecifier interface.
func (d SyllableDivision) Move(distance int) AttachedSpecifier {
	return SyllableDivision{Range: d.Range.Move(distance), DivisionCount: d.DivisionCount}
}

func (d SyllableDivision) String() string {
	return fmt.Sprintf("Division%v(%d)", d.Range, d.DivisionCount)
}

func badSpecifier(s AttachedSpecifier) string {
	return fmt.Sprintf("lyrics: unknown specifier type %T", s)
}
