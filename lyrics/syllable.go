// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package lyrics

import "slices"

// A SubSyllable is one syllable contribution. If AttachedIndex is negative,
// CharacterIndex is a byte offset into the flattened text. Otherwise it is a
// byte offset into the text of the specifier at AttachedIndex.
type SubSyllable struct {
	AttachedIndex  int
	CharacterIndex int
}

// Direct constructs a SubSyllable referring to offset in the flattened text.
func Direct(offset int) SubSyllable { return SubSyllable{AttachedIndex: -1, CharacterIndex: offset} }

// Attached constructs a SubSyllable referring to offset in the text of the
// specifier at index.
func Attached(index, offset int) SubSyllable {
	return SubSyllable{AttachedIndex: index, CharacterIndex: offset}
}

// IsSimple reports whether s refers directly into the flattened text.
func (s SubSyllable) IsSimple() bool { return s.AttachedIndex < 0 }

// A Syllable is one navigable unit: a non-empty group of sub-syllables in
// document order.
type Syllable []SubSyllable

// A SyllableLocation identifies a syllable by logical line and its index
// within that line.
type SyllableLocation struct {
	Line   int
	Column int
}

// A SyllableStore collects the syllables of one line. Contributions made
// while a group is open are gathered into one syllable; all others become
// singleton syllables. The zero value is ready for use.
type SyllableStore struct {
	syllables []Syllable
	open      Syllable
	grouping  bool
}

// StartGrouping opens a group. It has no effect if a group is already open.
func (s *SyllableStore) StartGrouping() { s.grouping = true }

// StopGrouping closes the open group, if any. An empty group produces no
// syllable.
func (s *SyllableStore) StopGrouping() {
	if s.grouping && len(s.open) != 0 {
		s.syllables = append(s.syllables, s.open)
	}
	s.open = nil
	s.grouping = false
}

// Add records a syllable contribution.
func (s *SyllableStore) Add(sub SubSyllable) {
	if s.grouping {
		s.open = append(s.open, sub)
	} else {
		s.syllables = append(s.syllables, Syllable{sub})
	}
}

// Close closes any group left open at the end of a line.
func (s *SyllableStore) Close() { s.StopGrouping() }

// HasAny reports whether s has recorded at least one syllable.
func (s *SyllableStore) HasAny() bool { return len(s.syllables) != 0 }

// Syllables returns a copy of the syllables recorded so far. A group that is
// still open is not included.
func (s *SyllableStore) Syllables() []Syllable { return slices.Clone(s.syllables) }
