// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lyriser_test

import (
	"testing"

	"github.com/calbonaler/lyriser"
	"github.com/creachadair/mds/mtest"
	"github.com/google/go-cmp/cmp"
)

type scannedLine struct {
	Chars []string
	Term  string
}

func scanAll(input string) []scannedLine {
	var out []scannedLine
	s := lyriser.NewScanner(input)
	for s.NextLine() {
		// The terminator of the previous line is reported by this call.
		if n := len(out); n > 0 {
			out[n-1].Term = s.Terminator()
		}
		var line scannedLine
		for {
			if _, ok := s.Peek(); !ok {
				break
			}
			line.Chars = append(line.Chars, s.Read())
		}
		out = append(out, line)
	}
	return out
}

func TestScanner(t *testing.T) {
	tests := []struct {
		input string
		want  []scannedLine
	}{
		// Empty inputs
		{"", []scannedLine{{}}},
		{"\n", []scannedLine{{Term: "\n"}, {}}},
		{"\r\n\r", []scannedLine{{Term: "\r\n"}, {Term: "\r"}, {}}},
		{"\n\r", []scannedLine{{Term: "\n"}, {Term: "\r"}, {}}},

		// Characters
		{"abc", []scannedLine{{Chars: []string{"a", "b", "c"}}}},
		{"|a(b)", []scannedLine{{Chars: []string{"|", "a", "(", "b", ")"}}}},
		{"華やか", []scannedLine{{Chars: []string{"華", "や", "か"}}}},
		{"𠮷x", []scannedLine{{Chars: []string{"𠮷", "x"}}}},
		{"a\xffb", []scannedLine{{Chars: []string{"a", "\xff", "b"}}}},

		// Mixed terminators
		{"ab\r\ncd\re\nf", []scannedLine{
			{Chars: []string{"a", "b"}, Term: "\r\n"},
			{Chars: []string{"c", "d"}, Term: "\r"},
			{Chars: []string{"e"}, Term: "\n"},
			{Chars: []string{"f"}},
		}},
	}

	for _, test := range tests {
		got := scanAll(test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("Input: %#q\nLines: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestScanner_location(t *testing.T) {
	s := lyriser.NewScanner("ab\r\nは(x")
	type loc = lyriser.SourceLocation
	var got []loc

	s.NextLine()
	got = append(got, s.Location())
	s.Read()
	got = append(got, s.Location())

	// Unread content is skipped by NextLine.
	s.NextLine()
	got = append(got, s.Location())
	s.Read()
	got = append(got, s.Location())
	s.Read()
	s.Read()
	got = append(got, s.Location())

	want := []loc{
		{Index: 0, Line: 1, Column: 1},
		{Index: 1, Line: 1, Column: 2},
		{Index: 4, Line: 2, Column: 1},
		{Index: 7, Line: 2, Column: 4},
		{Index: 9, Line: 2, Column: 6},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Locations: (-want, +got)\n%s", diff)
	}
	if s.NextLine() {
		t.Error("NextLine: got true at end of input")
	}
	if term := s.Terminator(); term != "" {
		t.Errorf("Terminator at end: got %q, want empty", term)
	}
}

func TestScanner_readPastEnd(t *testing.T) {
	s := lyriser.NewScanner("a\nb")
	s.NextLine()
	s.Read()
	mtest.MustPanic(t, func() { s.Read() })
}

func TestSourceLocation(t *testing.T) {
	a := lyriser.SourceLocation{Index: 3, Line: 1, Column: 4}
	b := lyriser.SourceLocation{Index: 7, Line: 2, Column: 2}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Errorf("Compare: wrong order for %v, %v", a, b)
	}
	if !a.Before(b) || b.Before(a) || a.Before(a) {
		t.Errorf("Before: wrong order for %v, %v", a, b)
	}
	if d := b.Difference(a); d != 4 {
		t.Errorf("Difference: got %d, want 4", d)
	}

	sp := lyriser.Span(a, b)
	if sp.Len() != 4 || sp.IsEmpty() {
		t.Errorf("Span %v: got len %d, want 4", sp, sp.Len())
	}
	for i, want := range map[int]bool{2: false, 3: true, 6: true, 7: false} {
		if got := sp.Contains(i); got != want {
			t.Errorf("Contains(%d): got %v, want %v", i, got, want)
		}
	}
	other := lyriser.Span(lyriser.SourceLocation{Index: 3}, lyriser.SourceLocation{Index: 7})
	if !sp.Equal(other) {
		t.Errorf("Equal(%v, %v): got false, want true", sp, other)
	}
	if !lyriser.Span(b, b).IsEmpty() {
		t.Error("Empty span reports non-empty")
	}
}
