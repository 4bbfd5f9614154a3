// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package autoruby

import (
	"testing"

	"github.com/calbonaler/lyriser"
	"github.com/calbonaler/lyriser/ast"
	"github.com/creachadair/mds/mtest"
	"github.com/creachadair/mds/queue"
	"github.com/google/go-cmp/cmp"
)

func TestRepair(t *testing.T) {
	tests := []struct {
		base, out string
		idx, want []int
	}{
		{"麗らか", "うららか", []int{0, -1, -1, 4}, []int{0, 2, 3, 4}},
		{"日本", "にほん", []int{-1, 1, -1}, []int{0, 1, 3}},

		// An unmatched grapheme that differs from the output stays unmatched,
		// and so does everything before it up to the next matched position.
		{"日々", "ひび", []int{0, -1, 2}, []int{0, -1, 2}},
		{"日からか", "ひからか", []int{0, -1, -1, -1, 4}, []int{0, 1, 2, 3, 4}},
		{"日xらか", "ひyらか", []int{0, -1, -1, -1, 4}, []int{0, -1, 2, 3, 4}},
	}
	for _, test := range tests {
		idx := append([]int(nil), test.idx...)
		repair(graphemes(test.base), graphemes(test.out), idx, len([]rune(test.out)))
		if diff := cmp.Diff(test.want, idx); diff != "" {
			t.Errorf("repair(%q, %q, %v): (-want, +got)\n%s", test.base, test.out, test.idx, diff)
		}
	}
}

func TestGraphemes(t *testing.T) {
	// A base letter with a combining mark is one cluster of two runes.
	got := graphemes("e\u0301日")
	want := []grapheme{{text: "e\u0301", start: 0, runes: 2}, {text: "日", start: 2, runes: 1}}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(grapheme{})); diff != "" {
		t.Errorf("graphemes: (-want, +got)\n%s", diff)
	}
}

func TestApplyUnmatchedPanics(t *testing.T) {
	nodes := ast.ParseLine("abc", nil)
	q := queue.New[pending]()
	q.Add(pending{first: ast.NewSimple("x", false, lyriser.SourceSpan{}), count: 1, ruby: "y"})
	mtest.MustPanic(t, func() { apply(nodes, q) })
}

func TestApply(t *testing.T) {
	nodes := ast.ParseLine("a[bcd]e", nil)
	silent := nodes[1].(*ast.Silent)
	q := queue.New[pending]()
	q.Add(pending{first: silent.Nodes[1].(*ast.Simple), count: 2, ruby: "xy"})
	q.Add(pending{first: nodes[2].(*ast.Simple), count: 1, ruby: "("})

	got := ast.GenerateSource(apply(nodes, q))
	if want := "a[b|cd(xy)]e(`()"; got != want {
		t.Errorf("apply: got %q, want %q", got, want)
	}
}
