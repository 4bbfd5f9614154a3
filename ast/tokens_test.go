// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"slices"
	"testing"

	"github.com/calbonaler/lyriser/ast"
	"github.com/google/go-cmp/cmp"
)

type tok struct {
	Label      ast.Label
	Start, End int
}

func collect(seq func(func(ast.Token) bool)) []tok {
	var out []tok
	for t := range seq {
		out = append(out, tok{t.Label, t.Span.Start.Index, t.Span.End.Index})
	}
	return out
}

func TestTokens(t *testing.T) {
	tests := []struct {
		input string
		want  []tok
	}{
		{"", nil},
		{"abc", nil},
		{"`{a`}", nil},
		{"{a}|bc(de)[f]x(##)", []tok{
			{ast.SyllableGrouping, 0, 1},
			{ast.SyllableGrouping, 2, 3},
			{ast.AttachedBase, 4, 6},
			{ast.RubyText, 7, 8},
			{ast.RubyText, 8, 9},
			{ast.SilentRegion, 10, 13},
			{ast.AttachedBase, 13, 14},
			{ast.SyllableDivision, 15, 16},
			{ast.SyllableDivision, 16, 17},
		}},
		{"a(b[c]{)", []tok{
			{ast.AttachedBase, 0, 1},
			{ast.RubyText, 2, 3},
			{ast.SilentRegion, 3, 6},
			{ast.SyllableGrouping, 6, 7},
		}},
		{"[a(b)]", []tok{
			{ast.SilentRegion, 0, 6},
			{ast.AttachedBase, 1, 2},
			{ast.RubyText, 3, 4},
		}},
		{"華(はな)", []tok{
			{ast.AttachedBase, 0, 3},
			{ast.RubyText, 4, 7},
			{ast.RubyText, 7, 10},
		}},
	}
	for _, test := range tests {
		got := collect(ast.LineTokens(test.input))
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("LineTokens(%q): (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestTokensRestart(t *testing.T) {
	seq := ast.LineTokens("a(b)[c]{d}")
	first := collect(seq)
	second := collect(seq)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Second iteration differs: (-first, +second)\n%s", diff)
	}
	if len(first) != 5 {
		t.Errorf("Got %d tokens, want 5", len(first))
	}
}

func TestTokensEarlyStop(t *testing.T) {
	nodes := ast.ParseLine("[x]a(bc)d(##)", nil)
	for n := range 6 {
		var got []ast.Label
		for tok := range ast.Tokens(nodes) {
			if len(got) == n {
				break
			}
			got = append(got, tok.Label)
		}
		if len(got) != n {
			t.Errorf("Stop after %d: got %d tokens", n, len(got))
		}
	}

	// NodeTokens covers the same tokens as Tokens, node by node.
	var all []ast.Token
	for _, n := range nodes {
		all = slices.AppendSeq(all, ast.NodeTokens(n))
	}
	if diff := cmp.Diff(slices.Collect(ast.Tokens(nodes)), all); diff != "" {
		t.Errorf("NodeTokens: (-want, +got)\n%s", diff)
	}
}
