// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/calbonaler/lyriser"
	"github.com/calbonaler/lyriser/ast"
	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	tests := []string{
		"",
		"abc",
		"華|やか(はなやか)",
		"[x]a(b)",
		"a{bc}d",
		"`{`}`(`)`[`]`|``",
		"`a`b",
		"|`(x(y)",
		"a([b]c)",
		"[a(b)[c]]",
		"x(##)",
		"(x",
		")]",
		"𠮷(しか)る",
		"[Ah,] |今日(きょう)も{歌(うた)}う",
		"a(b)\r\n[c]\rd\n\n",
	}
	for _, input := range tests {
		var errs lyriser.ErrorList
		lines := ast.Parse(input, errs.Add)
		if errs.Len() != 0 {
			t.Errorf("Parse(%q): unexpected errors: %v", input, errs)
			continue
		}
		got := ast.DocumentSource(lines)
		if got != input {
			t.Errorf("DocumentSource(Parse(%q)): got %q", input, got)
		}

		// Reparsing the generated source yields the same structure.
		again := ast.Parse(got, nil)
		if diff := cmp.Diff(debugLines(lines), debugLines(again)); diff != "" {
			t.Errorf("Reparse of %q: (-want, +got)\n%s", input, diff)
		}
	}
}

func TestRoundTripRecovered(t *testing.T) {
	// Inputs with errors do not reproduce their text, but the regenerated
	// source parses cleanly to the same structure.
	tests := []string{"[abc", "|(x)", "|abc", "a(bc", "a()", "|"}
	for _, input := range tests {
		nodes := ast.ParseLine(input, nil)
		src := ast.GenerateSource(nodes)

		var errs lyriser.ErrorList
		again := ast.ParseLine(src, errs.Add)
		if errs.Len() != 0 {
			t.Errorf("ParseLine(%q): unexpected errors: %v", src, errs)
		}
		if diff := cmp.Diff(ast.Debug(nodes), ast.Debug(again)); diff != "" {
			t.Errorf("Reparse of %q via %q: (-want, +got)\n%s", input, src, diff)
		}
	}
}

func TestLineSource(t *testing.T) {
	lines := ast.Parse("a(b)\r\nc", nil)
	var got []string
	for _, l := range lines {
		got = append(got, l.Source())
	}
	if diff := cmp.Diff([]string{"a(b)\r\n", "c"}, got); diff != "" {
		t.Errorf("Line sources: (-want, +got)\n%s", diff)
	}
}

func TestNormalizeSource(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"abc", "abc"},
		{"`a`b", "ab"},
		{"`(`)`[`]`|``", "`(`)`[`]`|``"},
		{"`{x`}", "`{x`}"},
		{"{x}", "{x}"},
		{"|`a`b(`c)", "|ab(c)"},
		{"[`x]`y(z)", "[x]y(z)"},
	}
	for _, test := range tests {
		nodes := ast.ParseLine(test.input, nil)
		got := ast.NormalizeSource(nodes)
		if got != test.want {
			t.Errorf("NormalizeSource(%q): got %q, want %q", test.input, got, test.want)
		}
		if diff := cmp.Diff(ast.Debug(nodes), ast.Debug(ast.ParseLine(got, nil))); diff != "" {
			t.Errorf("Reparse of %q: (-want, +got)\n%s", got, diff)
		}
	}
}

func TestNewText(t *testing.T) {
	var nodes []ast.Node
	for _, code := range []string{"a", "(", "{", "`", "は"} {
		nodes = append(nodes, ast.NewText(code, lyriser.SourceSpan{}))
	}
	const want = "a`(`{``は"
	if got := ast.GenerateSource(nodes); got != want {
		t.Errorf("GenerateSource: got %q, want %q", got, want)
	}
	if got := ast.Text(nodes); got != "a({`は" {
		t.Errorf("Text: got %q, want %q", got, "a({`は")
	}
}

func debugLines(lines []ast.Line) [][]string {
	out := make([][]string, len(lines))
	for i, l := range lines {
		out[i] = append(ast.Debug(l.Nodes), l.Terminator)
	}
	return out
}
