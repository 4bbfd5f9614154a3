// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/calbonaler/lyriser"
	"github.com/calbonaler/lyriser/ast"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"abc", []string{"a", "b", "c"}},
		{"華|やか(はなやか)", []string{"華", "|やか(はなやか)"}},
		{"[x]a(b)", []string{"[x]", "a(b)"}},
		{"a{bc}d", []string{"a", "(StartGrouping)", "b", "c", "(StopGrouping)", "d"}},
		{"`{`}", []string{"{", "}"}},
		{"`(a`)", []string{"(", "a", ")"}},
		{"𠮷(しか)る", []string{"𠮷(しか)", "る"}},
		{"|`(x(y)", []string{"|(x(y)"}},
		{"a([b]c)", []string{"a([b]c)"}},
		{"[a(b)[c]]", []string{"[a(b)[c]]"}},
		{"x(##)", []string{"x(##)"}},
		{"(x", []string{"(", "x"}},
		{")]", []string{")", "]"}},
		{"ab\ncd", []string{"a", "b"}},
	}
	for _, test := range tests {
		var errs lyriser.ErrorList
		got := ast.Debug(ast.ParseLine(test.input, errs.Add))
		if errs.Len() != 0 {
			t.Errorf("ParseLine(%q): unexpected errors: %v", test.input, errs)
		}
		if diff := cmp.Diff(test.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("ParseLine(%q) nodes: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseErrors(t *testing.T) {
	type loc struct{ Index, Line, Column int }
	tests := []struct {
		input string
		codes []lyriser.ErrorCode
		locs  []loc
		want  []string
	}{
		{"[abc", []lyriser.ErrorCode{lyriser.SilentImproperlyEnded},
			[]loc{{4, 1, 5}}, []string{"[abc]"}},
		{"|(x)", []lyriser.ErrorCode{lyriser.RubyBaseRequired},
			[]loc{{1, 1, 2}}, []string{"|_(x)"}},
		{"|abc", []lyriser.ErrorCode{lyriser.RubyStartNotFound},
			[]loc{{4, 1, 5}}, []string{"|abc(_)"}},
		{"a(bc", []lyriser.ErrorCode{lyriser.RubyImproperlyEnded},
			[]loc{{4, 1, 5}}, []string{"a(bc)"}},
		{"a()", []lyriser.ErrorCode{lyriser.RubyRequired},
			[]loc{{2, 1, 3}}, []string{"a(_)"}},
		{"a( )", []lyriser.ErrorCode{lyriser.RubyMustNotBeOnlyWhitespaces},
			[]loc{{2, 1, 3}}, []string{"a( _)"}},
		{"a({})", []lyriser.ErrorCode{lyriser.RubyMustNotBeOnlyWhitespaces},
			[]loc{{2, 1, 3}}, []string{"a((StartGrouping)(StopGrouping)_)"}},
		{"`", []lyriser.ErrorCode{lyriser.AnyCharacterRequired},
			[]loc{{1, 1, 2}}, []string{"_"}},
		{"|", []lyriser.ErrorCode{lyriser.RubyBaseRequired, lyriser.RubyStartNotFound},
			[]loc{{1, 1, 2}, {1, 1, 2}}, []string{"|_(_)"}},
		{"a(", []lyriser.ErrorCode{lyriser.RubyImproperlyEnded, lyriser.RubyRequired},
			[]loc{{2, 1, 3}, {2, 1, 3}}, []string{"a(_)"}},
		{"[y", []lyriser.ErrorCode{lyriser.SilentImproperlyEnded},
			[]loc{{2, 1, 3}}, []string{"[y]"}},
		{"x[a(b", []lyriser.ErrorCode{lyriser.RubyImproperlyEnded, lyriser.SilentImproperlyEnded},
			[]loc{{5, 1, 6}, {5, 1, 6}}, []string{"x", "[a(b)]"}},
		{"a(`", []lyriser.ErrorCode{lyriser.AnyCharacterRequired, lyriser.RubyImproperlyEnded},
			[]loc{{3, 1, 4}, {3, 1, 4}}, []string{"a(_)"}},
	}
	for _, test := range tests {
		var errs lyriser.ErrorList
		got := ast.Debug(ast.ParseLine(test.input, errs.Add))
		if diff := cmp.Diff(test.codes, errs.Codes()); diff != "" {
			t.Errorf("ParseLine(%q) codes: (-want, +got)\n%s", test.input, diff)
		}
		var locs []loc
		for _, e := range errs {
			locs = append(locs, loc{e.Location.Index, e.Location.Line, e.Location.Column})
		}
		if diff := cmp.Diff(test.locs, locs); diff != "" {
			t.Errorf("ParseLine(%q) locations: (-want, +got)\n%s", test.input, diff)
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ParseLine(%q) nodes: (-want, +got)\n%s", test.input, diff)
		}
	}
}

func TestParseLines(t *testing.T) {
	const input = "a(b)\r\n[c\rd\n"
	var errs lyriser.ErrorList
	lines := ast.Parse(input, errs.Add)

	type line struct {
		Nodes      []string
		Start, End int
		Terminator string
	}
	var got []line
	for _, l := range lines {
		got = append(got, line{ast.Debug(l.Nodes), l.Span.Start.Index, l.Span.End.Index, l.Terminator})
	}
	want := []line{
		{[]string{"a(b)"}, 0, 4, "\r\n"},
		{[]string{"[c]"}, 6, 8, "\r"},
		{[]string{"d"}, 9, 10, "\n"},
		{[]string{}, 11, 11, ""},
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Parse lines: (-want, +got)\n%s", diff)
	}

	if errs.Len() != 1 {
		t.Fatalf("Parse: got %d errors, want 1: %v", errs.Len(), errs)
	}
	if e := errs[0]; e.Code != lyriser.SilentImproperlyEnded || e.Location.Line != 2 || e.Location.Column != 3 {
		t.Errorf("Parse error: got %v, want %s at 2:3", e, lyriser.SilentImproperlyEnded)
	}
}

func TestParseEmpty(t *testing.T) {
	lines := ast.Parse("", nil)
	if len(lines) != 1 || len(lines[0].Nodes) != 0 || lines[0].Terminator != "" {
		t.Errorf("Parse(%q): got %+v, want one empty line", "", lines)
	}
}

func TestParseNode(t *testing.T) {
	if n := ast.ParseNode("", nil); n != nil {
		t.Errorf("ParseNode(%q): got %v, want nil", "", n)
	}
	n := ast.ParseNode("|ab(c)d", nil)
	c, ok := n.(*ast.Composite)
	if !ok {
		t.Fatalf("ParseNode: got %T, want *ast.Composite", n)
	}
	if !c.IsComplex || c.Text() != "ab" || c.RubyText() != "c" {
		t.Errorf("ParseNode: got %v, want |ab(c)", c)
	}
	if got := c.BaseSpan(); got.Start.Index != 1 || got.End.Index != 3 {
		t.Errorf("BaseSpan: got [%d, %d), want [1, 3)", got.Start.Index, got.End.Index)
	}
	if got := c.Span(); got.Start.Index != 0 || got.End.Index != 6 {
		t.Errorf("Span: got [%d, %d), want [0, 6)", got.Start.Index, got.End.Index)
	}
}

func TestSurrogateAtomicity(t *testing.T) {
	for _, input := range []string{"𠮷", "|𠮷(よし)", "`𠮷"} {
		nodes := ast.ParseLine(input, nil)
		var simples []*ast.Simple
		for _, n := range nodes {
			switch t := n.(type) {
			case *ast.Simple:
				simples = append(simples, t)
			case *ast.Composite:
				simples = append(simples, t.Base...)
			}
		}
		if len(simples) != 1 || simples[0].Code != "𠮷" {
			t.Errorf("ParseLine(%q): got base %v, want a single 𠮷", input, simples)
		}
	}
}

func TestSimpleState(t *testing.T) {
	tests := []struct {
		code    string
		escaped bool
		state   ast.CharState
		text    string
	}{
		{"a", false, ast.Default, "a"},
		{"{", false, ast.StartGrouping, ""},
		{"}", false, ast.StopGrouping, ""},
		{"{", true, ast.Default, "{"},
		{"}", true, ast.Default, "}"},
	}
	for _, test := range tests {
		s := ast.NewSimple(test.code, test.escaped, lyriser.SourceSpan{})
		if got := s.State(); got != test.state {
			t.Errorf("State(%q, %v): got %v, want %v", test.code, test.escaped, got, test.state)
		}
		if got := s.Text(); got != test.text {
			t.Errorf("Text(%q, %v): got %q, want %q", test.code, test.escaped, got, test.text)
		}
	}
}

func TestSyllableDivision(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a(#)", true},
		{"a(###)", true},
		{"a(#{#})", true},
		{"a(b)", false},
		{"a(#b)", false},
		{"a([#])", true},
		{"a([#b])", false},
	}
	for _, test := range tests {
		c := ast.ParseNode(test.input, nil).(*ast.Composite)
		if got := c.IsSyllableDivision(); got != test.want {
			t.Errorf("IsSyllableDivision(%q): got %v, want %v", test.input, got, test.want)
		}
	}
}
