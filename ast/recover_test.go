// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast_test

import (
	"testing"

	"github.com/calbonaler/lyriser"
	"github.com/calbonaler/lyriser/ast"
)

// hardInputs are malformed or unusual lines that the parser must accept.
var hardInputs = []string{
	"|", "(", ")", "[", "]", "`", "{", "}",
	"||", "((", "))", "[[", "]]", "``",
	"|(", "|)", "|[", "|]", "|`", "(|", "[|", "`|",
	"a(", "a()", "a(`", "a( )", "a(　)", "a([ ])", "a([])",
	"|a", "|a(", "|a`", "|(a)", "|`(",
	"[a(", "[a(b", "[|a", "[`", "a([b", "a([b(c",
	"\xff", "a\xffb(\xfe)", "`\xff",
	"{{}}", "}{", "`{`}",
	"a(b)c(d)|ef(gh)[ij]",
	"[[[[[[[[", "a((((((", "||||||(",
	"\r", "\n", "\r\n", "a\r\rb", "|a\n(b)",
}

func TestRecovery(t *testing.T) {
	for _, input := range hardInputs {
		checkRecovery(t, input)
	}
}

func FuzzRecovery(f *testing.F) {
	for _, input := range hardInputs {
		f.Add(input)
	}
	f.Fuzz(checkRecovery)
}

// checkRecovery verifies that parsing input yields well-formed lines whose
// generated source parses without errors to the same structure.
func checkRecovery(t *testing.T, input string) {
	t.Helper()

	var errs lyriser.ErrorList
	lines := ast.Parse(input, errs.Add)
	if len(lines) == 0 {
		t.Fatalf("Parse(%q): no lines", input)
	}
	prev := 0
	for _, line := range lines {
		if line.Span.Start.Index < prev || line.Span.End.Index > len(input) {
			t.Errorf("Parse(%q): line span %v out of order", input, line.Span)
		}
		prev = line.Span.End.Index
		checkSpans(t, input, line.Span, line.Nodes)
	}
	for _, e := range errs {
		if e.Location.Index < 0 || e.Location.Index > len(input) {
			t.Errorf("Parse(%q): error %v out of range", input, e)
		}
	}

	for _, line := range lines {
		src := ast.GenerateSource(line.Nodes)
		var again lyriser.ErrorList
		nodes := ast.ParseLine(src, again.Add)
		if again.Len() != 0 {
			t.Errorf("ParseLine(%q): unexpected errors: %v", src, again)
		}
		got, want := ast.Debug(nodes), ast.Debug(line.Nodes)
		if len(got) != len(want) {
			t.Errorf("Reparse %q: got %q, want %q", src, got, want)
			continue
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("Reparse %q: node %d is %q, want %q", src, i, got[i], want[i])
			}
		}
	}
}

func checkSpans(t *testing.T, input string, outer lyriser.SourceSpan, nodes []ast.Node) {
	t.Helper()
	pos := outer.Start.Index
	for _, n := range nodes {
		sp := n.Span()
		if sp.Start.Index < pos || sp.End.Index < sp.Start.Index || sp.End.Index > outer.End.Index {
			t.Errorf("Parse(%q): node %v span %v not within [%d, %d)",
				input, n, sp, pos, outer.End.Index)
		}
		pos = sp.End.Index
		switch t2 := n.(type) {
		case *ast.Silent:
			checkSpans(t, input, sp, t2.Nodes)
		case *ast.Composite:
			if len(t2.Base) == 0 || len(t2.Ruby) == 0 {
				t.Errorf("Parse(%q): composite %v has an empty part", input, t2)
			}
			checkSpans(t, input, sp, t2.Ruby)
		}
	}
}
