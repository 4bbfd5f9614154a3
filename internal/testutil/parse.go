// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package testutil defines support code for unit tests.
package testutil

import (
	"testing"

	"github.com/calbonaler/lyriser"
	"github.com/calbonaler/lyriser/ast"
)

// Parse parses src and fails tb if it has structural errors.
func Parse(tb testing.TB, src string) []ast.Line {
	tb.Helper()
	var errs lyriser.ErrorList
	lines := ast.Parse(src, errs.Add)
	if errs.Len() != 0 {
		tb.Fatalf("Parse %q: unexpected errors: %v", src, errs)
	}
	return lines
}

// ParseLine parses the first line of src and fails tb if it has structural
// errors.
func ParseLine(tb testing.TB, src string) []ast.Node {
	tb.Helper()
	var errs lyriser.ErrorList
	nodes := ast.ParseLine(src, errs.Add)
	if errs.Len() != 0 {
		tb.Fatalf("ParseLine %q: unexpected errors: %v", src, errs)
	}
	return nodes
}

// Errors parses src and returns the errors it reports.
func Errors(src string) lyriser.ErrorList {
	var errs lyriser.ErrorList
	ast.Parse(src, errs.Add)
	return errs
}
