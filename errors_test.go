// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lyriser_test

import (
	"errors"
	"testing"

	"github.com/calbonaler/lyriser"
	"github.com/google/go-cmp/cmp"
)

func TestParserError(t *testing.T) {
	e := lyriser.NewParserError(lyriser.RubyRequired, lyriser.SourceLocation{Index: 5, Line: 2, Column: 3})
	const want = "at 2:3: E0005: ruby text must not be omitted"
	if got := e.Error(); got != want {
		t.Errorf("Error: got %q, want %q", got, want)
	}
	if got := lyriser.ErrorCode("E9999").Description(); got != "unknown error" {
		t.Errorf("Unknown description: got %q", got)
	}
}

func TestErrorList(t *testing.T) {
	var errs lyriser.ErrorList
	if errs.Err() != nil {
		t.Errorf("Empty list: got error %v", errs.Err())
	}

	sink := lyriser.ErrorSink(errs.Add)
	sink.Report(lyriser.NewParserError(lyriser.SilentImproperlyEnded, lyriser.SourceLocation{Line: 1}))
	sink.Report(lyriser.NewParserError(lyriser.RubyRequired, lyriser.SourceLocation{Line: 3}))
	sink.Report(lyriser.NewParserError(lyriser.AnyCharacterRequired, lyriser.SourceLocation{Line: 1}))

	if errs.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", errs.Len())
	}
	if diff := cmp.Diff([]lyriser.ErrorCode{"E0001", "E0005", "E0007"}, errs.Codes()); diff != "" {
		t.Errorf("Codes: (-want, +got)\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 3}, errs.Lines()); diff != "" {
		t.Errorf("Lines: (-want, +got)\n%s", diff)
	}
	if !errs.Has(lyriser.RubyRequired) || errs.Has(lyriser.RubyBaseRequired) {
		t.Errorf("Has: wrong result for %v", errs.Codes())
	}

	var list lyriser.ErrorList
	if err := errs.Err(); !errors.As(err, &list) || len(list) != 3 {
		t.Errorf("Err: got %v, want the list", err)
	}

	// A nil sink discards errors without panicking.
	var none lyriser.ErrorSink
	none.Report(lyriser.NewParserError(lyriser.RubyRequired, lyriser.SourceLocation{}))
}
