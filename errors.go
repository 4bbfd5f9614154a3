// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lyriser

import (
	"fmt"
	"slices"
)

// An ErrorCode is a stable identifier for a kind of structural error in
// lyrics markup. Codes do not depend on the wording of descriptions.
type ErrorCode string

// Constants defining the error codes reported by the parser.
const (
	SilentImproperlyEnded        ErrorCode = "E0001" // "[" without "]"
	RubyBaseRequired             ErrorCode = "E0002" // "|" without base text
	RubyStartNotFound            ErrorCode = "E0003" // "|base" without "("
	RubyImproperlyEnded          ErrorCode = "E0004" // "(" without ")"
	RubyRequired                 ErrorCode = "E0005" // "()"
	RubyMustNotBeOnlyWhitespaces ErrorCode = "E0006" // "( )"
	AnyCharacterRequired         ErrorCode = "E0007" // "`" at end of line
)

var codeText = map[ErrorCode]string{
	SilentImproperlyEnded:        "silent region is not properly terminated",
	RubyBaseRequired:             "ruby base text must not be omitted",
	RubyStartNotFound:            "start of ruby text not found after ruby base",
	RubyImproperlyEnded:          "ruby text is not properly terminated",
	RubyRequired:                 "ruby text must not be omitted",
	RubyMustNotBeOnlyWhitespaces: "ruby text must not consist only of whitespace",
	AnyCharacterRequired:         "a character is required",
}

// Description returns the human-readable description of c.
func (c ErrorCode) Description() string {
	if s, ok := codeText[c]; ok {
		return s
	}
	return "unknown error"
}

// A ParserError reports a structural problem found while parsing markup.
// The parser recovers from every such problem, so a ParserError never aborts
// a parse; it is delivered to an ErrorSink instead.
type ParserError struct {
	Code        ErrorCode
	Description string
	Location    SourceLocation
}

// NewParserError constructs a ParserError with the standard description for code.
func NewParserError(code ErrorCode, loc SourceLocation) *ParserError {
	return &ParserError{Code: code, Description: code.Description(), Location: loc}
}

// Error satisfies the error interface.
func (e *ParserError) Error() string {
	return fmt.Sprintf("at %d:%d: %s: %s", e.Location.Line, e.Location.Column, e.Code, e.Description)
}

// An ErrorSink receives parser errors as they are found. A nil ErrorSink
// discards all errors.
type ErrorSink func(*ParserError)

// Report delivers err to s, if s is not nil.
func (s ErrorSink) Report(err *ParserError) {
	if s != nil {
		s(err)
	}
}

// ErrorList is an ErrorSink target that collects errors in order.
//
//	var errs lyriser.ErrorList
//	nodes := ast.ParseLine(text, errs.Add)
type ErrorList []*ParserError

// Add appends err to the list. Its method value is an ErrorSink.
func (e *ErrorList) Add(err *ParserError) { *e = append(*e, err) }

// Len reports the number of errors in the list.
func (e ErrorList) Len() int { return len(e) }

// Has reports whether the list contains an error with the given code.
func (e ErrorList) Has(code ErrorCode) bool {
	return slices.ContainsFunc(e, func(err *ParserError) bool { return err.Code == code })
}

// Codes returns the codes of the errors in the list, in order.
func (e ErrorList) Codes() []ErrorCode {
	out := make([]ErrorCode, len(e))
	for i, err := range e {
		out[i] = err.Code
	}
	return out
}

// Lines returns the distinct line numbers at which errors were reported,
// in order of first occurrence.
func (e ErrorList) Lines() []int {
	var out []int
	for _, err := range e {
		if !slices.Contains(out, err.Location.Line) {
			out = append(out, err.Location.Line)
		}
	}
	return out
}

// Err returns e as an error, or nil if e is empty.
func (e ErrorList) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Error satisfies the error interface.
func (e ErrorList) Error() string {
	switch len(e) {
	case 0:
		return "no errors"
	case 1:
		return e[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", e[0].Error(), len(e)-1)
}
