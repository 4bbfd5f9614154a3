// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"iter"

	"github.com/calbonaler/lyriser"
)

// A Label classifies a highlight token.
type Label string

// Constants defining the valid Label values.
const (
	SyllableGrouping Label = "SyllableGrouping" // an unescaped "{" or "}"
	SilentRegion     Label = "Silent"           // a silent region, brackets included
	AttachedBase     Label = "AttachedBase"     // the base text of a composite
	RubyText         Label = "Ruby"             // a character of ruby text
	SyllableDivision Label = "SyllableDivision" // a character of a syllable division
)

// A Token is a labelled source span for syntax highlighting. Tokens may nest:
// a silent region or composite yields its own token followed by the tokens of
// its children.
type Token struct {
	Label Label
	Span  lyriser.SourceSpan
}

// Tokens returns the highlight tokens of nodes in document order. The
// sequence is computed lazily and may be iterated more than once.
func Tokens(nodes []Node) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for _, n := range nodes {
			if !nodeTokens(n, yield) {
				return
			}
		}
	}
}

// NodeTokens returns the highlight tokens of a single node.
func NodeTokens(n Node) iter.Seq[Token] {
	return func(yield func(Token) bool) { nodeTokens(n, yield) }
}

// LineTokens parses the first line of line and returns its highlight tokens.
// Parse errors are ignored.
func LineTokens(line string) iter.Seq[Token] { return Tokens(ParseLine(line, nil)) }

// nodeTokens yields the tokens of n and reports whether iteration should
// continue.
func nodeTokens(n Node, yield func(Token) bool) bool {
	switch t := n.(type) {
	case *Simple:
		if t.State() != Default {
			return yield(Token{Label: SyllableGrouping, Span: t.Span()})
		}
		return true

	case *Silent:
		if !yield(Token{Label: SilentRegion, Span: t.Span()}) {
			return false
		}
		for _, c := range t.Nodes {
			if !nodeTokens(c, yield) {
				return false
			}
		}
		return true

	case *Composite:
		if !yield(Token{Label: AttachedBase, Span: t.BaseSpan()}) {
			return false
		}
		label := RubyText
		if t.IsSyllableDivision() {
			label = SyllableDivision
		}
		for _, r := range t.Ruby {
			if hasTokens(r) {
				if !nodeTokens(r, yield) {
					return false
				}
			} else if !yield(Token{Label: label, Span: r.Span()}) {
				return false
			}
		}
		return true

	default:
		panic(badNode(n))
	}
}

// hasTokens reports whether a ruby node yields any tokens of its own.
func hasTokens(n Node) bool {
	switch t := n.(type) {
	case *Simple:
		return t.State() != Default
	case *Silent:
		return true
	case *Composite:
		return true
	default:
		panic(badNode(n))
	}
}
