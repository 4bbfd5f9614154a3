// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an abstract syntax tree for lyrics markup, and a parser
// that constructs syntax trees from markup source.
//
// A parsed line is a sequence of Node values. A Node is exactly one of
// *Simple, *Silent, or *Composite; consumers switch over these three types.
// Nodes are not modified after construction.
package ast

import (
	"fmt"
	"strings"

	"github.com/calbonaler/lyriser"
)

// A Node is an element of a parsed line.
type Node interface {
	// Span reports the location of the node in the source.
	Span() lyriser.SourceSpan

	// Text reports the text the node contributes to the base text.
	Text() string

	isNode()
}

// A CharState classifies the code of a Simple node.
type CharState byte

// Constants defining the valid CharState values.
const (
	Default       CharState = iota // an ordinary character
	StartGrouping                  // an unescaped "{"
	StopGrouping                   // an unescaped "}"
)

var stateStr = [...]string{
	Default:       "Default",
	StartGrouping: "StartGrouping",
	StopGrouping:  "StopGrouping",
}

func (c CharState) String() string {
	if int(c) >= len(stateStr) {
		return fmt.Sprintf("CharState(%d)", c)
	}
	return stateStr[c]
}

// A Simple is a single character, possibly escaped.
type Simple struct {
	span lyriser.SourceSpan

	Code    string // the undecoded character, without its escape
	Escaped bool   // whether the character was preceded by an escape
}

// NewSimple constructs a Simple node for code at the given span.
func NewSimple(code string, escaped bool, span lyriser.SourceSpan) *Simple {
	return &Simple{span: span, Code: code, Escaped: escaped}
}

// NewText constructs a Simple node that reads as the literal character code,
// escaping it if the markup would otherwise treat it as syntax.
func NewText(code string, span lyriser.SourceSpan) *Simple {
	return NewSimple(code, lyriser.Escape(code) != code, span)
}

func (*Simple) isNode() {}

// Span satisfies the Node interface.
func (s *Simple) Span() lyriser.SourceSpan { return s.span }

// State reports whether s is an ordinary character or a grouping marker.
func (s *Simple) State() CharState {
	if !s.Escaped {
		switch s.Code {
		case string(lyriser.StartGrouping):
			return StartGrouping
		case string(lyriser.StopGrouping):
			return StopGrouping
		}
	}
	return Default
}

// Text satisfies the Node interface. Grouping markers have no text.
func (s *Simple) Text() string {
	if s.State() != Default {
		return ""
	}
	return s.Code
}

func (s *Simple) String() string {
	if st := s.State(); st != Default {
		return "(" + st.String() + ")"
	}
	return s.Code
}

// A Silent is a region whose content belongs to the text but is exempt from
// ruby and syllable indexing.
type Silent struct {
	span lyriser.SourceSpan

	Nodes []Node
}

// NewSilent constructs a Silent node enclosing nodes.
func NewSilent(nodes []Node, span lyriser.SourceSpan) *Silent {
	return &Silent{span: span, Nodes: nodes}
}

func (*Silent) isNode() {}

// Span satisfies the Node interface.
func (s *Silent) Span() lyriser.SourceSpan { return s.span }

// Text satisfies the Node interface.
func (s *Silent) Text() string { return concatText(s.Nodes) }

func (s *Silent) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for _, n := range s.Nodes {
		fmt.Fprint(&sb, n)
	}
	sb.WriteByte(']')
	return sb.String()
}

// A Composite is base text with attached ruby text.
//
// The base is never empty. Each element of Ruby is either a *Simple or a
// *Silent. IsComplex distinguishes the surface syntax "|base(ruby)" (true)
// from "c(ruby)" (false).
type Composite struct {
	span, baseSpan lyriser.SourceSpan

	Base      []*Simple
	Ruby      []Node
	IsComplex bool
}

// NewComposite constructs a Composite node. It panics if base is empty.
func NewComposite(base []*Simple, ruby []Node, isComplex bool, baseSpan, span lyriser.SourceSpan) *Composite {
	if len(base) == 0 {
		panic("ast: composite base must not be empty")
	}
	return &Composite{span: span, baseSpan: baseSpan, Base: base, Ruby: ruby, IsComplex: isComplex}
}

func (*Composite) isNode() {}

// Span satisfies the Node interface.
func (c *Composite) Span() lyriser.SourceSpan { return c.span }

// BaseSpan reports the location of the base text in the source.
func (c *Composite) BaseSpan() lyriser.SourceSpan { return c.baseSpan }

// Text satisfies the Node interface. It reports the base text.
func (c *Composite) Text() string {
	var sb strings.Builder
	for _, b := range c.Base {
		sb.WriteString(b.Text())
	}
	return sb.String()
}

// RubyText reports the concatenated text of the ruby nodes.
func (c *Composite) RubyText() string { return concatText(c.Ruby) }

// IsSyllableDivision reports whether the ruby of c marks a syllable division
// rather than phonetic text, that is, every ruby node's text is "#" or empty.
func (c *Composite) IsSyllableDivision() bool {
	for _, r := range c.Ruby {
		if t := r.Text(); t != "#" && t != "" {
			return false
		}
	}
	return true
}

func (c *Composite) String() string {
	var sb strings.Builder
	if c.IsComplex {
		sb.WriteByte('|')
	}
	for _, b := range c.Base {
		fmt.Fprint(&sb, b)
	}
	sb.WriteByte('(')
	for _, r := range c.Ruby {
		fmt.Fprint(&sb, r)
	}
	sb.WriteByte(')')
	return sb.String()
}

// A Line is one parsed source line.
type Line struct {
	Nodes      []Node
	Span       lyriser.SourceSpan // the line content, excluding its terminator
	Terminator string             // "\r", "\n", "\r\n", or "" for the last line
}

// Text reports the concatenated text of nodes.
func Text(nodes []Node) string { return concatText(nodes) }

func concatText(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.Text())
	}
	return sb.String()
}

// Debug renders nodes in a compact form that shows their structure, for
// diagnostics and tests. Silent regions are bracketed, composites show their
// ruby in parentheses, and grouping markers are shown by state.
func Debug(nodes []Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = fmt.Sprint(n)
	}
	return out
}

// badNode reports an unknown Node implementation. The set of node types is
// closed, so this indicates a programming error.
func badNode(n Node) string { return fmt.Sprintf("ast: unknown node type %T", n) }
