// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"strings"

	"github.com/calbonaler/lyriser"
)

// placeholder is the text of nodes substituted for missing input.
const placeholder = "_"

// Parse parses every line of src and returns the lines in order. Structural
// errors are reported to sink, which may be nil; parsing never fails, and
// every error is recovered by substituting placeholder nodes.
func Parse(src string, sink lyriser.ErrorSink) []Line {
	p := newParser(src, sink)
	var lines []Line
	ok := p.s.NextLine()
	for ok {
		start := p.s.Location()
		nodes := p.parseLine()
		end := p.s.Location()
		ok = p.s.NextLine()
		lines = append(lines, Line{
			Nodes:      nodes,
			Span:       lyriser.Span(start, end),
			Terminator: p.s.Terminator(),
		})
	}
	return lines
}

// ParseLine parses the first line of line and returns its nodes. Any text
// after the first line terminator is ignored.
func ParseLine(line string, sink lyriser.ErrorSink) []Node {
	p := newParser(line, sink)
	p.s.NextLine()
	return p.parseLine()
}

// ParseNode parses a single node from the front of src. It returns nil if the
// first line of src is empty.
func ParseNode(src string, sink lyriser.ErrorSink) Node {
	p := newParser(src, sink)
	p.s.NextLine()
	if _, ok := p.s.Peek(); !ok {
		return nil
	}
	return p.parseNode()
}

type parser struct {
	s    *lyriser.Scanner
	sink lyriser.ErrorSink
}

func newParser(src string, sink lyriser.ErrorSink) *parser {
	return &parser{s: lyriser.NewScanner(src), sink: sink}
}

func (p *parser) report(code lyriser.ErrorCode, loc lyriser.SourceLocation) {
	p.sink.Report(lyriser.NewParserError(code, loc))
}

// accept consumes the next character if it is ch, and reports whether it did.
func (p *parser) accept(ch rune) bool {
	if r, ok := p.s.Peek(); ok && r == ch {
		p.s.Read()
		return true
	}
	return false
}

func (p *parser) atEOL() bool {
	_, ok := p.s.Peek()
	return !ok
}

// line := node*
func (p *parser) parseLine() []Node {
	var nodes []Node
	for !p.atEOL() {
		nodes = append(nodes, p.parseNode())
	}
	return nodes
}

// node := silentNode | rubyBaseNode | simpleOrCompositeNode
// Precondition: not at end of line.
func (p *parser) parseNode() Node {
	start := p.s.Location()
	if p.accept(lyriser.SilentStart) {
		return p.parseSilent(start)
	} else if p.accept(lyriser.RubyBaseStart) {
		return p.parseRubyBase(start)
	}
	return p.parseSimpleOrComposite(start)
}

// silentNode := "[" node* "]"
// Precondition: the opening bracket at start has been consumed.
func (p *parser) parseSilent(start lyriser.SourceLocation) *Silent {
	var nodes []Node
	for !p.accept(lyriser.SilentEnd) {
		if p.atEOL() {
			p.report(lyriser.SilentImproperlyEnded, p.s.Location())
			break
		}
		nodes = append(nodes, p.parseNode())
	}
	return NewSilent(nodes, lyriser.Span(start, p.s.Location()))
}

// rubyBaseNode := "|" simpleNode+ rubyNodes
// Precondition: the bar at start has been consumed.
func (p *parser) parseRubyBase(start lyriser.SourceLocation) *Composite {
	baseStart := p.s.Location()
	var base []*Simple
	for {
		if r, ok := p.s.Peek(); !ok || r == lyriser.RubyStart {
			break
		}
		base = append(base, p.parseSimple())
	}
	baseEnd := p.s.Location()
	if len(base) == 0 {
		p.report(lyriser.RubyBaseRequired, baseStart)
		base = append(base, p.placeholder(baseEnd))
	}

	ruby := p.parseRubyNodes()
	if len(ruby) == 0 {
		loc := p.s.Location()
		p.report(lyriser.RubyStartNotFound, loc)
		ruby = append(ruby, p.placeholder(loc))
	}
	return NewComposite(base, ruby, true, lyriser.Span(baseStart, baseEnd), lyriser.Span(start, p.s.Location()))
}

// simpleOrCompositeNode := simpleNode rubyNodes?
func (p *parser) parseSimpleOrComposite(start lyriser.SourceLocation) Node {
	simple := p.parseSimple()
	end := p.s.Location()
	ruby := p.parseRubyNodes()
	if len(ruby) == 0 {
		return simple
	}
	return NewComposite([]*Simple{simple}, ruby, false, lyriser.Span(start, end), lyriser.Span(start, p.s.Location()))
}

// rubyNodes := "(" (silentNode | simpleNode)* ")" | empty
//
// The result is empty only if no ruby group is present.
func (p *parser) parseRubyNodes() []Node {
	if !p.accept(lyriser.RubyStart) {
		return nil
	}
	rubyStart := p.s.Location()
	var ruby []Node
	for !p.accept(lyriser.RubyEnd) {
		if p.atEOL() {
			p.report(lyriser.RubyImproperlyEnded, p.s.Location())
			break
		}
		start := p.s.Location()
		if p.accept(lyriser.SilentStart) {
			ruby = append(ruby, p.parseSilent(start))
		} else {
			ruby = append(ruby, p.parseSimple())
		}
	}

	if len(ruby) == 0 {
		p.report(lyriser.RubyRequired, rubyStart)
		ruby = append(ruby, p.placeholder(rubyStart))
	} else if onlySpaces(ruby) {
		p.report(lyriser.RubyMustNotBeOnlyWhitespaces, rubyStart)
		ruby = append(ruby, p.placeholder(ruby[len(ruby)-1].Span().End))
	}
	return ruby
}

// simpleNode := "`"? anyChar
func (p *parser) parseSimple() *Simple {
	start := p.s.Location()
	escaped := p.accept(lyriser.EscapeChar)
	if p.atEOL() {
		loc := p.s.Location()
		p.report(lyriser.AnyCharacterRequired, loc)
		return NewSimple(placeholder, escaped, lyriser.Span(start, loc))
	}
	code := p.s.Read()
	return NewSimple(code, escaped, lyriser.Span(start, p.s.Location()))
}

// placeholder constructs a zero-length placeholder node at loc.
func (p *parser) placeholder(loc lyriser.SourceLocation) *Simple {
	return NewSimple(placeholder, false, lyriser.Span(loc, loc))
}

// onlySpaces reports whether every node in nodes has empty or all-whitespace text.
func onlySpaces(nodes []Node) bool {
	for _, n := range nodes {
		if strings.TrimSpace(n.Text()) != "" {
			return false
		}
	}
	return true
}
