// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"strings"

	"github.com/calbonaler/lyriser"
)

// GenerateSource renders nodes as markup. Escaped characters keep their
// escapes, so for nodes parsed without errors the result is identical to the
// text they were parsed from.
func GenerateSource(nodes []Node) string {
	var sb strings.Builder
	g := generator{w: &sb}
	g.nodes(nodes)
	return sb.String()
}

// NormalizeSource renders nodes as markup, writing an escape only where the
// character would otherwise be read as syntax. Parsing the result yields the
// same text, ruby, and grouping as nodes.
func NormalizeSource(nodes []Node) string {
	var sb strings.Builder
	g := generator{w: &sb, normalize: true}
	g.nodes(nodes)
	return sb.String()
}

// Source renders the line as markup, including its terminator.
func (l Line) Source() string { return GenerateSource(l.Nodes) + l.Terminator }

// DocumentSource renders a sequence of lines as markup. For lines produced by
// Parse without errors, the result is identical to the parsed source.
func DocumentSource(lines []Line) string {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(GenerateSource(l.Nodes))
		sb.WriteString(l.Terminator)
	}
	return sb.String()
}

type generator struct {
	w         *strings.Builder
	normalize bool
}

func (g generator) nodes(nodes []Node) {
	for _, n := range nodes {
		g.node(n)
	}
}

func (g generator) node(n Node) {
	switch t := n.(type) {
	case *Simple:
		g.simple(t)
	case *Silent:
		g.w.WriteRune(lyriser.SilentStart)
		g.nodes(t.Nodes)
		g.w.WriteRune(lyriser.SilentEnd)
	case *Composite:
		if t.IsComplex {
			g.w.WriteRune(lyriser.RubyBaseStart)
		}
		for _, b := range t.Base {
			g.simple(b)
		}
		g.w.WriteRune(lyriser.RubyStart)
		g.nodes(t.Ruby)
		g.w.WriteRune(lyriser.RubyEnd)
	default:
		panic(badNode(n))
	}
}

func (g generator) simple(s *Simple) {
	if !g.normalize {
		if s.Escaped {
			g.w.WriteRune(lyriser.EscapeChar)
		}
		g.w.WriteString(s.Code)
		return
	}
	if s.State() != Default {
		g.w.WriteString(s.Code) // an unescaped grouping marker
		return
	}
	g.w.WriteString(lyriser.Escape(s.Code))
}
