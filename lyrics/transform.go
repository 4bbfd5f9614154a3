// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package lyrics

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/calbonaler/lyriser/ast"
)

// A Transformer flattens parsed lines into one text buffer and an ordered
// list of attached specifiers. Specifier ranges are offsets in the buffer.
// The zero value is ready for use.
type Transformer struct {
	text  strings.Builder
	specs []AttachedSpecifier
}

// Transform appends the flattened text of nodes and their specifiers, and
// records their syllables in store. If store is nil, syllables are
// discarded. Transform does not close a group left open in store.
func (t *Transformer) Transform(nodes []ast.Node, store *SyllableStore) {
	for _, n := range nodes {
		t.node(n, store)
	}
}

// Newline appends a line separator to the text buffer.
func (t *Transformer) Newline() { t.text.WriteByte('\n') }

// Len reports the current length of the text buffer in bytes.
func (t *Transformer) Len() int { return t.text.Len() }

// NumSpecifiers reports the number of specifiers collected so far.
func (t *Transformer) NumSpecifiers() int { return len(t.specs) }

// Text returns the flattened text.
func (t *Transformer) Text() string { return t.text.String() }

// Specifiers returns the collected specifiers in order.
func (t *Transformer) Specifiers() []AttachedSpecifier { return t.specs }

func (t *Transformer) node(n ast.Node, store *SyllableStore) {
	switch v := n.(type) {
	case *ast.Simple:
		simple(v, Direct(t.text.Len()), &t.text, store)

	case *ast.Silent:
		silent(v, &t.text)

	case *ast.Composite:
		base := v.Text()
		ruby := rubyText(v, len(t.specs), store)
		rng := TextRange{Start: t.text.Len(), Length: len(base)}
		if v.IsSyllableDivision() {
			t.specs = append(t.specs, SyllableDivision{Range: rng, DivisionCount: utf8.RuneCountInString(ruby)})
		} else {
			t.specs = append(t.specs, Ruby{Range: rng, Text: ruby})
		}
		t.text.WriteString(base)

	default:
		panic(fmt.Sprintf("lyrics: unknown node type %T", n))
	}
}

// rubyText flattens the ruby of c, recording its syllables in store as
// contributions to the specifier at index.
func rubyText(c *ast.Composite, index int, store *SyllableStore) string {
	var buf strings.Builder
	for _, r := range c.Ruby {
		switch v := r.(type) {
		case *ast.Simple:
			simple(v, Attached(index, buf.Len()), &buf, store)
		case *ast.Silent:
			silent(v, &buf)
		default:
			panic(fmt.Sprintf("lyrics: unexpected ruby node type %T", r))
		}
	}
	return buf.String()
}

// simple applies a Simple node: a grouping marker opens or closes a group,
// and a character appends its text, recording sub as a syllable unless the
// text is blank.
func simple(s *ast.Simple, sub SubSyllable, buf *strings.Builder, store *SyllableStore) {
	switch s.State() {
	case ast.StartGrouping:
		if store != nil {
			store.StartGrouping()
		}
	case ast.StopGrouping:
		if store != nil {
			store.StopGrouping()
		}
	default:
		text := s.Text()
		if store != nil && strings.TrimSpace(text) != "" {
			store.Add(sub)
		}
		buf.WriteString(text)
	}
}

// silent appends the text of a silent region to buf. Its content produces
// neither specifiers nor syllables.
func silent(s *ast.Silent, buf *strings.Builder) {
	for _, n := range s.Nodes {
		switch v := n.(type) {
		case *ast.Simple:
			simple(v, SubSyllable{}, buf, nil)
		case *ast.Silent:
			silent(v, buf)
		case *ast.Composite:
			buf.WriteString(v.Text())
		default:
			panic(fmt.Sprintf("lyrics: unknown node type %T", n))
		}
	}
}

// TransformLine flattens a single line of nodes. It returns the text, the
// specifiers anchored in that text, and the syllables of the line, with any
// group left open at the end of the line closed.
func TransformLine(nodes []ast.Node) (string, []AttachedSpecifier, []Syllable) {
	var t Transformer
	var store SyllableStore
	t.Transform(nodes, &store)
	store.Close()
	return t.Text(), t.Specifiers(), store.Syllables()
}
