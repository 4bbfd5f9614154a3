// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package export encodes flattened lyrics documents for other tools.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/calbonaler/lyriser/lyrics"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Schema is the version of the Document layout. It changes whenever a field
// is renamed or reinterpreted.
const Schema uint16 = 1

// A Document is the exported form of a lyrics.Source.
type Document struct {
	Schema     uint16       `json:"schema" yaml:"schema" msgpack:"schema"`
	Text       string       `json:"text" yaml:"text" msgpack:"text"`
	Specifiers []Specifier  `json:"specifiers" yaml:"specifiers" msgpack:"specifiers"`
	Lines      []Line       `json:"lines" yaml:"lines" msgpack:"lines"`
	Syllables  [][]Syllable `json:"syllables" yaml:"syllables" msgpack:"syllables"`
}

// Specifier kinds.
const (
	KindRuby     = "ruby"
	KindDivision = "division"
)

// A Specifier is an exported ruby or syllable division.
type Specifier struct {
	Kind      string `json:"kind" yaml:"kind" msgpack:"kind"`
	Start     int    `json:"start" yaml:"start" msgpack:"start"`
	Length    int    `json:"length" yaml:"length" msgpack:"length"`
	Ruby      string `json:"ruby,omitempty" yaml:"ruby,omitempty" msgpack:"ruby,omitempty"`
	Divisions int    `json:"divisions,omitempty" yaml:"divisions,omitempty" msgpack:"divisions,omitempty"`
}

// A Line is an exported physical line. Logical is -1 for lines without
// syllables.
type Line struct {
	TextStart      int `json:"textStart" yaml:"textStart" msgpack:"textStart"`
	TextLength     int `json:"textLength" yaml:"textLength" msgpack:"textLength"`
	AttachedStart  int `json:"attachedStart" yaml:"attachedStart" msgpack:"attachedStart"`
	AttachedLength int `json:"attachedLength" yaml:"attachedLength" msgpack:"attachedLength"`
	Logical        int `json:"logical" yaml:"logical" msgpack:"logical"`
}

// A Syllable is an exported syllable: a list of [attached, character] pairs,
// where attached is -1 for a character of base text.
type Syllable [][2]int

// New converts src to a Document.
func New(src *lyrics.Source) *Document {
	doc := &Document{
		Schema:     Schema,
		Text:       src.Text,
		Specifiers: make([]Specifier, len(src.Specifiers)),
		Lines:      make([]Line, src.Lines.PhysicalLineCount()),
		Syllables:  make([][]Syllable, len(src.Syllables)),
	}
	for i, spec := range src.Specifiers {
		doc.Specifiers[i] = newSpecifier(spec)
	}
	for i := range doc.Lines {
		p := src.Lines.PhysicalLine(i)
		logical := src.Lines.LogicalIndex(i)
		if logical < 0 {
			logical = -1
		}
		doc.Lines[i] = Line{
			TextStart:      p.TextStart,
			TextLength:     p.TextLength,
			AttachedStart:  p.AttachedStart,
			AttachedLength: p.AttachedLength,
			Logical:        logical,
		}
	}
	for i, line := range src.Syllables {
		out := make([]Syllable, len(line))
		for j, syl := range line {
			out[j] = make(Syllable, len(syl))
			for k, sub := range syl {
				out[j][k] = [2]int{sub.AttachedIndex, sub.CharacterIndex}
			}
		}
		doc.Syllables[i] = out
	}
	return doc
}

func newSpecifier(spec lyrics.AttachedSpecifier) Specifier {
	r := spec.Base()
	out := Specifier{Start: r.Start, Length: r.Length}
	switch t := spec.(type) {
	case lyrics.Ruby:
		out.Kind, out.Ruby = KindRuby, t.Text
	case lyrics.SyllableDivision:
		out.Kind, out.Divisions = KindDivision, t.DivisionCount
	default:
		panic(fmt.Sprintf("export: unknown specifier type %T", spec))
	}
	return out
}

// A Format names an encoding for documents.
type Format string

// Constants defining the supported formats.
const (
	JSON    Format = "json"
	YAML    Format = "yaml"
	MsgPack Format = "msgpack"
)

// Formats lists the supported formats.
var Formats = []Format{JSON, YAML, MsgPack}

// ParseFormat returns the format with the given name, ignoring case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case JSON, YAML, MsgPack:
		return f, nil
	case "yml":
		return YAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want json, yaml, or msgpack)", s)
}

// Binary reports whether f produces non-text output.
func (f Format) Binary() bool { return f == MsgPack }

// Encode writes doc to w in format f.
func Encode(w io.Writer, doc *Document, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(doc)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case MsgPack:
		return msgpack.NewEncoder(w).Encode(doc)
	}
	return fmt.Errorf("unknown format %q", f)
}

// Decode reads a document in format f from r.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	var err error
	switch f {
	case JSON:
		err = json.NewDecoder(r).Decode(&doc)
	case YAML:
		err = yaml.NewDecoder(r).Decode(&doc)
	case MsgPack:
		err = msgpack.NewDecoder(r).Decode(&doc)
	default:
		return nil, fmt.Errorf("unknown format %q", f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f, err)
	}
	if doc.Schema != Schema {
		return nil, fmt.Errorf("unsupported schema version %d", doc.Schema)
	}
	return &doc, nil
}
