// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package lyriser implements the lexical layer of a line-oriented lyrics
// markup that attaches ruby (phonetic annotations) and syllable divisions to
// base text.
//
// # Markup
//
// The markup reserves six characters:
//
//	Char | Meaning
//	---- | ----------------------------------------------------------
//	|    | starts a multi-character ruby base:   |日本(にほん)
//	(    | starts ruby text after a base:        華(はな)
//	)    | ends ruby text
//	[    | starts a silent region:               [Ah,] 歌(うた)
//	]    | ends a silent region
//	`    | escapes the next character:           `(
//
// The braces { and } group consecutive syllables into one navigable unit
// unless they are escaped. Ruby text consisting only of "#" marks a syllable
// division: a(##) splits the timing of "a" into two units without ruby.
//
// # Scanning
//
// The Scanner type is a character cursor over a source string that consumes
// one line at a time. Construct a scanner from a string and call NextLine to
// advance to each line, then Peek and Read to consume its characters:
//
//	s := lyriser.NewScanner(input)
//	for s.NextLine() {
//	   for {
//	      if _, ok := s.Peek(); !ok {
//	         break
//	      }
//	      log.Printf("Character: %q at %+v", s.Read(), s.Location())
//	   }
//	}
//
// # Errors
//
// The parser in package ast never fails. Structural problems are reported as
// *ParserError values to an ErrorSink, and the parser substitutes placeholder
// nodes so that parsing always produces a complete tree. An ErrorList can
// collect reported errors:
//
//	var errs lyriser.ErrorList
//	lines := ast.Parse(input, errs.Add)
//	if errs.Len() != 0 {
//	   log.Printf("Parse found problems: %v", errs)
//	}
//
// Each error carries a stable code (E0001 through E0007) that does not depend
// on the wording of its description.
package lyriser
