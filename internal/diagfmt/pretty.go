// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package diagfmt formats parser errors for display.
package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/calbonaler/lyriser"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Options control the formatting of diagnostics.
type Options struct {
	Color   bool // use ANSI colors
	Context bool // show the source line and a caret under the error
}

type palette struct {
	path, severity, code, gutter, caret *color.Color
}

func newPalette(enable bool) palette {
	p := palette{
		path:     color.New(color.Bold),
		severity: color.New(color.FgRed, color.Bold),
		code:     color.New(color.FgYellow),
		gutter:   color.New(color.FgBlue),
		caret:    color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.path, p.severity, p.code, p.gutter, p.caret} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty writes one entry for each error in errs, reported while parsing src
// from the named file:
//
//	song.lrc:2:5: error E0001: silent region is not properly terminated
//	  2 | [abc
//	    |     ^
func Pretty(w io.Writer, path, src string, errs lyriser.ErrorList, opts Options) error {
	p := newPalette(opts.Color)
	var lines []string
	if opts.Context {
		lines = splitLines(src)
	}
	for _, e := range errs {
		loc := e.Location
		if _, err := fmt.Fprintf(w, "%s: %s %s: %s\n",
			p.path.Sprintf("%s:%d:%d", path, loc.Line, loc.Column),
			p.severity.Sprint("error"), p.code.Sprint(e.Code), e.Description,
		); err != nil {
			return err
		}
		if !opts.Context || loc.Line < 1 || loc.Line > len(lines) {
			continue
		}
		text := lines[loc.Line-1]
		num := strconv.Itoa(loc.Line)
		pad := strings.Repeat(" ", len(num))
		col := min(max(loc.Column-1, 0), len(text))
		if _, err := fmt.Fprintf(w, "  %s %s\n  %s %s%s\n",
			p.gutter.Sprint(num+" |"), text,
			p.gutter.Sprint(pad+" |"), strings.Repeat(" ", runewidth.StringWidth(text[:col])), p.caret.Sprint("^"),
		); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes a one-line count of the errors found in files.
func Summary(w io.Writer, files, errors int, useColor bool) error {
	p := newPalette(useColor)
	switch errors {
	case 0:
		_, err := fmt.Fprintf(w, "%d %s checked, no errors\n", files, plural(files, "file"))
		return err
	default:
		_, err := fmt.Fprintf(w, "%d %s checked, %s\n", files, plural(files, "file"),
			p.severity.Sprintf("%d %s", errors, plural(errors, "error")))
		return err
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// splitLines returns the content of each line of src, without terminators.
func splitLines(src string) []string {
	var out []string
	s := lyriser.NewScanner(src)
	for s.NextLine() {
		start := s.Location().Index
		for {
			if _, ok := s.Peek(); !ok {
				break
			}
			s.Read()
		}
		out = append(out, src[start:s.Location().Index])
	}
	return out
}
