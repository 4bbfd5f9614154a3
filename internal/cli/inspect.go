// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/calbonaler/lyriser"
	"github.com/calbonaler/lyriser/ast"
	"github.com/calbonaler/lyriser/ast/cursor"
	"github.com/spf13/cobra"
)

func newInspectCommand() *cobra.Command {
	var offset int
	cmd := &cobra.Command{
		Use:   "inspect [file] --offset N",
		Short: "Print the nodes enclosing a byte offset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, inputPath(args))
			if err != nil {
				return err
			}
			if offset < 0 || offset > len(text) {
				return fmt.Errorf("offset %d out of range [0, %d]", offset, len(text))
			}
			for _, line := range ast.Parse(text, nil) {
				if offset < line.Span.Start.Index || offset > line.Span.End.Index {
					continue
				}
				return printPath(cmd.OutOrStdout(), line, cursor.At(line.Nodes, offset))
			}
			return fmt.Errorf("offset %d is inside a line terminator", offset)
		},
	}
	cmd.Flags().IntVar(&offset, "offset", 0, "byte offset in the file")
	return cmd
}

func printPath(w io.Writer, line ast.Line, c *cursor.Cursor) error {
	if _, err := fmt.Fprintf(w, "line %d %s\n", line.Span.Start.Line, spanString(line.Span)); err != nil {
		return err
	}
	if c.Err() != nil {
		_, err := fmt.Fprintln(w, "  (no node)")
		return err
	}
	path := c.Path()
	for i, v := range path[1:] {
		indent := strings.Repeat("  ", i+1)
		var desc string
		switch t := v.(type) {
		case *ast.Simple:
			desc = fmt.Sprintf("Simple %q state=%v escaped=%v %s", t.Code, t.State(), t.Escaped, spanString(t.Span()))
		case *ast.Silent:
			desc = fmt.Sprintf("Silent %q %s", t.Text(), spanString(t.Span()))
		case *ast.Composite:
			kind := "ruby"
			if t.IsSyllableDivision() {
				kind = "division"
			}
			desc = fmt.Sprintf("Composite %q %s=%q complex=%v %s", t.Text(), kind, t.RubyText(), t.IsComplex, spanString(t.Span()))
		case cursor.Group:
			part := "ruby"
			if comp, ok := path[i].(*ast.Composite); ok && len(t) != 0 && t[0] == ast.Node(comp.Base[0]) {
				part = "base"
			}
			desc = fmt.Sprintf("%s (%d nodes)", part, len(t))
		default:
			desc = fmt.Sprintf("%T", v)
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, desc); err != nil {
			return err
		}
	}
	return nil
}

func spanString(s lyriser.SourceSpan) string {
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}
