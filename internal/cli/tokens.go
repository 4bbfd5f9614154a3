// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/calbonaler/lyriser/ast"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

func newTokensCommand(g *globals) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the highlight tokens of lyrics markup",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, inputPath(args))
			if err != nil {
				return err
			}
			toks := documentTokens(text)
			out := cmd.OutOrStdout()
			switch format {
			case "pretty":
				return printTokens(out, text, toks, newTokenStyles(g.useColor(out)), terminalWidth(out))
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(toks)
			}
			return fmt.Errorf("unknown format %q (want pretty or json)", format)
		},
	}
	cmd.Flags().StringVar(&format, "format", "pretty", "output format: pretty, json")
	return cmd
}

// A token is the exported form of an ast.Token.
type token struct {
	Label  ast.Label `json:"label"`
	Line   int       `json:"line"`
	Column int       `json:"column"`
	Start  int       `json:"start"`
	End    int       `json:"end"`
}

func documentTokens(text string) []token {
	var out []token
	for _, line := range ast.Parse(text, nil) {
		for tok := range ast.Tokens(line.Nodes) {
			out = append(out, token{
				Label:  tok.Label,
				Line:   tok.Span.Start.Line,
				Column: tok.Span.Start.Column,
				Start:  tok.Span.Start.Index,
				End:    tok.Span.End.Index,
			})
		}
	}
	return out
}

type tokenStyles struct {
	pos    lipgloss.Style
	labels map[ast.Label]lipgloss.Style
}

func newTokenStyles(color bool) tokenStyles {
	if !color {
		return tokenStyles{pos: lipgloss.NewStyle(), labels: map[ast.Label]lipgloss.Style{}}
	}
	return tokenStyles{
		pos: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		labels: map[ast.Label]lipgloss.Style{
			ast.SyllableGrouping: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
			ast.SilentRegion:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),
			ast.AttachedBase:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
			ast.RubyText:         lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			ast.SyllableDivision: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		},
	}
}

func (s tokenStyles) label(l ast.Label) string {
	text := fmt.Sprintf("%-16s", l)
	if st, ok := s.labels[l]; ok {
		return st.Render(text)
	}
	return text
}

// printTokens writes one token per line: its position, label and source
// text. If width > 0, the source text is truncated to fit.
func printTokens(w io.Writer, text string, toks []token, s tokenStyles, width int) error {
	for _, t := range toks {
		pos := fmt.Sprintf("%4d:%-4d", t.Line, t.Column)
		src := strings.ReplaceAll(text[t.Start:t.End], "\t", " ")
		if width > 0 {
			// Position, label and separating spaces take 27 columns.
			src = runewidth.Truncate(src, max(width-27, 1), "…")
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", s.pos.Render(pos), s.label(t.Label), src); err != nil {
			return err
		}
	}
	return nil
}
