// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/calbonaler/lyriser"
	"github.com/calbonaler/lyriser/ast"
	"github.com/calbonaler/lyriser/internal/logging"
	"github.com/spf13/cobra"
)

func newFmtCommand() *cobra.Command {
	var write, normalize bool
	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Regenerate lyrics markup",
		Long: `Parse a file and print its markup regenerated from the syntax tree.
With --normalize, escapes are written only where a character would otherwise
be read as syntax. Files with structural errors are not rewritten.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := inputPath(args)
			text, err := readInput(cmd, path)
			if err != nil {
				return err
			}
			var errs lyriser.ErrorList
			lines := ast.Parse(text, errs.Add)
			if errs.Len() != 0 {
				return fmt.Errorf("%s: %w", path, errs)
			}
			out := formatLines(lines, normalize)
			if !write {
				_, err := io.WriteString(cmd.OutOrStdout(), out)
				return err
			}
			if out == text {
				return nil
			}
			logging.FromContext(cmd.Context()).Info("formatted", logging.FieldPath, path)
			return writeOutput(path, out)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "remove escapes that are not required")
	return cmd
}

func formatLines(lines []ast.Line, normalize bool) string {
	if !normalize {
		return ast.DocumentSource(lines)
	}
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(ast.NormalizeSource(line.Nodes))
		sb.WriteString(line.Terminator)
	}
	return sb.String()
}
