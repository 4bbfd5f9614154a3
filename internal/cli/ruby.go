// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"io"
	"strings"

	"github.com/calbonaler/lyriser/autoruby"
	"github.com/calbonaler/lyriser/internal/config"
	"github.com/calbonaler/lyriser/internal/logging"
	"github.com/spf13/cobra"
)

func newRubyCommand(g *globals) *cobra.Command {
	var (
		write      bool
		table      string
		start, end int
	)
	cmd := &cobra.Command{
		Use:   "ruby [file]",
		Short: "Add automatic ruby using a morphological analyzer",
		Long: `Attach ruby to runs of ideographs whose reading the configured analyzer
can determine. Existing ruby, syllable divisions and silent regions are left
unchanged, so running the command twice gives the same result. Lines with
structural errors are skipped.

The analyzer is set in the configuration file, or with --table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := logging.FromContext(ctx)

			cfg := *g.cfg
			if table != "" {
				cfg.Analyzer = config.Analyzer{Table: table}
			}
			p, err := cfg.Provider()
			if err != nil {
				return err
			}
			if cfg.Analyzer.Table != "" {
				log.Debug("using analyzer", logging.FieldProvider, cfg.Analyzer.Table)
			} else {
				log.Debug("using analyzer", logging.FieldProvider, strings.Join(cfg.Analyzer.Command, " "))
			}

			path := inputPath(args)
			text, err := readInput(cmd, path)
			if err != nil {
				return err
			}
			if end < 0 {
				end = len(text)
			}
			a := &autoruby.Aligner{Provider: p}
			res, err := a.AnnotateRange(ctx, text, start, end)
			if err != nil {
				return err
			}
			for _, s := range res.Skipped {
				log.Warn("skipped line", logging.FieldPath, path, logging.FieldLine, s.Line, logging.FieldError, s.Err)
			}
			log.Debug("annotated", logging.FieldPath, path, logging.FieldChanged, len(res.Changed))

			if !write {
				_, err := io.WriteString(cmd.OutOrStdout(), res.Text)
				return err
			}
			if len(res.Changed) == 0 {
				return nil
			}
			return writeOutput(path, res.Text)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
	cmd.Flags().StringVar(&table, "table", "", "analyzer table file (overrides the configuration)")
	cmd.Flags().IntVar(&start, "start", 0, "byte offset of the first line to annotate")
	cmd.Flags().IntVar(&end, "end", -1, "byte offset of the end of the lines to annotate (default end of file)")
	return cmd
}
