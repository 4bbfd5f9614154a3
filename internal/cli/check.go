// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/calbonaler/lyriser"
	"github.com/calbonaler/lyriser/ast"
	"github.com/calbonaler/lyriser/internal/diagfmt"
	"github.com/calbonaler/lyriser/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newCheckCommand(g *globals) *cobra.Command {
	var jobs int
	var quiet bool
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Report structural errors in lyrics files",
		Long: `Parse each file and report structural errors with a source excerpt.
With no files, standard input is checked. The command exits with a non-zero
status if any error is found.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{stdinName}
			}
			if !cmd.Flags().Changed("jobs") {
				jobs = g.cfg.Jobs
			}
			results, err := checkFiles(cmd.Context(), cmd, args, jobs)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			opts := diagfmt.Options{Color: g.useColor(out), Context: !quiet}
			total := 0
			for _, r := range results {
				total += len(r.errs)
				if err := diagfmt.Pretty(out, r.path, r.text, r.errs, opts); err != nil {
					return err
				}
			}
			if !quiet {
				if err := diagfmt.Summary(out, len(results), total, opts.Color); err != nil {
					return err
				}
			}
			if total != 0 {
				return ErrIssuesFound
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of files to check in parallel (0 means one per CPU)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only error lines, without excerpts or summary")
	return cmd
}

type checkResult struct {
	path string
	text string
	errs lyriser.ErrorList
}

// checkFiles parses the named files concurrently, using at most jobs
// goroutines, and returns their results in the order of paths.
func checkFiles(ctx context.Context, cmd *cobra.Command, paths []string, jobs int) ([]checkResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	log := logging.FromContext(ctx)
	log.Debug("checking files", logging.FieldJobs, jobs)

	results := make([]checkResult, len(paths))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			text, err := readInput(cmd, path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			var errs lyriser.ErrorList
			ast.Parse(text, errs.Add)
			log.Debug("checked", logging.FieldPath, path, logging.FieldErrors, errs.Len())
			results[i] = checkResult{path: path, text: text, errs: errs}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
