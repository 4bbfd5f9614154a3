// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cli provides the command structure of the lyriser tool.
package cli

import (
	"errors"
	"io"
	"os"

	"github.com/calbonaler/lyriser/internal/config"
	"github.com/calbonaler/lyriser/internal/logging"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// ErrIssuesFound is returned by commands that completed but found problems
// in their input. It signals a non-zero exit without further reporting.
var ErrIssuesFound = errors.New("issues found")

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globals holds the state shared by all subcommands.
type globals struct {
	configPath string
	debug      bool
	color      string

	cfg *config.Config
}

// NewRootCommand creates the root lyriser command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	g := new(globals)
	rootCmd := &cobra.Command{
		Use:   "lyriser",
		Short: "Check, format and annotate lyrics ruby markup",
		Long: `lyriser works with lyrics written in a line-oriented markup that attaches
ruby (phonetic annotations) and syllable divisions to base text:

  |日本(にほん)の華(はな)   [Ah,] {a}(##)

It reports structural errors, regenerates and normalizes markup, exports the
flattened text with its specifiers and syllables, and proposes ruby using an
external morphological analyzer.`,
		PersistentPreRunE: g.setup,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&g.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&g.color, "color", "", "colorize output: auto, always, never")

	rootCmd.AddCommand(newCheckCommand(g))
	rootCmd.AddCommand(newFmtCommand())
	rootCmd.AddCommand(newTokensCommand(g))
	rootCmd.AddCommand(newDumpCommand())
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newRubyCommand(g))
	rootCmd.AddCommand(newVersionCommand(info))
	return rootCmd
}

// setup resolves the configuration and installs the logger.
func (g *globals) setup(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(g.configPath, wd)
	if err != nil {
		return err
	}
	if g.color != "" {
		cfg.Color = g.color
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	if g.debug {
		cfg.LogLevel = "debug"
	}
	g.cfg = cfg

	logger := logging.NewWriter(cmd.ErrOrStderr(), cfg.LogLevel)
	logging.SetDefault(logger)
	cmd.SetContext(logging.WithLogger(cmd.Context(), logger))
	if cfg.Path != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, cfg.Path)
	}
	return nil
}

// useColor reports whether output written to w should be colorized.
func (g *globals) useColor(w io.Writer) bool {
	mode := config.ColorAuto
	if g.cfg != nil {
		mode = g.cfg.Color
	}
	return isColorEnabled(mode, w)
}

func isColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth reports the width of the terminal w writes to, or 0.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
