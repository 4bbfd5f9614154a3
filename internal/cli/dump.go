// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"errors"
	"os"

	"github.com/calbonaler/lyriser/internal/export"
	"github.com/calbonaler/lyriser/lyrics"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newDumpCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump [file]",
		Short: "Export the flattened text, specifiers and syllables of a file",
		Long: `Flatten a lyrics file and write the result: its text, ruby and syllable
division specifiers, physical and logical lines, and the syllables of each
logical line. Structural errors are recovered as by the parser.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if file, ok := out.(*os.File); ok && f.Binary() && term.IsTerminal(int(file.Fd())) {
				return errors.New("refusing to write binary output to a terminal")
			}
			text, err := readInput(cmd, inputPath(args))
			if err != nil {
				return err
			}
			return export.Encode(out, export.New(lyrics.Parse(text, nil)), f)
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json, yaml, msgpack")
	return cmd
}
