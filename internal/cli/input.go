// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package cli

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// stdinName is the argument and display name for standard input.
const stdinName = "-"

// inputPath returns the single input named by args, defaulting to stdin.
func inputPath(args []string) string {
	if len(args) == 0 {
		return stdinName
	}
	return args[0]
}

// readInput returns the contents of the named input.
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == stdinName {
		data, err := io.ReadAll(cmd.InOrStdin())
		return string(data), err
	}
	data, err := os.ReadFile(path)
	return string(data), err
}

// writeOutput replaces the contents of path with text, keeping its mode.
func writeOutput(path, text string) error {
	if path == stdinName {
		return errors.New("cannot write standard input in place")
	}
	fi, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(text), fi.Mode().Perm())
}
