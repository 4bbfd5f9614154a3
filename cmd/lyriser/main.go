// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Program lyriser checks, formats, exports and annotates lyrics markup.
package main

import (
	"errors"
	"os"

	"github.com/calbonaler/lyriser/internal/cli"
	"github.com/calbonaler/lyriser/internal/logging"
)

// Set by the linker.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() { os.Exit(run()) }

func run() int {
	root := cli.NewRootCommand(cli.BuildInfo{Version: version, Commit: commit, Date: date})
	if err := root.Execute(); err != nil {
		if !errors.Is(err, cli.ErrIssuesFound) {
			logging.Default().Error("command failed", logging.FieldError, err)
		}
		return 1
	}
	return 0
}
