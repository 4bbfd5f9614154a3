// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package autoruby

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// A CommandProvider runs an external analyzer program for each text. The
// program receives the base text on stdin and must write one analysis to
// stdout as a JSON object:
//
//	{"text": "はなやか", "indexes": [0, 2, 3, 4]}
//
// An index of -1 denotes Unmatched. A non-zero exit status is an error.
type CommandProvider struct {
	Path string   // the program to run
	Args []string // arguments to the program
	Dir  string   // working directory; if empty, the current directory
}

// MonoRuby satisfies the Provider interface.
func (c *CommandProvider) MonoRuby(ctx context.Context, text string) (MonoRuby, error) {
	if text == "" {
		return emptyRuby(), nil
	}
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = strings.NewReader(text)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return MonoRuby{}, fmt.Errorf("run %s: %w: %s", c.Path, err, msg)
		}
		return MonoRuby{}, fmt.Errorf("run %s: %w", c.Path, err)
	}
	mr, err := decodeEntry(out)
	if err != nil {
		return MonoRuby{}, fmt.Errorf("decode output of %s: %w", c.Path, err)
	}
	return mr, nil
}
