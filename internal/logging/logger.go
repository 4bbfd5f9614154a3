// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package logging wraps charmbracelet/log with a process-wide default logger
// and context plumbing.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	defaultMu     sync.Mutex
	defaultLogger *log.Logger
)

// New constructs a logger writing to stderr at the named level.
func New(level string) *log.Logger { return NewWriter(os.Stderr, level) }

// NewWriter constructs a logger writing to w at the named level. Valid levels
// are "debug", "info", "warn" and "error"; any other name selects "info".
func NewWriter(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: "lyriser"})
	logger.SetLevel(ParseLevel(level))
	return logger
}

// ParseLevel converts a level name to a log level, defaulting to info.
func ParseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Default returns the process-wide default logger.
func Default() *log.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New("info")
	}
	return defaultLogger
}

// SetDefault replaces the process-wide default logger.
func SetDefault(logger *log.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// SetLevel sets the level of the default logger.
func SetLevel(level string) { Default().SetLevel(ParseLevel(level)) }
