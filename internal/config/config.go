// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package config loads settings for the lyriser command-line tool.
//
// Settings come from, in increasing order of precedence: built-in defaults,
// a configuration file, and LYRISER_* environment variables. The file is
// either given explicitly or found by searching upward from the working
// directory for one of FileNames. YAML and TOML files are supported:
//
//	# .lyriser.yaml
//	log_level: debug
//	color: never
//	jobs: 4
//	analyzer:
//	  table: readings.hujson
//
// Command-line flags, applied by the caller, override all of these.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/calbonaler/lyriser/autoruby"
	"gopkg.in/yaml.v3"
)

// FileNames are the names of configuration files, in order of preference.
var FileNames = []string{".lyriser.yaml", ".lyriser.yml", ".lyriser.toml"}

// EnvPrefix is the prefix of environment variables that override settings.
const EnvPrefix = "LYRISER_"

// Valid color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ErrNoAnalyzer is reported by Provider when no analyzer is configured.
var ErrNoAnalyzer = errors.New("no analyzer configured")

// Config holds the settings of the tool.
type Config struct {
	LogLevel string   `yaml:"log_level" toml:"log_level"`
	Color    string   `yaml:"color" toml:"color"`
	Jobs     int      `yaml:"jobs" toml:"jobs"` // 0 means one per CPU
	Analyzer Analyzer `yaml:"analyzer" toml:"analyzer"`

	// Path is the file the settings were loaded from, if any.
	Path string `yaml:"-" toml:"-"`
}

// Analyzer selects the provider used for automatic ruby. At most one of
// its fields may be set.
type Analyzer struct {
	Table   string   `yaml:"table" toml:"table"`     // a table file for autoruby.LoadTable
	Command []string `yaml:"command" toml:"command"` // a program and its arguments
}

// Default returns the default settings.
func Default() *Config { return &Config{LogLevel: "info", Color: ColorAuto} }

// Find searches dir and its ancestors for a configuration file, and returns
// its path. It returns "" if none is found.
func Find(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
				return path, nil
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load reads settings from the file at path over the defaults. The format
// is chosen by the file extension. A relative analyzer table path is
// resolved against the directory of the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = decodeYAML(data, cfg)
	case ".toml":
		err = decodeTOML(data, cfg)
	default:
		err = fmt.Errorf("unknown configuration format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	if t := cfg.Analyzer.Table; t != "" && !filepath.IsAbs(t) {
		cfg.Analyzer.Table = filepath.Join(filepath.Dir(path), t)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeTOML(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if keys := md.Undecoded(); len(keys) != 0 {
		return fmt.Errorf("unknown setting %q", keys[0].String())
	}
	return nil
}

// Resolve loads the settings for a run: from explicit if it is not empty,
// otherwise from the file found by searching upward from workDir, otherwise
// the defaults. Environment overrides are then applied.
func Resolve(explicit, workDir string) (*Config, error) {
	path := explicit
	if path == "" {
		found, err := Find(workDir)
		if err != nil {
			return nil, err
		}
		path = found
	}
	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides settings from environment variables, looked up with
// lookup. The variables are LYRISER_LOG_LEVEL, LYRISER_COLOR, LYRISER_JOBS,
// LYRISER_ANALYZER_TABLE, and LYRISER_ANALYZER_COMMAND (split on spaces).
// Setting either analyzer variable replaces the configured analyzer.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		return v, ok && v != ""
	}
	if v, ok := get("LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := get("COLOR"); ok {
		c.Color = v
	}
	if v, ok := get("JOBS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %sJOBS: %q", EnvPrefix, v)
		}
		c.Jobs = n
	}
	if v, ok := get("ANALYZER_TABLE"); ok {
		c.Analyzer = Analyzer{Table: v}
	}
	if v, ok := get("ANALYZER_COMMAND"); ok {
		c.Analyzer = Analyzer{Command: strings.Fields(v)}
	}
	return c.Validate()
}

// Validate reports an error if c contains invalid settings.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q", c.Color)
	}
	if c.Jobs < 0 {
		return fmt.Errorf("invalid job count %d", c.Jobs)
	}
	if c.Analyzer.Table != "" && len(c.Analyzer.Command) != 0 {
		return errors.New("analyzer table and command are mutually exclusive")
	}
	return nil
}

// Provider constructs the configured analyzer provider.
func (c *Config) Provider() (autoruby.Provider, error) {
	switch {
	case c.Analyzer.Table != "":
		t, err := autoruby.LoadTable(c.Analyzer.Table)
		if err != nil {
			return nil, err
		}
		return t, nil
	case len(c.Analyzer.Command) != 0:
		return &autoruby.CommandProvider{Path: c.Analyzer.Command[0], Args: c.Analyzer.Command[1:]}, nil
	}
	return nil, ErrNoAnalyzer
}
