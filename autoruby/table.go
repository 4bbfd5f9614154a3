// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package autoruby

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"os"

	"fortio.org/safecast"
	"github.com/tailscale/hujson"
)

// entry is the encoded form of a MonoRuby. An index of -1 is Unmatched.
type entry struct {
	Text    string `json:"text"`
	Indexes []int  `json:"indexes"`
}

func (e entry) monoRuby() (MonoRuby, error) {
	out := MonoRuby{Text: e.Text, Indexes: make([]uint16, len(e.Indexes))}
	for i, v := range e.Indexes {
		if v == -1 {
			out.Indexes[i] = Unmatched
			continue
		}
		u, err := safecast.Conv[uint16](v)
		if err != nil || u == Unmatched {
			return MonoRuby{}, fmt.Errorf("index %d: invalid value %d", i, v)
		}
		out.Indexes[i] = u
	}
	return out, nil
}

// decodeEntry decodes one analysis from JSON, which may contain comments
// and trailing commas.
func decodeEntry(data []byte) (MonoRuby, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return MonoRuby{}, err
	}
	var e entry
	if err := json.Unmarshal(std, &e); err != nil {
		return MonoRuby{}, err
	}
	return e.monoRuby()
}

// A TableProvider answers from a fixed table of analyses keyed by the exact
// base text.
type TableProvider struct {
	entries map[string]MonoRuby
}

// NewTableProvider constructs a TableProvider from a map of analyses.
func NewTableProvider(entries map[string]MonoRuby) *TableProvider {
	return &TableProvider{entries: maps.Clone(entries)}
}

// ParseTable parses a table of analyses. The input is a JSON object, which
// may contain comments and trailing commas, mapping each base text to an
// analysis:
//
//	{
//	  // 華やか
//	  "華やか": {"text": "はなやか", "indexes": [0, 2, 3, 4]},
//	  "麗らか": {"text": "うららか", "indexes": [0, -1, -1, 4]},
//	}
//
// An index of -1 denotes Unmatched.
func ParseTable(data []byte) (*TableProvider, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}
	var raw map[string]entry
	if err := json.Unmarshal(std, &raw); err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}
	t := &TableProvider{entries: make(map[string]MonoRuby, len(raw))}
	for base, e := range raw {
		mr, err := e.monoRuby()
		if err == nil {
			err = mr.Validate(base)
		}
		if err != nil {
			return nil, fmt.Errorf("parse table: entry %q: %w", base, err)
		}
		t.entries[base] = mr
	}
	return t, nil
}

// LoadTable reads and parses a table file.
func LoadTable(path string) (*TableProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := ParseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Len reports the number of entries in t.
func (t *TableProvider) Len() int { return len(t.entries) }

// MonoRuby satisfies the Provider interface. It reports ErrNoResult for a
// text that is not in the table.
func (t *TableProvider) MonoRuby(_ context.Context, text string) (MonoRuby, error) {
	if text == "" {
		return emptyRuby(), nil
	}
	mr, ok := t.entries[text]
	if !ok {
		return MonoRuby{}, fmt.Errorf("%w for %q", ErrNoResult, text)
	}
	return mr, nil
}
