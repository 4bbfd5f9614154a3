// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package autoruby

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Unmatched marks a base position the analyzer could not align.
const Unmatched = 0xFFFF

// ErrNoResult is reported by a provider that has no analysis for a text.
var ErrNoResult = errors.New("no analysis available")

// MonoRuby is an analyzer's per-character phonetic breakdown of a base text.
//
// Indexes has one entry per rune of the base text plus one. Indexes[i] is
// the rune offset in Text corresponding to base rune i, or Unmatched.
// Indexes[n] for a base of n runes corresponds to the end of the base.
type MonoRuby struct {
	Text    string
	Indexes []uint16
}

// Validate reports an error if m is not a well-formed analysis of base.
func (m MonoRuby) Validate(base string) error {
	n := utf8.RuneCountInString(base)
	if len(m.Indexes) != n+1 {
		return fmt.Errorf("analysis of %q has %d indexes, want %d", base, len(m.Indexes), n+1)
	}
	limit := utf8.RuneCountInString(m.Text)
	for i, v := range m.Indexes {
		if v != Unmatched && int(v) > limit {
			return fmt.Errorf("analysis of %q: index %d is %d, beyond the end of %q", base, i, v, m.Text)
		}
	}
	return nil
}

// A Provider produces the analysis of a base text. For an empty text the
// analysis is MonoRuby{Text: "", Indexes: []uint16{0}}.
type Provider interface {
	MonoRuby(ctx context.Context, text string) (MonoRuby, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, text string) (MonoRuby, error)

// MonoRuby satisfies the Provider interface.
func (f ProviderFunc) MonoRuby(ctx context.Context, text string) (MonoRuby, error) {
	return f(ctx, text)
}

// emptyRuby is the analysis of an empty text.
func emptyRuby() MonoRuby { return MonoRuby{Indexes: []uint16{0}} }
