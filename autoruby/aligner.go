// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package autoruby proposes ruby for lyrics markup by aligning the output of
// an external morphological analyzer against the parsed markup.
//
// The analyzer is consulted through the Provider interface. For each line,
// the aligner collects the base text of the line, asks the provider for a
// per-character reading, and attaches ruby to each run of ideographs whose
// reading it can determine. Silent regions and existing ruby are preserved:
// only ordinary characters are rewritten, so applying the aligner to its own
// output changes nothing.
package autoruby

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/calbonaler/lyriser"
	"github.com/calbonaler/lyriser/ast"
	"github.com/calbonaler/lyriser/internal/logging"
	"github.com/creachadair/mds/queue"
	"github.com/rivo/uniseg"
)

// ErrParse is reported for a line that was not annotated because it has
// structural errors.
var ErrParse = errors.New("line has parse errors")

// An Aligner attaches automatic ruby to lyrics markup.
type Aligner struct {
	// Provider analyzes base text. It must not be nil.
	Provider Provider

	// Eligible reports whether a grapheme cluster may receive ruby. If nil,
	// IsRubyEligible is used.
	Eligible func(grapheme string) bool
}

// A Result is the outcome of annotating a document.
type Result struct {
	Text string // the complete annotated document

	// The input byte range [Start, End) covered by the affected lines, and
	// the text that replaces it in Text.
	Start, End  int
	Replacement string

	Changed []int         // line numbers (1-based) that were rewritten
	Skipped []SkippedLine // lines left unchanged because of an error
}

// A SkippedLine records a line that was not annotated, and why.
type SkippedLine struct {
	Line int // 1-based
	Err  error
}

// Annotate adds automatic ruby to every line of doc.
func (a *Aligner) Annotate(ctx context.Context, doc string) (*Result, error) {
	return a.AnnotateRange(ctx, doc, 0, len(doc))
}

// AnnotateRange adds automatic ruby to the lines of doc that overlap the byte
// range [start, end). A line with parse errors, or for which the provider
// fails or returns a malformed analysis, is left unchanged and reported in
// the result. An error is returned only if the range is invalid or ctx ends.
func (a *Aligner) AnnotateRange(ctx context.Context, doc string, start, end int) (*Result, error) {
	if start < 0 || end > len(doc) || start > end {
		return nil, fmt.Errorf("invalid range [%d, %d) for document of length %d", start, end, len(doc))
	}
	log := logging.FromContext(ctx)

	var errs lyriser.ErrorList
	lines := ast.Parse(doc, errs.Add)
	bad := errs.Lines()

	res := &Result{Start: -1}
	var sb strings.Builder
	for i, line := range lines {
		lo, hi := line.Span.Start.Index, line.Span.End.Index
		text := doc[lo:hi]
		if hi < start || lo > end {
			sb.WriteString(text)
			sb.WriteString(line.Terminator)
			continue
		}
		if res.Start < 0 {
			res.Start = lo
		}
		res.End = hi

		num := i + 1
		if slices.Contains(bad, num) {
			log.Debug("skipping line", logging.FieldLine, num, logging.FieldError, ErrParse)
			res.Skipped = append(res.Skipped, SkippedLine{Line: num, Err: ErrParse})
			sb.WriteString(text)
		} else if out, ok, err := a.annotateLine(ctx, line.Nodes); err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			log.Debug("skipping line", logging.FieldLine, num, logging.FieldError, err)
			res.Skipped = append(res.Skipped, SkippedLine{Line: num, Err: err})
			sb.WriteString(text)
		} else if ok && out != text {
			res.Changed = append(res.Changed, num)
			sb.WriteString(out)
		} else {
			sb.WriteString(text)
		}
		sb.WriteString(line.Terminator)
	}

	res.Text = sb.String()
	if res.Start < 0 {
		res.Start, res.End = start, start // the range lies within a line terminator
	}
	res.Replacement = res.Text[res.Start : len(res.Text)-(len(doc)-res.End)]
	return res, nil
}

// annotateLine returns the markup of nodes with automatic ruby added. It
// reports false if there was nothing to annotate.
func (a *Aligner) annotateLine(ctx context.Context, nodes []ast.Node) (string, bool, error) {
	var lv leaves
	lv.collect(nodes)
	base := lv.text.String()
	bg := graphemes(base)
	if !slices.ContainsFunc(bg, func(g grapheme) bool { return a.eligible(g.text) }) {
		return "", false, nil
	}

	mr, err := a.Provider.MonoRuby(ctx, base)
	if err != nil {
		return "", false, fmt.Errorf("analyze %q: %w", base, err)
	}
	if err := mr.Validate(base); err != nil {
		return "", false, err
	}

	idx := make([]int, len(mr.Indexes))
	for i, v := range mr.Indexes {
		if v == Unmatched {
			idx[i] = -1
		} else {
			idx[i] = int(v)
		}
	}
	out := []rune(mr.Text)
	repair(bg, graphemes(mr.Text), idx, len(out))

	q := queue.New[pending]()
	for _, c := range a.segment(bg, out, idx) {
		if p, ok := lv.pending(c, bg); ok {
			q.Add(p)
		}
	}
	if q.Len() == 0 {
		return "", false, nil
	}
	logging.FromContext(ctx).Debug("annotating", logging.FieldText, base, logging.FieldSpans, q.Len())

	return ast.GenerateSource(apply(nodes, q)), true, nil
}

func (a *Aligner) eligible(g string) bool {
	if a.Eligible != nil {
		return a.Eligible(g)
	}
	return IsRubyEligible(g)
}

// A grapheme is one grapheme cluster of a text, located by rune offset.
type grapheme struct {
	text  string
	start int // rune offset of the cluster
	runes int // number of runes in the cluster
}

func (g grapheme) end() int { return g.start + g.runes }

func graphemes(s string) []grapheme {
	var out []grapheme
	pos := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		n := len(gr.Runes())
		out = append(out, grapheme{text: gr.Str(), start: pos, runes: n})
		pos += n
	}
	return out
}

// repair fills in unmatched base positions whose text is identical in the
// base and the output, such as inflectional endings. It walks the base
// graphemes from the end, keeping the output position in step with them: a
// matched position resynchronizes it, and an unmatched grapheme equal to the
// output grapheme just before the current position is assigned that
// grapheme's offset. Any other unmatched grapheme loses synchronization until
// the next matched position. The endpoints are always matched.
func repair(base, out []grapheme, idx []int, outLen int) {
	n := len(idx) - 1
	if idx[0] < 0 {
		idx[0] = 0
	}
	if idx[n] < 0 {
		idx[n] = outLen
	}
	ending := make(map[int]grapheme, len(out))
	for _, g := range out {
		ending[g.end()] = g
	}

	cur, synced := idx[n], true
	for k := len(base) - 1; k >= 0; k-- {
		g := base[k]
		if v := idx[g.start]; v >= 0 {
			cur, synced = v, true
			continue
		}
		if o, ok := ending[cur]; synced && ok && o.text == g.text {
			idx[g.start] = o.start
			cur = o.start
			continue
		}
		synced = false
	}
}

// A candidate is a span of base graphemes [first, end) with its ruby text.
type candidate struct {
	first, end int
	ruby       string
}

// segment divides the base at each grapheme boundary with a matched index
// and returns the resulting spans that may receive ruby.
func (a *Aligner) segment(base []grapheme, out []rune, idx []int) []candidate {
	var cs []candidate
	first, rubyStart := 0, idx[0]
	for k := 1; k <= len(base); k++ {
		v := idx[len(idx)-1]
		if k < len(base) {
			v = idx[base[k].start]
		}
		if v < rubyStart {
			continue // unmatched, or out of order
		}
		c := candidate{first: first, end: k, ruby: string(out[rubyStart:v])}
		first, rubyStart = k, v
		if a.accept(base[c.first:c.end], c.ruby) {
			cs = append(cs, c)
		}
	}
	return cs
}

// accept reports whether span may receive the given ruby.
func (a *Aligner) accept(span []grapheme, ruby string) bool {
	if strings.TrimSpace(ruby) == "" || strings.Trim(ruby, "#") == "" {
		return false
	}
	var base strings.Builder
	for _, g := range span {
		if !a.eligible(g.text) {
			return false
		}
		base.WriteString(g.text)
	}
	return base.String() != ruby
}

// A leaf is a character of the base text of a line.
type leaf struct {
	node  *ast.Simple
	list  int  // identifies the node list containing the leaf
	index int  // position of the leaf in its list
	owned bool // the leaf is part of the base of a composite
	start int  // rune offset of the leaf in the base text
}

// leaves records the base text of a node sequence and the leaf each rune of
// it came from.
type leaves struct {
	all    []leaf
	byRune []int // leaf index of each rune
	text   strings.Builder
	lists  int
}

func (lv *leaves) collect(nodes []ast.Node) {
	list := lv.lists
	lv.lists++
	for i, n := range nodes {
		switch t := n.(type) {
		case *ast.Simple:
			lv.add(t, list, i, false)
		case *ast.Silent:
			lv.collect(t.Nodes)
		case *ast.Composite:
			base := lv.lists
			lv.lists++
			for j, b := range t.Base {
				lv.add(b, base, j, true)
			}
		default:
			panic(fmt.Sprintf("autoruby: unknown node type %T", n))
		}
	}
}

func (lv *leaves) add(s *ast.Simple, list, index int, owned bool) {
	text := s.Text()
	if text == "" {
		return
	}
	lv.all = append(lv.all, leaf{node: s, list: list, index: index, owned: owned, start: len(lv.byRune)})
	for range text {
		lv.byRune = append(lv.byRune, len(lv.all)-1)
	}
	lv.text.WriteString(text)
}

// end returns the rune offset just past the leaf at index i.
func (lv *leaves) end(i int) int {
	if i+1 < len(lv.all) {
		return lv.all[i+1].start
	}
	return len(lv.byRune)
}

// A pending span is a run of consecutive Simple nodes to be replaced by a
// composite with the given ruby.
type pending struct {
	first *ast.Simple
	count int
	ruby  string
}

// pending converts a candidate to the run of nodes it covers. It reports
// false if the candidate does not cover whole, unowned leaves that are
// consecutive in one node list.
func (lv *leaves) pending(c candidate, base []grapheme) (pending, bool) {
	lo, hi := base[c.first].start, base[c.end-1].end()
	fl, ll := lv.byRune[lo], lv.byRune[hi-1]
	if lv.all[fl].start != lo || lv.end(ll) != hi {
		return pending{}, false
	}
	for i := fl; i <= ll; i++ {
		lf := lv.all[i]
		if lf.owned || lf.list != lv.all[fl].list || lf.index != lv.all[fl].index+(i-fl) {
			return pending{}, false
		}
	}
	return pending{first: lv.all[fl].node, count: ll - fl + 1, ruby: c.ruby}, true
}

// apply rewrites nodes with every pending run in q. It panics if any run
// does not occur in nodes.
func apply(nodes []ast.Node, q *queue.Queue[pending]) []ast.Node {
	out := rewrite(nodes, q)
	if q.Len() != 0 {
		panic(fmt.Sprintf("autoruby: %d ruby spans were not applied", q.Len()))
	}
	return out
}

// rewrite returns a copy of nodes in which each pending run at the front of
// q is replaced by a composite. Runs are consumed from q in document order.
func rewrite(nodes []ast.Node, q *queue.Queue[pending]) []ast.Node {
	out := make([]ast.Node, 0, len(nodes))
	for i := 0; i < len(nodes); i++ {
		switch t := nodes[i].(type) {
		case *ast.Simple:
			p, ok := q.Peek(0)
			if !ok || p.first != t {
				out = append(out, t)
				continue
			}
			q.Pop()
			base := make([]*ast.Simple, p.count)
			for j := range base {
				base[j] = nodes[i+j].(*ast.Simple)
			}
			out = append(out, newComposite(base, p.ruby))
			i += p.count - 1
		case *ast.Silent:
			out = append(out, ast.NewSilent(rewrite(t.Nodes, q), t.Span()))
		case *ast.Composite:
			out = append(out, t)
		default:
			panic(fmt.Sprintf("autoruby: unknown node type %T", nodes[i]))
		}
	}
	return out
}

// newComposite constructs a composite attaching ruby to base. The ruby is
// split into one node per grapheme cluster.
func newComposite(base []*ast.Simple, ruby string) *ast.Composite {
	var nodes []ast.Node
	for _, g := range graphemes(ruby) {
		nodes = append(nodes, ast.NewText(g.text, lyriser.SourceSpan{}))
	}
	span := lyriser.Span(base[0].Span().Start, base[len(base)-1].Span().End)
	return ast.NewComposite(base, nodes, len(base) > 1, span, span)
}
