// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package cursor implements traversal over the syntax tree of a line of
// lyrics markup.
package cursor

import (
	"fmt"

	"github.com/calbonaler/lyriser"
	"github.com/calbonaler/lyriser/ast"
)

// A Group is a sequence of sibling nodes: a line, the content of a silent
// region, or the base or ruby of a composite.
type Group []ast.Node

// A Value is a position in the tree: either an ast.Node or a Group.
type Value any

// Path traverses a sequential path into the structure of nodes where path
// elements are as documented for the Cursor.Down method. This is a
// convenience wrapper for creating a cursor, applying path, and retrieving
// its value.
func Path[T Value](nodes []ast.Node, path ...any) (T, error) {
	c := New(nodes).Down(path...)
	var result T
	if err := c.Err(); err != nil {
		return result, err
	}
	v, ok := c.Value().(T)
	if !ok {
		return result, fmt.Errorf("wrong value type %T", c.Value())
	}
	return v, nil
}

// A Cursor tracks a position inside a parsed line as the stack of values
// leading to it.
type Cursor struct {
	org Group
	stk []Value
	err error
}

// New constructs a new Cursor to traverse the structure of origin.
func New(origin []ast.Node) *Cursor { return &Cursor{org: origin} }

// At constructs a Cursor positioned at the innermost node of nodes whose
// source span contains the byte offset. If a composite contains offset in
// its base, the path passes through its "base" group, otherwise through its
// "ruby" group. If no node contains offset, the cursor remains at the origin
// and records an error.
func At(nodes []ast.Node, offset int) *Cursor {
	c := New(nodes)
	cur := c.org
	for {
		i := find(cur, offset)
		if i < 0 {
			break
		}
		n := c.push(cur[i]).(ast.Node)
		switch t := n.(type) {
		case *ast.Silent:
			cur = t.Nodes
			continue
		case *ast.Composite:
			if contains(t.BaseSpan(), offset) {
				cur = c.push(baseGroup(t)).(Group)
			} else {
				cur = c.push(Group(t.Ruby)).(Group)
			}
			continue
		}
		break
	}
	if c.AtOrigin() {
		c.setErrorf("no node at offset %d", offset)
	}
	return c
}

// Origin returns the line the cursor was constructed over.
func (c *Cursor) Origin() Group { return c.org }

// AtOrigin reports whether the cursor has not moved below its line.
func (c *Cursor) AtOrigin() bool { return len(c.stk) == 0 }

// Value reports the node or group the cursor is positioned at.
func (c *Cursor) Value() Value {
	if c.AtOrigin() {
		return c.org
	}
	return c.stk[len(c.stk)-1]
}

// Node reports the nearest node at or above the cursor, or nil if there is
// none.
func (c *Cursor) Node() ast.Node {
	for i := len(c.stk) - 1; i >= 0; i-- {
		if n, ok := c.stk[i].(ast.Node); ok {
			return n
		}
	}
	return nil
}

// Path reports every value visited from the line down to the current
// position, starting with the line itself.
func (c *Cursor) Path() []Value {
	return append([]Value{c.org}, c.stk...)
}

// Err reports why the most recent call to Down or At stopped early, if it did.
func (c *Cursor) Err() error { return c.err }

// Up moves the cursor to the parent of its current value, unless it is
// already at the line. It returns c so calls can be chained.
func (c *Cursor) Up() *Cursor {
	if n := len(c.stk); n > 0 {
		c.stk = c.stk[:n-1]
	}
	return c
}

// Reset moves the cursor back to its line and clears any error.
func (c *Cursor) Reset() { c.stk = c.stk[:0]; c.err = nil }

// Down traverses a sequential path into the structure of c starting from the
// current value, where path elements are integers (denoting offsets into a
// group), the strings "base" and "ruby", functions (see below), or nil. If
// the path cannot be completely consumed, traversal stops and an error is
// recorded. Use Err to recover the error.
//
// If a path element is an integer, the current value must be a Group or a
// *ast.Silent, and the integer selects one of its nodes. Negative indices
// count backward from the end (-1 is last, -2 second last).
//
// If a path element is "base" or "ruby", the current value must be an
// *ast.Composite, and the element selects the Group of its base or ruby.
//
// If a path element is a function, the function is executed and its result
// becomes the next value in the sequence. The function must have a signature
//
//	func(cursor.Value) (cursor.Value, error)
//
// If the function reports an error, traversal stops and the error is recorded.
func (c *Cursor) Down(path ...any) *Cursor {
	c.err = nil
	cur := c.Value()
	for _, elt := range path {
		switch t := elt.(type) {
		case int:
			var nodes []ast.Node
			switch e := cur.(type) {
			case Group:
				nodes = e
			case *ast.Silent:
				nodes = e.Nodes
			default:
				return c.setErrorf("cannot traverse %T with %v", cur, elt)
			}
			i, ok := fixBound(len(nodes), t)
			if !ok {
				return c.setErrorf("index %d out of bounds (n=%d)", i, len(nodes))
			}
			cur = c.push(nodes[i])

		case string:
			e, ok := cur.(*ast.Composite)
			if !ok {
				return c.setErrorf("cannot traverse %T with %q", cur, elt)
			}
			switch t {
			case "base":
				cur = c.push(baseGroup(e))
			case "ruby":
				cur = c.push(Group(e.Ruby))
			default:
				return c.setErrorf("invalid composite part %q", t)
			}

		case func(Value) (Value, error):
			next, err := t(cur)
			if err != nil {
				c.err = err
				return c
			}
			cur = c.push(next)

		case nil:
			// Do nothing.

		default:
			return c.setErrorf("invalid path element %T", elt)
		}
	}
	return c
}

func (c *Cursor) push(v Value) Value { c.stk = append(c.stk, v); return v }

func (c *Cursor) setErrorf(msg string, args ...any) *Cursor {
	c.err = fmt.Errorf(msg, args...)
	return c
}

func baseGroup(c *ast.Composite) Group {
	g := make(Group, len(c.Base))
	for i, b := range c.Base {
		g[i] = b
	}
	return g
}

// find returns the index of the node in g whose span contains offset, or -1.
func find(g Group, offset int) int {
	for i, n := range g {
		if contains(n.Span(), offset) {
			return i
		}
	}
	return -1
}

func contains(span lyriser.SourceSpan, offset int) bool { return span.Contains(offset) }

func fixBound(n, i int) (int, bool) {
	if i < 0 {
		i += n
	}
	return i, i >= 0 && i < n
}
