// Copyright 2024-2026 The Treewrite Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rawsyntax

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/treewrite/rawsyntax/internal/arena"
	"github.com/treewrite/rawsyntax/seq"
)

// LayoutView is read and edit access to a layout node's children. It can
// only be obtained from [Node.Layout], so holding a non-zero view proves
// the node is a layout.
//
// The transformation methods (Replace, Insert, Remove, Append, Splice,
// Set) are persistent edits: each allocates exactly one new node in the
// viewed node's arena and returns it, leaving the viewed node untouched.
// Children the edit does not target are carried over by handle, so the
// old and new node share those subtrees.
//
// Index arguments to the transformations are contract-checked: passing an
// out-of-range index or a malformed range panics rather than clamping,
// because a caller that miscounts slots has corrupted its own picture of
// the tree and any result would have undefined shape. The read methods
// Child and HasChild instead degrade gracefully on out-of-range indices.
//
// The zero LayoutView views nothing; every method on it panics except
// IsZero.
type LayoutView struct {
	node Node
	raw  *node
}

// IsZero reports whether this is the zero LayoutView.
func (v LayoutView) IsZero() bool {
	return v.raw == nil
}

// Node returns the layout node this view was obtained from.
func (v LayoutView) Node() Node {
	return v.node
}

// Kind returns the viewed node's layout kind.
func (v LayoutView) Kind() Kind {
	return v.must("Kind").kind
}

// Len returns the number of child slots, counting absent ones.
func (v LayoutView) Len() int {
	return len(v.must("Len").children)
}

// At returns the child in slot idx, implementing [seq.Indexer].
//
// Unlike [LayoutView.Child], At panics if idx is out of range, per the
// seq contract.
func (v LayoutView) At(idx int) Node {
	raw := v.must("At")
	if idx < 0 || idx >= len(raw.children) {
		panic(fmt.Sprintf("rawsyntax: called At with index out of range: %d not in [0, %d)", idx, len(raw.children)))
	}
	return v.wrap(raw.children[idx])
}

// Child returns the child in slot idx, or the zero Node if the slot is
// absent or idx is out of range. Reads never fault on bad indices.
func (v LayoutView) Child(idx int) Node {
	raw := v.must("Child")
	if idx < 0 || idx >= len(raw.children) {
		return Node{}
	}
	return v.wrap(raw.children[idx])
}

// HasChild reports whether slot idx exists and holds a child.
func (v LayoutView) HasChild(idx int) bool {
	return !v.Child(idx).IsZero()
}

// Children returns a fresh slice of all child slots, absent ones
// included as zero Nodes. The slice is owned by the caller and stays
// valid independently of the view.
func (v LayoutView) Children() []Node {
	v.must("Children")
	return seq.ToSlice[Node](v)
}

// Replace returns a new node of the same kind whose children are exactly
// elements, in order.
func (v LayoutView) Replace(elements ...Node) Node {
	raw := v.must("Replace")
	return v.node.owner.NewLayout(raw.kind, len(elements), func(b *Builder) {
		for _, e := range elements {
			b.Push(e)
		}
	})
}

// Insert returns a new node with child inserted before slot idx and every
// later child shifted right by one. idx may equal [LayoutView.Len], which
// appends.
//
// Panics if idx is out of range.
func (v LayoutView) Insert(idx int, child Node) Node {
	raw := v.must("Insert")
	if idx < 0 || idx > len(raw.children) {
		panic(fmt.Sprintf("rawsyntax: called Insert with index out of range: %d not in [0, %d]", idx, len(raw.children)))
	}
	return v.insert(raw, idx, child)
}

// Append returns a new node with child added after the last slot. It is
// exactly Insert at [LayoutView.Len].
func (v LayoutView) Append(child Node) Node {
	raw := v.must("Append")
	return v.insert(raw, len(raw.children), child)
}

func (v LayoutView) insert(raw *node, idx int, child Node) Node {
	return v.node.owner.NewLayout(raw.kind, len(raw.children)+1, func(b *Builder) {
		for i, p := range raw.children {
			if i == idx {
				b.Push(child)
			}
			b.Push(v.wrap(p))
		}
		if idx == len(raw.children) {
			b.Push(child)
		}
	})
}

// Remove returns a new node with the child slot at idx removed and every
// later child shifted left by one.
//
// Panics if idx is out of range.
func (v LayoutView) Remove(idx int) Node {
	raw := v.must("Remove")
	if idx < 0 || idx >= len(raw.children) {
		panic(fmt.Sprintf("rawsyntax: called Remove with index out of range: %d not in [0, %d)", idx, len(raw.children)))
	}
	return v.node.owner.NewLayout(raw.kind, len(raw.children)-1, func(b *Builder) {
		for i, p := range raw.children {
			if i == idx {
				continue
			}
			b.Push(v.wrap(p))
		}
	})
}

// Splice returns a new node whose slots [start, end) are replaced by
// elements: slots before start are kept, elements follow in order, then
// the slots from end onward. An empty range is a pure insertion at start;
// empty elements are a pure removal of the range.
//
// Panics if the range is malformed or falls outside [0, Len].
func (v LayoutView) Splice(start, end int, elements ...Node) Node {
	raw := v.must("Splice")
	if start < 0 || end < start || end > len(raw.children) {
		panic(fmt.Sprintf("rawsyntax: called Splice with malformed range: [%d, %d) not within [0, %d)", start, end, len(raw.children)))
	}
	slots := len(raw.children) - (end - start) + len(elements)
	return v.node.owner.NewLayout(raw.kind, slots, func(b *Builder) {
		for _, p := range raw.children[:start] {
			b.Push(v.wrap(p))
		}
		for _, e := range elements {
			b.Push(e)
		}
		for _, p := range raw.children[end:] {
			b.Push(v.wrap(p))
		}
	})
}

// Set returns a new node identical to the viewed one except that slot
// idx now holds child. The zero Node clears the slot to absent.
//
// Panics if idx is out of range.
func (v LayoutView) Set(idx int, child Node) Node {
	raw := v.must("Set")
	if idx < 0 || idx >= len(raw.children) {
		panic(fmt.Sprintf("rawsyntax: called Set with index out of range: %d not in [0, %d)", idx, len(raw.children)))
	}
	return v.node.owner.NewLayout(raw.kind, len(raw.children), func(b *Builder) {
		for i, p := range raw.children {
			if i == idx {
				b.Push(child)
				continue
			}
			b.Push(v.wrap(p))
		}
	})
}

// ChildAt returns the child in the slot numbered by cursor, for callers
// that name a layout's slots with an integer-backed constant type. It is
// [LayoutView.Child] under another index type; there are no other
// semantics.
func ChildAt[C constraints.Integer](v LayoutView, cursor C) Node {
	return v.Child(int(cursor))
}

// wrap rebuilds a Node handle from a stored child pointer. Nil pointers
// wrap to the zero Node.
func (v LayoutView) wrap(p arena.Pointer[node]) Node {
	if p.Nil() {
		return Node{}
	}
	return Node{owner: v.node.owner, ptr: p}
}

// must asserts the view is non-zero and returns the raw node.
func (v LayoutView) must(op string) *node {
	if v.raw == nil {
		panic("rawsyntax: called " + op + " on a zero LayoutView")
	}
	return v.raw
}
