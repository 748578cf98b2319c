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

	"github.com/treewrite/rawsyntax/internal/arena"
)

// Arena owns the storage for one tree (or for any number of trees whose
// nodes are allowed to reference each other). Every node allocated from
// an arena lives exactly as long as the arena; there is no way to free a
// node on its own.
//
// An Arena is not synchronized. Confine each arena to one goroutine, or
// guard all allocation externally; reading already-built nodes from many
// goroutines is safe because nodes are immutable.
type Arena struct {
	nodes arena.Arena[node]
	slots arena.Slab[arena.Pointer[node]]
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return new(Arena)
}

// NewToken allocates a token node with the given leaf payload.
func (a *Arena) NewToken(tok Token) Node {
	return Node{owner: a, ptr: a.nodes.New(node{kind: KindToken, tok: tok})}
}

// NewLayout allocates a layout node of the given kind with exactly slots
// child slots.
//
// fill is handed a [Builder] over the node's freshly allocated slot block
// and must push a value for every slot, in order, before returning;
// NewLayout panics if it pushes too few, and the Builder panics if it
// pushes too many. For slots == 0, fill may be nil.
//
// slots must equal the grammar-defined arity of kind. That is the
// caller's contract; no grammar table is consulted here.
//
// Panics if kind is [KindToken] or slots is negative.
func (a *Arena) NewLayout(kind Kind, slots int, fill func(*Builder)) Node {
	if kind == KindToken {
		panic("rawsyntax: called NewLayout with KindToken")
	}
	if slots < 0 {
		panic(fmt.Sprintf("rawsyntax: called NewLayout with negative slot count: %d", slots))
	}

	b := Builder{owner: a, block: a.slots.Alloc(slots)}
	if fill != nil {
		fill(&b)
	}
	if b.next != slots {
		panic(fmt.Sprintf("rawsyntax: NewLayout initializer wrote %d of %d slots", b.next, slots))
	}

	return Node{owner: a, ptr: a.nodes.New(node{kind: kind, children: b.block})}
}

// Builder fills the slot block of a layout node under construction. It is
// a write-once cursor: each [Builder.Push] initializes the next slot in
// final position order, so a slot can never be written twice and an
// unwritten slot is caught when [Arena.NewLayout] returns.
type Builder struct {
	owner *Arena
	block []arena.Pointer[node]
	next  int
}

// Len returns the number of slots pushed so far.
func (b *Builder) Len() int {
	return b.next
}

// Cap returns the total number of slots to fill.
func (b *Builder) Cap() int {
	return len(b.block)
}

// Push writes child into the next slot. The zero Node records an absent
// child.
//
// Panics if every slot has already been written, or if child belongs to a
// different arena; a cross-arena reference would outlive its storage.
func (b *Builder) Push(child Node) {
	if b.next == len(b.block) {
		panic(fmt.Sprintf("rawsyntax: Builder.Push past declared slot count %d", len(b.block)))
	}
	if !child.IsZero() && child.owner != b.owner {
		panic("rawsyntax: Builder.Push with a node from a different arena")
	}
	b.block[b.next] = child.ptr
	b.next++
}

// PushAbsent writes an absent child into the next slot, as if by
// Push of the zero Node.
func (b *Builder) PushAbsent() {
	b.Push(Node{})
}
