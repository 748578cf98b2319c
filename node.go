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

// node is the raw representation behind a [Node]: a tagged union of the
// token and layout variants, stored in an [Arena]'s node pool.
//
// kind == KindToken selects the token variant, which uses tok and has no
// children. Any other kind selects the layout variant, whose children
// alias a block from the arena's slot slab. A node is never written again
// after its constructor returns.
type node struct {
	children []arena.Pointer[node]
	tok      Token
	kind     Kind
}

// Node is a handle to a syntax tree node: either a token (a leaf carrying
// a [Token]) or a layout (an interior node with a fixed list of child
// slots).
//
// Node is a small value type; copying it does not copy the node. Two
// Nodes compare equal with == exactly when they refer to the same node in
// the same arena, which is how structural sharing is observed: after an
// edit, the untouched children of the new node compare equal to those of
// the old one.
//
// The zero Node is the absent child: the value held by a child slot whose
// syntactically optional child was never written. It is an ordinary
// value, not an error, and all read methods treat it gracefully.
type Node struct {
	owner *Arena
	ptr   arena.Pointer[node]
}

// IsZero reports whether this is the zero Node.
func (n Node) IsZero() bool {
	return n.ptr.Nil()
}

// Arena returns the arena that allocated this node, or nil for the zero
// Node.
func (n Node) Arena() *Arena {
	return n.owner
}

// Kind returns this node's kind: [KindToken] for token nodes, the layout
// kind otherwise. The zero Node reports KindToken.
func (n Node) Kind() Kind {
	if n.IsZero() {
		return KindToken
	}
	return n.raw().kind
}

// IsToken reports whether this is a token node. The zero Node is not a
// token.
func (n Node) IsToken() bool {
	return !n.IsZero() && n.raw().kind == KindToken
}

// Token returns this node's leaf payload, if it is a token node.
func (n Node) Token() (Token, bool) {
	if !n.IsToken() {
		return Token{}, false
	}
	return n.raw().tok, true
}

// Layout returns a view of this node's children, if it is a layout node.
//
// Requesting a view of a token node (or of the zero Node) is a checked
// outcome, not a fault: it reports false. This is the only gate to the
// layout operations, so a caller holding a [LayoutView] needs no further
// variant checks.
func (n Node) Layout() (LayoutView, bool) {
	if n.IsZero() {
		return LayoutView{}, false
	}
	raw := n.raw()
	if raw.kind == KindToken {
		return LayoutView{}, false
	}
	return LayoutView{node: n, raw: raw}, true
}

// String implements [fmt.Stringer] with a terse debugging form.
func (n Node) String() string {
	if n.IsZero() {
		return "<absent>"
	}
	raw := n.raw()
	if raw.kind == KindToken {
		return fmt.Sprintf("token(%v, %q)", raw.tok.Kind, raw.tok.Text)
	}
	return fmt.Sprintf("layout(%v, %d slots)", raw.kind, len(raw.children))
}

// raw dereferences this node's arena pointer. Panics on the zero Node;
// callers check first.
func (n Node) raw() *node {
	return n.ptr.In(&n.owner.nodes)
}
