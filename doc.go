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

// Package rawsyntax is the raw layer of a syntax tree library: persistent,
// arena-backed tree nodes and the primitive layout transformations that
// every higher-level edit reduces to.
//
// A [Node] is either a token (a leaf produced by a tokenizer) or a layout
// (an interior node with a fixed number of child slots, any of which may
// be absent). Nodes are allocated from an [Arena] and are immutable from
// the moment they are built; they are freed only when the whole arena is
// dropped.
//
// Edits never mutate. [Node.Layout] yields a [LayoutView], whose
// transformation methods each compute the new slot count up front,
// allocate one new node, and splice the old children around the edit:
//
//	view, ok := n.Layout()
//	if !ok {
//		// n is a token; it has no children to edit.
//	}
//	n2 := view.Insert(1, child)
//
// n is unchanged, and every child of n2 that the edit did not touch is
// the same node as in n, not a copy. Consumers exploit that sharing for
// cheap tree diffing: handle equality (==) means "same subtree".
//
// Contract violations, such as an out-of-range index passed to a
// transformation, panic. They indicate a defect in the calling layer, and
// recovery semantics are deliberately undefined; see [LayoutView].
// Variant mismatches and out-of-range reads are checked outcomes instead,
// reported by comma-ok results and zero values.
package rawsyntax
