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

// Package arena provides the allocation substrate for syntax trees: an
// [Arena] of fixed-size values addressed by compressed pointers, and a
// [Slab] of contiguous variable-length blocks.
//
// Nothing allocated here is ever freed individually; everything dies with
// its arena. Compressed pointers are four bytes wide, which keeps
// pointer-heavy node graphs small and cheap for the GC to traverse, and
// their zero value is nil, so an unset handle is always distinguishable
// from a live one.
package arena

import (
	"fmt"
	"math/bits"
	"strings"
)

// chunkMinShift is the log2 of the capacity of the smallest chunk in an
// arena's chunk table.
const (
	chunkMinShift = 4
	chunkMinLen   = 1 << chunkMinShift
)

// Untyped is an untyped compressed arena pointer.
//
// Its value is one plus the number of elements allocated before it in the
// owning arena; zero is nil.
type Untyped uint32

// Nil returns the nil arena pointer.
func Nil() Untyped {
	return 0
}

// Nil returns whether this pointer is nil.
func (p Untyped) Nil() bool {
	return p == 0
}

// Pointer is a compressed pointer into an [Arena] of T.
//
// It cannot be dereferenced on its own; see [Pointer.In]. The zero value
// is nil.
type Pointer[T any] Untyped

// Nil returns whether this pointer is nil.
func (p Pointer[T]) Nil() bool {
	return Untyped(p).Nil()
}

// Untyped erases this pointer's element type.
func (p Pointer[T]) Untyped() Untyped {
	return Untyped(p)
}

// In dereferences this pointer in the given arena.
//
// arena must be the arena that issued p; otherwise this returns an
// arbitrary element or panics. Panics if p is nil.
func (p Pointer[T]) In(arena *Arena[T]) *T {
	return arena.At(Untyped(p))
}

// Arena is a growable pool of T with pointer stability: elements are never
// moved once allocated, so the *T returned by [Pointer.In] stays valid for
// the life of the arena.
//
// Internally it keeps a table of exponentially-growing chunks that mimics
// the amortized resizing of an ordinary slice, while never reallocating a
// chunk that has been handed out. Lookup stays O(1) at the cost of one
// extra pointer load.
//
// A zero Arena is empty and ready to use.
type Arena[T any] struct {
	// Invariants:
	//  1. cap(chunks[0]) == chunkMinLen.
	//  2. cap(chunks[n]) == 2*cap(chunks[n-1]).
	//  3. Every chunk but the last is full.
	//
	// O(1) lookup depends on all three.
	chunks [][]T
}

// New allocates a new value on the arena and returns its pointer.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.chunks == nil {
		a.chunks = [][]T{make([]T, 0, chunkMinLen)}
	}

	last := &a.chunks[len(a.chunks)-1]
	if len(*last) == cap(*last) {
		a.chunks = append(a.chunks, make([]T, 0, 2*cap(*last)))
		last = &a.chunks[len(a.chunks)-1]
	}

	*last = append(*last, value)
	return Pointer[T](Untyped(a.Len()))
}

// At dereferences an untyped arena pointer, as if by [Pointer.In].
func (a *Arena[T]) At(ptr Untyped) *T {
	if ptr.Nil() {
		a = nil // Trigger an ordinary nil dereference on purpose.
	}
	chunk, idx := a.coordinates(int(ptr) - 1)
	return &a.chunks[chunk][idx]
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int {
	if len(a.chunks) == 0 {
		return 0
	}

	// Only the last chunk can be partially filled.
	return a.lenOfFirstNChunks(len(a.chunks)-1) + len(a.chunks[len(a.chunks)-1])
}

// String implements [fmt.Stringer].
func (a Arena[T]) String() string {
	var b strings.Builder
	b.WriteRune('[')
	// Chunk boundaries are rendered explicitly; this shows up in tests of
	// the growth pattern.
	for i, chunk := range a.chunks {
		if i != 0 {
			b.WriteRune('|')
		}
		for i, v := range chunk {
			if i != 0 {
				b.WriteRune(' ')
			}
			fmt.Fprint(&b, v)
		}
	}
	b.WriteRune(']')
	return b.String()
}

// lenOfNthChunk returns the capacity of the nth chunk, whether or not it
// is allocated yet.
func (*Arena[T]) lenOfNthChunk(n int) int {
	return chunkMinLen << n
}

// lenOfFirstNChunks returns the combined capacity of the first n chunks.
func (a *Arena[T]) lenOfFirstNChunks(n int) int {
	// 2^m + 2^(m+1) + ... + 2^n == 2^(n+1) - 2^m, so the sum of
	// lenOfNthChunk from 0 to n-1 collapses to a subtraction.
	return max(0, a.lenOfNthChunk(n)-a.lenOfNthChunk(0))
}

// coordinates maps a zero-based element index to its chunk and offset,
// with a bounds check.
func (a *Arena[T]) coordinates(idx int) (int, int) {
	if idx >= a.Len() || idx < 0 {
		panic(fmt.Sprintf("arena: pointer out of range: %#x", idx))
	}

	// With chunkMinShift == s, chunk n starts at cumulative index
	// (2^n - 1) << s. Adding chunkMinLen turns that sequence into
	// 1<<s, 2<<s, 4<<s, ..., whose one-indexed high bit is s+1+n.
	chunk := bits.UintSize - bits.LeadingZeros(uint(idx)+chunkMinLen)
	chunk -= chunkMinShift + 1

	idx -= a.lenOfFirstNChunks(chunk)
	return chunk, idx
}
