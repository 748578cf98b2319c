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

package arena

import "fmt"

// Slab allocates contiguous variable-length blocks of T whose backing
// storage never moves.
//
// It uses the same doubling chunk table as [Arena], except that an
// allocation spanning more than the current chunk's remaining capacity
// opens a fresh chunk large enough to hold it in one piece; the slack left
// behind in the old chunk is wasted rather than split. Blocks are never
// freed individually.
//
// A zero Slab is empty and ready to use.
type Slab[T any] struct {
	chunks [][]T
}

// Alloc returns a zeroed block of exactly n elements.
//
// The block's backing array is valid for the life of the slab and is not
// aliased by any other block. n == 0 returns an empty, non-nil block
// without allocating. Panics if n is negative.
func (s *Slab[T]) Alloc(n int) []T {
	if n < 0 {
		panic(fmt.Sprintf("arena: negative slab allocation: %d", n))
	}
	if n == 0 {
		return []T{}
	}

	last := s.grow(n)
	start := len(*last)
	*last = (*last)[:start+n]

	// Three-index form so append on the returned block can never spill
	// into a neighboring allocation.
	return (*last)[start : start+n : start+n]
}

// grow returns a chunk with capacity for at least n more elements.
func (s *Slab[T]) grow(n int) *[]T {
	if s.chunks == nil {
		s.chunks = [][]T{make([]T, 0, max(chunkMinLen, n))}
	}

	last := &s.chunks[len(s.chunks)-1]
	if cap(*last)-len(*last) < n {
		s.chunks = append(s.chunks, make([]T, 0, max(2*cap(*last), n)))
		last = &s.chunks[len(s.chunks)-1]
	}
	return last
}
