// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awq

// heapStore is an array-backed binary min-heap: Pop returns the element that
// compares least under cmp. The owning Queue serializes access.
//
// An unbounded heap grows to the next power of 2 when full and shrinks to
// half its array after a pop leaves it less than half occupied, never below
// heapMinCap. A fixed heap (bounded queue) is sized once and never
// reallocates; the Queue's bound keeps it from overflowing.
type heapStore[T any] struct {
	cmp   CompareFunc[T]
	elems []T // array; logical size tracked separately
	size  int
	fixed bool
}

// heapMinCap is the initial array size of a growable heap and the floor
// below which shrinking never goes.
const heapMinCap = 8

// newHeapStore creates a priority store over cmp. capacity <= 0 means
// unbounded (growable); otherwise the array is sized once for capacity
// elements. cmp must be non-nil; the Build functions enforce that.
func newHeapStore[T any](cmp CompareFunc[T], capacity int) *heapStore[T] {
	n := heapMinCap
	fixed := false
	if capacity > 0 {
		n = capacity
		fixed = true
	}
	return &heapStore[T]{
		cmp:   cmp,
		elems: make([]T, n),
		fixed: fixed,
	}
}

func (s *heapStore[T]) Len() int {
	return s.size
}

// Cap returns the current array capacity. Diagnostics only; it says nothing
// about the element ordering contract.
func (s *heapStore[T]) Cap() int {
	return len(s.elems)
}

func (s *heapStore[T]) Push(elem T) {
	if s.size == len(s.elems) {
		if s.fixed {
			panic("awq: push to full fixed heap")
		}
		s.realloc(roundToPow2(s.size + 1))
	}
	s.elems[s.size] = elem
	s.size++
	s.siftUp(s.size - 1)
}

func (s *heapStore[T]) Pop() T {
	if s.size == 0 {
		panic("awq: pop from empty heap")
	}
	root := s.elems[0]
	s.size--
	s.elems[0] = s.elems[s.size]
	var zero T
	s.elems[s.size] = zero
	if s.size > 0 {
		s.siftDown(0)
	}
	s.shrink()
	return root
}

// siftUp restores the heap property from slot i toward the root.
func (s *heapStore[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if s.cmp(s.elems[i], s.elems[parent]) >= 0 {
			return
		}
		s.elems[i], s.elems[parent] = s.elems[parent], s.elems[i]
		i = parent
	}
}

// siftDown restores the heap property from slot i toward the leaves,
// swapping with the lesser child while that child compares less.
func (s *heapStore[T]) siftDown(i int) {
	for {
		least := i
		if l := 2*i + 1; l < s.size && s.cmp(s.elems[l], s.elems[least]) < 0 {
			least = l
		}
		if r := 2*i + 2; r < s.size && s.cmp(s.elems[r], s.elems[least]) < 0 {
			least = r
		}
		if least == i {
			return
		}
		s.elems[i], s.elems[least] = s.elems[least], s.elems[i]
		i = least
	}
}

// shrink halves the array when occupancy drops below half. Best-effort
// memory reclamation; skipped for fixed heaps and at the minimum capacity.
func (s *heapStore[T]) shrink() {
	if s.fixed || len(s.elems) <= heapMinCap {
		return
	}
	if s.size >= len(s.elems)/2 {
		return
	}
	s.realloc(max(len(s.elems)/2, heapMinCap))
}

func (s *heapStore[T]) realloc(capacity int) {
	next := make([]T, capacity)
	copy(next, s.elems[:s.size])
	s.elems = next
}
