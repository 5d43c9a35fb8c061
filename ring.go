// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awq

// ringStore is a FIFO ring buffer with power-of-2 mask indexing.
//
// Same slot layout as a Lamport ring, without the atomics: the owning Queue
// serializes access, so head and tail are plain counters. Monotonic counters
// avoid the empty-vs-full ambiguity of wrapped indices.
//
// An unbounded ring doubles its buffer when full. A fixed ring never grows;
// the Queue's bound keeps it from overflowing.
type ringStore[T any] struct {
	buffer []T
	mask   uint64
	head   uint64 // next slot to pop
	tail   uint64 // next slot to push
	fixed  bool
}

// ringMinCap is the initial buffer size of a growable ring.
const ringMinCap = 8

// newRingStore creates a FIFO store. capacity <= 0 means unbounded
// (growable); otherwise the buffer is sized once for capacity elements.
func newRingStore[T any](capacity int) *ringStore[T] {
	n := uint64(ringMinCap)
	fixed := false
	if capacity > 0 {
		n = uint64(roundToPow2(capacity))
		fixed = true
	}
	return &ringStore[T]{
		buffer: make([]T, n),
		mask:   n - 1,
		fixed:  fixed,
	}
}

func (s *ringStore[T]) Len() int {
	return int(s.tail - s.head)
}

func (s *ringStore[T]) Push(elem T) {
	if s.tail-s.head > s.mask {
		if s.fixed {
			panic("awq: push to full fixed ring")
		}
		s.grow()
	}
	s.buffer[s.tail&s.mask] = elem
	s.tail++
}

func (s *ringStore[T]) Pop() T {
	if s.head == s.tail {
		panic("awq: pop from empty ring")
	}
	elem := s.buffer[s.head&s.mask]
	var zero T
	s.buffer[s.head&s.mask] = zero
	s.head++
	return elem
}

// grow doubles the buffer, unwrapping live elements to the front.
func (s *ringStore[T]) grow() {
	next := make([]T, len(s.buffer)*2)
	n := s.tail - s.head
	for i := uint64(0); i < n; i++ {
		next[i] = s.buffer[(s.head+i)&s.mask]
	}
	s.buffer = next
	s.mask = uint64(len(next)) - 1
	s.head = 0
	s.tail = n
}
