// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awq

// stackStore is a slice-backed LIFO store: Pop returns the most recently
// pushed element. The owning Queue serializes access.
type stackStore[T any] struct {
	elems []T
}

func newStackStore[T any](capacity int) *stackStore[T] {
	n := ringMinCap
	if capacity > 0 {
		n = capacity
	}
	return &stackStore[T]{elems: make([]T, 0, n)}
}

func (s *stackStore[T]) Len() int {
	return len(s.elems)
}

func (s *stackStore[T]) Push(elem T) {
	s.elems = append(s.elems, elem)
}

func (s *stackStore[T]) Pop() T {
	n := len(s.elems)
	if n == 0 {
		panic("awq: pop from empty stack")
	}
	elem := s.elems[n-1]
	var zero T
	s.elems[n-1] = zero
	s.elems = s.elems[:n-1]
	return elem
}
