// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awq

import "cmp"

// PriorityQueue is a Queue whose store is a binary min-heap: Dequeue returns
// the element that compares least under the queue's ordering, regardless of
// insertion order. Elements handed off directly to a waiting consumer never
// enter the heap and are exempt from reordering, as with every variant.
type PriorityQueue[T any] struct {
	*Queue[T]
	heap *heapStore[T]
}

// NewPriority creates an unbounded priority queue over T's natural ordering.
// Use the Builder for bounded, reversed, or custom-ordered queues.
func NewPriority[T cmp.Ordered]() *PriorityQueue[T] {
	h := newHeapStore[T](cmp.Compare[T], 0)
	return &PriorityQueue[T]{Queue: newQueue[T](h, Options{}), heap: h}
}

// NewPriorityFunc creates an unbounded priority queue over fn.
// Returns ErrNoOrdering when fn is nil: a type without a natural ordering
// cannot form a priority queue without a supplied comparison.
func NewPriorityFunc[T any](fn CompareFunc[T]) (*PriorityQueue[T], error) {
	if fn == nil {
		return nil, ErrNoOrdering
	}
	h := newHeapStore[T](fn, 0)
	return &PriorityQueue[T]{Queue: newQueue[T](h, Options{}), heap: h}, nil
}

// StoreCap returns the heap's current array capacity.
//
// Diagnostics and testing only: it exposes the grow/shrink behavior of the
// unbounded heap and carries no ordering guarantee relative to concurrent
// operations.
func (q *PriorityQueue[T]) StoreCap() int {
	q.mu.Lock()
	n := q.heap.Cap()
	q.mu.Unlock()
	return n
}

// Reversed inverts an ordering, turning a min-queue over fn into a
// max-queue and vice versa.
func Reversed[T any](fn CompareFunc[T]) CompareFunc[T] {
	return func(a, b T) int { return fn(b, a) }
}
