// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awq

import "context"

// Producer is the enqueue side of a queue.
//
// Enqueue suspends the calling goroutine when a bounded queue is full,
// until a consumer frees a slot or ctx is cancelled. TryEnqueue never
// suspends and returns ErrWouldBlock instead.
//
// Both forms hand the element directly to a waiting consumer when one
// exists, bypassing the backing store.
type Producer[T any] interface {
	// Enqueue adds an element, suspending while a bounded queue is full.
	// Returns nil on acceptance, ctx.Err() on cancellation, ErrDisposed
	// after Close.
	Enqueue(ctx context.Context, elem T) error

	// TryEnqueue adds an element without suspending.
	// Returns ErrWouldBlock if the queue is full and no consumer is waiting.
	TryEnqueue(elem T) error
}

// Consumer is the dequeue side of a queue.
//
// Dequeue suspends the calling goroutine while the queue is empty, until a
// producer supplies an element or ctx is cancelled. TryDequeue never
// suspends and returns ErrWouldBlock instead.
type Consumer[T any] interface {
	// Dequeue removes and returns the next element, suspending while the
	// queue is empty. Returns ctx.Err() on cancellation, ErrDisposed
	// after Close.
	Dequeue(ctx context.Context) (T, error)

	// TryDequeue removes and returns the next element without suspending.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty and no
	// producer is waiting.
	TryDequeue() (T, error)
}

// Store is the sequential container behind a Queue.
//
// Implementations are plain single-threaded structures; the owning Queue
// serializes all access under its lock. Push and Pop preconditions (room
// available, element present) are the Queue's responsibility, and
// implementations may panic when they are violated.
//
// The element ordering contract is the variant's: ring buffer pops oldest,
// stack pops newest, heap pops least under its ordering.
type Store[T any] interface {
	// Len returns the number of stored elements.
	Len() int

	// Push adds an element.
	Push(elem T)

	// Pop removes and returns the next element per the store's ordering.
	Pop() T
}

// CompareFunc is a total ordering over T with cmp.Compare semantics:
// negative when a orders before b, zero when equal, positive otherwise.
// In a priority queue, elements that compare less dequeue first.
type CompareFunc[T any] func(a, b T) int
