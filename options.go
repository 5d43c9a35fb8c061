// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awq

import (
	"cmp"
	"context"
)

// Options configures queue construction.
type Options struct {
	bound   int
	bounded bool
	ctx     context.Context
	sched   Scheduler
}

// Builder creates queues with fluent configuration.
//
// The zero configuration is an unbounded queue with the default scheduler
// and an internally owned cancellation signal.
//
// Example:
//
//	// Bounded FIFO with backpressure
//	q, err := awq.BuildFIFO[Request](awq.New().Bounded(64))
//
//	// Priority queue tied to an application lifetime
//	q, err := awq.BuildPriority[int](awq.New().WithContext(ctx))
type Builder struct {
	opts Options
}

// New creates a queue builder.
func New() *Builder {
	return &Builder{}
}

// Bounded limits the queue to n stored elements. Producers beyond the bound
// suspend (Enqueue) or are refused (TryEnqueue). n must be positive; the
// Build functions return ErrInvalidBound otherwise.
func (b *Builder) Bounded(n int) *Builder {
	b.opts.bound = n
	b.opts.bounded = true
	return b
}

// WithContext ties every suspended operation to ctx: when ctx is cancelled,
// pending waits resolve with ctx.Err(). The queue observes the signal but
// does not own it; without WithContext the queue derives its own and
// releases it on Close.
func (b *Builder) WithContext(ctx context.Context) *Builder {
	b.opts.ctx = ctx
	return b
}

// WithScheduler replaces the Scheduler used to resolve suspended
// operations. Intended for tests and runtimes with their own task queue;
// the implementation must never run completions synchronously.
func (b *Builder) WithScheduler(s Scheduler) *Builder {
	b.opts.sched = s
	return b
}

func (b *Builder) build() (Options, error) {
	if b.opts.bounded && b.opts.bound <= 0 {
		return Options{}, ErrInvalidBound
	}
	return b.opts, nil
}

// BuildFIFO creates a first-in first-out queue from the builder.
func BuildFIFO[T any](b *Builder) (*Queue[T], error) {
	opts, err := b.build()
	if err != nil {
		return nil, err
	}
	return newQueue[T](newRingStore[T](opts.bound), opts), nil
}

// BuildLIFO creates a last-in first-out queue from the builder.
func BuildLIFO[T any](b *Builder) (*Queue[T], error) {
	opts, err := b.build()
	if err != nil {
		return nil, err
	}
	return newQueue[T](newStackStore[T](opts.bound), opts), nil
}

// BuildPriority creates a priority queue over T's natural ordering.
func BuildPriority[T cmp.Ordered](b *Builder) (*PriorityQueue[T], error) {
	return BuildPriorityFunc[T](b, cmp.Compare[T])
}

// BuildPriorityFunc creates a priority queue over fn. Any non-nil fn is
// accepted regardless of T's own ordering capability; a nil fn returns
// ErrNoOrdering.
func BuildPriorityFunc[T any](b *Builder, fn CompareFunc[T]) (*PriorityQueue[T], error) {
	if fn == nil {
		return nil, ErrNoOrdering
	}
	opts, err := b.build()
	if err != nil {
		return nil, err
	}
	h := newHeapStore[T](fn, opts.bound)
	return &PriorityQueue[T]{Queue: newQueue[T](h, opts), heap: h}, nil
}

// roundToPow2 rounds n up to the next power of 2.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
