// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package awq provides awaitable producer/consumer queues.
//
// Where [code.hybscloud.com/lfq] offers non-blocking lock-free queues for
// hot paths, awq offers mutex-coordinated queues whose blocking operations
// suspend the calling goroutine until they can proceed. Three orderings are
// available (FIFO, LIFO, priority), each with optional bounded capacity,
// fair FIFO servicing of suspended producers and consumers, and cooperative
// cancellation through context.Context.
//
// # Quick Start
//
// Direct constructors create unbounded queues:
//
//	q := awq.NewFIFO[Event]()
//	q := awq.NewLIFO[Frame]()
//	q := awq.NewPriority[int]()
//
// The Builder configures bounds, cancellation, and scheduling:
//
//	q, err := awq.BuildFIFO[Request](awq.New().Bounded(64))
//	q, err := awq.BuildPriorityFunc[Job](awq.New(), byDeadline)
//
// # Basic Usage
//
//	q := awq.NewFIFO[int]()
//	defer q.Close()
//
//	// Producer: never suspends on an unbounded queue
//	if err := q.Enqueue(ctx, 42); err != nil {
//	    // ctx cancelled or queue closed
//	}
//
//	// Consumer: suspends until an element arrives
//	v, err := q.Dequeue(ctx)
//
//	// Non-blocking forms signal ErrWouldBlock instead of suspending
//	if err := q.TryEnqueue(42); awq.IsWouldBlock(err) {
//	    // bounded queue full - handle backpressure
//	}
//	v, err := q.TryDequeue()
//
// # Direct Handoff
//
// A consumer suspended on an empty queue receives the next enqueued element
// directly; the element never enters the backing store. Symmetrically, a
// producer suspended on a full bounded queue is satisfied the moment a
// consumer frees a slot: the consumer takes the store's oldest element (or
// least, for priority queues) and the producer's element backfills the
// freed slot. Handoff keeps store occupancy within the bound at all times
// and keeps every waiter's wakeup off the matching goroutine's stack: all
// resolutions run on a later turn via the [Scheduler].
//
// # Bounded Queues and Backpressure
//
//	q, _ := awq.BuildFIFO[Task](awq.New().Bounded(2))
//
//	q.Enqueue(ctx, a) // stored
//	q.Enqueue(ctx, b) // stored, queue now full
//	q.TryEnqueue(c)   // ErrWouldBlock
//	q.Enqueue(ctx, c) // suspends until a Dequeue frees a slot
//
// # Cancellation
//
// Every blocking operation takes a context. Cancellation races a concurrent
// match under the queue's lock; exactly one outcome wins. A wait that loses
// the race to a match still returns the matched value, since the element's
// ownership has already transferred.
//
// A queue-wide cancellation signal can be installed at construction:
//
//	q, _ := awq.BuildFIFO[Event](awq.New().WithContext(appCtx))
//
// When appCtx is cancelled, every suspended operation resolves with
// appCtx's error. Without WithContext the queue owns an internal signal and
// releases it on Close.
//
// # Disposal
//
// Close is idempotent and never blocks. Operations suspended at close time
// resolve with context.Canceled; stored elements are dropped; subsequent
// operations fail fast with [ErrDisposed].
//
//	q := awq.NewFIFO[int]()
//	defer q.Close()
//
// # Priority Queues
//
// Priority queues dequeue in non-decreasing order of the comparison
// function (negative result dequeues first). Types with a natural ordering
// use it directly; any other type supplies a [CompareFunc]:
//
//	type Job struct{ Deadline int64 }
//
//	q, err := awq.BuildPriorityFunc[Job](awq.New(), func(a, b Job) int {
//	    return cmp.Compare(a.Deadline, b.Deadline)
//	})
//
// [Reversed] inverts an ordering for max-first dequeueing. The unbounded
// heap grows by powers of 2 and shrinks back as elements drain;
// [PriorityQueue.StoreCap] exposes the array capacity for diagnostics.
//
// # Error Handling
//
// Non-blocking operations return [ErrWouldBlock] when they cannot proceed.
// The error is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency and is a control flow signal, not a failure:
//
//	awq.IsWouldBlock(err)  // true if queue full/empty
//	awq.IsSemantic(err)    // true if control flow signal
//	awq.IsNonFailure(err)  // true for nil or control flow signals
//
// Cancellation surfaces as the context's error. [ErrDisposed],
// [ErrEmptyQueue], [ErrInvalidBound], and [ErrNoOrdering] cover the
// remaining failure modes.
//
// # Internal Consistency Checks
//
// The coordinator's invariants (pending consumers imply an empty store,
// pending producers imply a full store) are asserted by checks that compile
// in only under the awqcheck build tag. A check failure panics: it reports
// a bug in this package, not a caller error.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors and
// [code.hybscloud.com/atomix] for the atomic waiter state machine and
// disposal flag. The [code.hybscloud.com/awq/paced] subpackage adds
// rate-limited consumption on top of golang.org/x/time/rate.
package awq
