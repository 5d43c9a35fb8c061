// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awq

import (
	"context"
	"sync"

	"code.hybscloud.com/atomix"
)

// Queue is a concurrency-safe awaitable queue over a sequential Store.
//
// A single mutex serializes the store and the two pending-waiter lists.
// Blocking operations that cannot proceed append a waiter and suspend the
// calling goroutine; matching operations claim waiters under the lock and
// resolve them through the Scheduler after the lock is released, so waiter
// continuations can safely re-enter the queue.
//
// Invariants between the store and the waiter lists:
//
//	pending getters exist ⇒ the store is empty
//	pending setters exist ⇒ the store is full (bounded queues only)
//
// Direct handoff preserves both: an arriving element goes to a waiting
// consumer without touching an empty store, and an arriving consumer takes
// the store's head while a waiting producer's element backfills the freed
// slot, keeping the store full.
//
// Construct via NewFIFO, NewLIFO, NewPriority, or the Builder.
type Queue[T any] struct {
	sched  Scheduler
	ctx    context.Context
	cancel context.CancelFunc // non-nil when the queue owns ctx

	bound    int // <= 0 means unbounded
	disposed atomix.Bool

	mu      sync.Mutex
	store   Store[T]
	getters []*waiter[T] // consumers suspended on an empty queue, FIFO
	setters []*waiter[T] // producers suspended on a full queue, FIFO
}

func newQueue[T any](store Store[T], opts Options) *Queue[T] {
	q := &Queue[T]{
		sched: opts.sched,
		ctx:   opts.ctx,
		bound: opts.bound,
		store: store,
	}
	if q.sched == nil {
		q.sched = DefaultScheduler()
	}
	if q.ctx == nil {
		// No external cancellation signal supplied; the queue owns one
		// and releases it on Close.
		q.ctx, q.cancel = context.WithCancel(context.Background())
	}
	return q
}

// NewFIFO creates an unbounded first-in first-out queue.
// Use the Builder for bounded or otherwise configured queues.
func NewFIFO[T any]() *Queue[T] {
	return newQueue[T](newRingStore[T](0), Options{})
}

// NewLIFO creates an unbounded last-in first-out queue.
// Use the Builder for bounded or otherwise configured queues.
func NewLIFO[T any]() *Queue[T] {
	return newQueue[T](newStackStore[T](0), Options{})
}

// Enqueue adds an element to the queue.
//
// A waiting consumer, if any, receives the element directly. Otherwise the
// element is stored, or — when a bounded queue is full — the call suspends
// until a consumer frees a slot. Returns ctx.Err() when ctx (or the queue's
// cancellation signal) is cancelled while suspended, ErrDisposed after
// Close. A nil ctx is treated as context.Background().
func (q *Queue[T]) Enqueue(ctx context.Context, elem T) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if q.disposed.Load() {
		return ErrDisposed
	}
	q.mu.Lock()
	if q.disposed.Load() {
		q.mu.Unlock()
		return ErrDisposed
	}
	if g := q.claimGetter(); g != nil {
		check(q.store.Len() == 0, "pending getter with non-empty store")
		q.mu.Unlock()
		q.sched.Schedule(func() { g.deliver(elem) })
		return nil
	}
	if q.bound > 0 && q.store.Len() >= q.bound {
		s := newWaiter[T]()
		s.elem = elem
		q.setters = append(q.setters, s)
		q.mu.Unlock()
		return q.awaitPut(ctx, s)
	}
	q.store.Push(elem)
	q.mu.Unlock()
	return nil
}

// TryEnqueue adds an element without suspending.
//
// Matching against a waiting consumer behaves exactly as in Enqueue.
// Returns ErrWouldBlock when a bounded queue is full and no consumer is
// waiting, ErrDisposed after Close.
func (q *Queue[T]) TryEnqueue(elem T) error {
	if q.disposed.Load() {
		return ErrDisposed
	}
	q.mu.Lock()
	if q.disposed.Load() {
		q.mu.Unlock()
		return ErrDisposed
	}
	if g := q.claimGetter(); g != nil {
		check(q.store.Len() == 0, "pending getter with non-empty store")
		q.mu.Unlock()
		q.sched.Schedule(func() { g.deliver(elem) })
		return nil
	}
	if q.bound > 0 && q.store.Len() >= q.bound {
		q.mu.Unlock()
		return ErrWouldBlock
	}
	q.store.Push(elem)
	q.mu.Unlock()
	return nil
}

// Dequeue removes and returns the next element per the store's ordering.
//
// A waiting producer, if any, is satisfied in the same step: the store's
// current head is returned and the producer's element backfills the freed
// slot. When the queue is empty the call suspends until an element arrives.
// Returns ctx.Err() when ctx (or the queue's cancellation signal) is
// cancelled while suspended, ErrDisposed after Close. A nil ctx is treated
// as context.Background().
func (q *Queue[T]) Dequeue(ctx context.Context) (T, error) {
	var zero T
	if ctx == nil {
		ctx = context.Background()
	}
	if q.disposed.Load() {
		return zero, ErrDisposed
	}
	q.mu.Lock()
	if q.disposed.Load() {
		q.mu.Unlock()
		return zero, ErrDisposed
	}
	if elem, s, ok := q.takeLocked(); ok {
		q.mu.Unlock()
		if s != nil {
			q.sched.Schedule(s.complete)
		}
		return elem, nil
	}
	g := newWaiter[T]()
	q.getters = append(q.getters, g)
	q.mu.Unlock()
	return q.awaitGet(ctx, g)
}

// TryDequeue removes and returns the next element without suspending.
//
// Matching against a waiting producer behaves exactly as in Dequeue.
// Returns (zero-value, ErrWouldBlock) when the queue is empty,
// (zero-value, ErrDisposed) after Close.
func (q *Queue[T]) TryDequeue() (T, error) {
	var zero T
	if q.disposed.Load() {
		return zero, ErrDisposed
	}
	q.mu.Lock()
	if q.disposed.Load() {
		q.mu.Unlock()
		return zero, ErrDisposed
	}
	elem, s, ok := q.takeLocked()
	q.mu.Unlock()
	if s != nil {
		q.sched.Schedule(s.complete)
	}
	if !ok {
		return zero, ErrWouldBlock
	}
	return elem, nil
}

// DequeueNow is TryDequeue with an empty queue reported as ErrEmptyQueue
// instead of the ErrWouldBlock control-flow signal.
func (q *Queue[T]) DequeueNow() (T, error) {
	elem, err := q.TryDequeue()
	if err != nil && IsWouldBlock(err) {
		var zero T
		return zero, ErrEmptyQueue
	}
	return elem, err
}

// takeLocked removes the next element under q.mu, honoring a waiting setter
// first. The returned setter, if non-nil, must be completed through the
// scheduler after the lock is released. ok is false when the store is empty
// and no producer is waiting.
func (q *Queue[T]) takeLocked() (elem T, s *waiter[T], ok bool) {
	if s = q.claimSetter(); s != nil {
		check(q.bound > 0 && q.store.Len() == q.bound, "pending setter with non-full store")
		// Return the store's head, not the setter's element: elements
		// that pass through the store keep the store's ordering. The
		// setter's element backfills the freed slot so the store stays
		// full for any remaining setters.
		elem = q.store.Pop()
		q.store.Push(s.elem)
		return elem, s, true
	}
	if q.store.Len() > 0 {
		return q.store.Pop(), nil, true
	}
	return elem, nil, false
}

// claimGetter pops entries from the front of the getter list until it
// claims a live one, discarding stale (cancelled) entries along the way.
// Returns nil when no live getter remains. Caller holds q.mu.
func (q *Queue[T]) claimGetter() *waiter[T] {
	for len(q.getters) > 0 {
		g := q.getters[0]
		q.getters = q.getters[1:]
		if g.claim() {
			return g
		}
	}
	return nil
}

// claimSetter is claimGetter for the setter list. Caller holds q.mu.
func (q *Queue[T]) claimSetter() *waiter[T] {
	for len(q.setters) > 0 {
		s := q.setters[0]
		q.setters = q.setters[1:]
		if s.claim() {
			return s
		}
	}
	return nil
}

// awaitGet suspends on a pending getter.
func (q *Queue[T]) awaitGet(ctx context.Context, g *waiter[T]) (T, error) {
	select {
	case <-g.done:
		return g.elem, g.err
	case <-ctx.Done():
		return q.cancelGet(g, ctx.Err())
	case <-q.ctx.Done():
		return q.cancelGet(g, q.ctx.Err())
	}
}

// cancelGet races cancellation against a concurrent match. When the match
// wins, the delivered element is authoritative and cancellation is a no-op.
func (q *Queue[T]) cancelGet(g *waiter[T], cause error) (T, error) {
	if g.abandon() {
		var zero T
		return zero, cause
	}
	<-g.done
	return g.elem, g.err
}

// awaitPut suspends on a pending setter.
func (q *Queue[T]) awaitPut(ctx context.Context, s *waiter[T]) error {
	select {
	case <-s.done:
		return s.err
	case <-ctx.Done():
		return q.cancelPut(s, ctx.Err())
	case <-q.ctx.Done():
		return q.cancelPut(s, q.ctx.Err())
	}
}

// cancelPut is cancelGet for setters. When cancellation wins, the element
// stays with the caller; it was never accepted.
func (q *Queue[T]) cancelPut(s *waiter[T], cause error) error {
	if s.abandon() {
		return cause
	}
	<-s.done
	return s.err
}

// Len returns the number of stored elements. Elements held by pending
// setters are not counted until accepted.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	n := q.store.Len()
	q.mu.Unlock()
	return n
}

// IsEmpty reports whether no elements are stored.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// IsFull reports whether a bounded queue is at its bound.
// Always false for unbounded queues.
func (q *Queue[T]) IsFull() bool {
	return q.bound > 0 && q.Len() == q.bound
}

// Bounded reports whether the queue has a maximum element count.
func (q *Queue[T]) Bounded() bool {
	return q.bound > 0
}

// Cap returns the bound of a bounded queue, or -1 when unbounded.
func (q *Queue[T]) Cap() int {
	if q.bound > 0 {
		return q.bound
	}
	return -1
}

// Close disposes the queue. The first call wins; further calls are no-ops.
//
// Every operation suspended at close time resolves with context.Canceled
// (cancelled, not failed with ErrDisposed); stored elements are dropped;
// every subsequent operation fails fast with ErrDisposed. Close never
// blocks. It always returns nil and exists to satisfy io.Closer so the
// queue can be released with defer on all exit paths.
func (q *Queue[T]) Close() error {
	if !q.disposed.CompareAndSwap(false, true) {
		return nil
	}
	q.mu.Lock()
	getters, setters := q.getters, q.setters
	q.getters, q.setters = nil, nil
	for q.store.Len() > 0 {
		q.store.Pop()
	}
	q.mu.Unlock()
	if q.cancel != nil {
		q.cancel()
	}
	for _, w := range getters {
		q.sched.Schedule(func() { w.reject(context.Canceled) })
	}
	for _, w := range setters {
		q.sched.Schedule(func() { w.reject(context.Canceled) })
	}
	return nil
}
