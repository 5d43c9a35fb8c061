// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awq

import "code.hybscloud.com/atomix"

// Waiter states. A waiter leaves waiterPending exactly once: either a
// matcher claims it (under the queue lock) or cancellation wins the CAS.
const (
	waiterPending int32 = iota
	waiterClaimed
	waiterCancelled
)

// waiter is a one-shot promise for a suspended enqueue or dequeue.
//
// A getter waits for elem to be delivered; a setter carries elem until a
// consumer accepts it. The state CAS is the authoritative arbiter between a
// concurrent match and a concurrent cancellation: whichever transitions the
// waiter out of waiterPending wins, the loser observes a no-op.
//
// done is closed only after the outcome fields (elem, err) are written, so
// a reader that observes the close also observes the outcome.
type waiter[T any] struct {
	state atomix.Int32
	done  chan struct{}
	elem  T
	err   error
}

func newWaiter[T any]() *waiter[T] {
	return &waiter[T]{done: make(chan struct{})}
}

// claim transitions pending→claimed. Called under the queue lock while the
// waiter is being removed from its list. A false return means the waiter is
// stale (already cancelled) and must be discarded.
func (w *waiter[T]) claim() bool {
	return w.state.CompareAndSwap(waiterPending, waiterClaimed)
}

// abandon transitions pending→cancelled on behalf of the suspended caller
// itself. A false return means a matcher already claimed the waiter; the
// caller must then consume the delivered outcome instead.
func (w *waiter[T]) abandon() bool {
	return w.state.CompareAndSwap(waiterPending, waiterCancelled)
}

// deliver resolves a claimed getter with an element.
// Must not be called under the queue lock.
func (w *waiter[T]) deliver(elem T) {
	w.elem = elem
	close(w.done)
}

// complete resolves a claimed setter: its element has been accepted.
// Must not be called under the queue lock.
func (w *waiter[T]) complete() {
	close(w.done)
}

// reject resolves a pending waiter with err on behalf of disposal.
// No-op when the waiter is no longer pending.
// Must not be called under the queue lock.
func (w *waiter[T]) reject(err error) {
	if !w.state.CompareAndSwap(waiterPending, waiterCancelled) {
		return
	}
	w.err = err
	close(w.done)
}
