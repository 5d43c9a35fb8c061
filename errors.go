// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awq

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// For TryEnqueue: the queue is full (backpressure)
// For TryDequeue: the queue is empty (no data available)
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry later, or switch to the blocking Enqueue/Dequeue forms which suspend
// until the operation can proceed.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

var (
	// ErrDisposed is returned by every operation after Close.
	// The queue is in a terminal state; there is no recovery.
	ErrDisposed = errors.New("awq: use of disposed queue")

	// ErrEmptyQueue is returned by DequeueNow when no element is stored
	// and no producer is waiting to hand one off.
	ErrEmptyQueue = errors.New("awq: empty queue")

	// ErrInvalidBound is returned by the Build functions when the builder
	// was configured with a non-positive bound.
	ErrInvalidBound = errors.New("awq: bound must be positive")

	// ErrNoOrdering is returned by BuildPriorityFunc when no comparison
	// function is supplied. Element types with a natural ordering can use
	// BuildPriority instead.
	ErrNoOrdering = errors.New("awq: priority queue requires an ordering")
)

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
