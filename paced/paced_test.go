// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package paced_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"code.hybscloud.com/awq"
	"code.hybscloud.com/awq/paced"
)

// TestPacedDequeue tests that sustained dequeues are spaced by the
// configured rate and preserve queue order.
func TestPacedDequeue(t *testing.T) {
	q := awq.NewFIFO[int]()
	defer q.Close()
	for i := range 3 {
		if err := q.TryEnqueue(i); err != nil {
			t.Fatalf("TryEnqueue(%d): %v", i, err)
		}
	}

	c := paced.NewConsumer[int](q, 50, 1)
	start := time.Now()
	for want := range 3 {
		got, err := c.Dequeue(context.Background())
		if err != nil {
			t.Fatalf("Dequeue: %v", err)
		}
		if got != want {
			t.Fatalf("Dequeue: got %d, want %d", got, want)
		}
	}
	// Burst 1 at 50/s: dequeues 2 and 3 each wait ~20ms.
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("3 dequeues at 50/s took %v, want >= 30ms", elapsed)
	}
}

// TestPacedTryDequeue tests token accounting of the non-blocking form.
func TestPacedTryDequeue(t *testing.T) {
	q := awq.NewFIFO[int]()
	defer q.Close()

	c := paced.NewConsumer[int](q, 1, 1)

	// Empty queue: refused without spending the token.
	if _, err := c.TryDequeue(); !errors.Is(err, awq.ErrWouldBlock) {
		t.Fatalf("TryDequeue on empty: got %v, want ErrWouldBlock", err)
	}
	if err := q.TryEnqueue(1); err != nil {
		t.Fatalf("TryEnqueue: %v", err)
	}
	v, err := c.TryDequeue()
	if err != nil {
		t.Fatalf("TryDequeue after refill: %v", err)
	}
	if v != 1 {
		t.Fatalf("TryDequeue: got %d, want 1", v)
	}

	// Token spent; the next immediate attempt is rate-refused even with
	// an element available.
	if err := q.TryEnqueue(2); err != nil {
		t.Fatalf("TryEnqueue: %v", err)
	}
	if _, err := c.TryDequeue(); !errors.Is(err, awq.ErrWouldBlock) {
		t.Fatalf("TryDequeue without token: got %v, want ErrWouldBlock", err)
	}
}

// TestPacedCancel tests that a rate wait respects context deadlines.
func TestPacedCancel(t *testing.T) {
	q := awq.NewFIFO[int]()
	defer q.Close()
	for i := range 2 {
		if err := q.TryEnqueue(i); err != nil {
			t.Fatalf("TryEnqueue(%d): %v", i, err)
		}
	}

	c := paced.NewConsumer[int](q, 0.5, 1)
	if _, err := c.Dequeue(context.Background()); err != nil {
		t.Fatalf("first Dequeue: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(50*time.Millisecond, cancel)
	defer timer.Stop()
	if _, err := c.Dequeue(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("rate-limited Dequeue: got %v, want context.Canceled", err)
	}
}
