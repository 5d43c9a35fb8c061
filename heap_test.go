// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awq_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/awq"
)

// =============================================================================
// Heap Array Growth and Shrink
// =============================================================================

// TestHeapGrowth tests that the unbounded heap grows by powers of 2 exactly
// when occupancy crosses the current array capacity.
func TestHeapGrowth(t *testing.T) {
	q := awq.NewPriority[int]()
	defer q.Close()

	if got := q.StoreCap(); got != 8 {
		t.Fatalf("initial StoreCap: got %d, want 8", got)
	}
	for i := range 8 {
		if err := q.TryEnqueue(i); err != nil {
			t.Fatalf("TryEnqueue(%d): %v", i, err)
		}
	}
	if got := q.StoreCap(); got != 8 {
		t.Fatalf("StoreCap at occupancy 8: got %d, want 8", got)
	}

	if err := q.TryEnqueue(8); err != nil {
		t.Fatalf("TryEnqueue(8): %v", err)
	}
	if got := q.StoreCap(); got != 16 {
		t.Fatalf("StoreCap after crossing 8: got %d, want 16", got)
	}

	for i := 9; i < 17; i++ {
		if err := q.TryEnqueue(i); err != nil {
			t.Fatalf("TryEnqueue(%d): %v", i, err)
		}
	}
	if got := q.StoreCap(); got != 32 {
		t.Fatalf("StoreCap after crossing 16: got %d, want 32", got)
	}
}

// TestHeapShrink tests that the array halves as occupancy drops below half
// capacity and never shrinks below the default minimum.
func TestHeapShrink(t *testing.T) {
	q := awq.NewPriority[int]()
	defer q.Close()

	for i := range 32 {
		if err := q.TryEnqueue(i); err != nil {
			t.Fatalf("TryEnqueue(%d): %v", i, err)
		}
	}
	if got := q.StoreCap(); got != 32 {
		t.Fatalf("StoreCap at occupancy 32: got %d, want 32", got)
	}

	for range 32 {
		if _, err := q.TryDequeue(); err != nil {
			t.Fatalf("TryDequeue: %v", err)
		}
	}
	if got := q.StoreCap(); got != 8 {
		t.Fatalf("StoreCap after drain: got %d, want 8", got)
	}

	// Mid-drain checkpoint: refill to 20 of 32, then drop below 16.
	for i := range 20 {
		if err := q.TryEnqueue(i); err != nil {
			t.Fatalf("TryEnqueue(%d): %v", i, err)
		}
	}
	if got := q.StoreCap(); got != 32 {
		t.Fatalf("StoreCap at occupancy 20: got %d, want 32", got)
	}
	for range 5 {
		if _, err := q.TryDequeue(); err != nil {
			t.Fatalf("TryDequeue: %v", err)
		}
	}
	if got := q.StoreCap(); got != 16 {
		t.Fatalf("StoreCap at occupancy 15: got %d, want 16", got)
	}
}

// TestBoundedHeapFixed tests that a bounded priority queue never
// reallocates its array.
func TestBoundedHeapFixed(t *testing.T) {
	q, err := awq.BuildPriority[int](awq.New().Bounded(5))
	if err != nil {
		t.Fatalf("BuildPriority: %v", err)
	}
	defer q.Close()

	if got := q.StoreCap(); got != 5 {
		t.Fatalf("StoreCap: got %d, want 5", got)
	}
	for _, v := range []int{4, 2, 0, 3, 1} {
		if err := q.TryEnqueue(v); err != nil {
			t.Fatalf("TryEnqueue(%d): %v", v, err)
		}
	}
	if err := q.TryEnqueue(9); !errors.Is(err, awq.ErrWouldBlock) {
		t.Fatalf("TryEnqueue on full: got %v, want ErrWouldBlock", err)
	}
	if got := q.StoreCap(); got != 5 {
		t.Fatalf("StoreCap at bound: got %d, want 5", got)
	}
	for want := range 5 {
		got, err := q.TryDequeue()
		if err != nil {
			t.Fatalf("TryDequeue: %v", err)
		}
		if got != want {
			t.Fatalf("TryDequeue: got %d, want %d", got, want)
		}
	}
	if got := q.StoreCap(); got != 5 {
		t.Fatalf("StoreCap after drain: got %d, want 5", got)
	}
}

// TestHeapOrderAcrossRealloc tests ordering through grow and shrink cycles
// with a deterministic permutation of 0..99.
func TestHeapOrderAcrossRealloc(t *testing.T) {
	q := awq.NewPriority[int]()
	defer q.Close()

	for i := range 100 {
		if err := q.TryEnqueue(i * 37 % 100); err != nil {
			t.Fatalf("TryEnqueue: %v", err)
		}
	}
	for want := range 100 {
		got, err := q.TryDequeue()
		if err != nil {
			t.Fatalf("TryDequeue: %v", err)
		}
		if got != want {
			t.Fatalf("TryDequeue: got %d, want %d", got, want)
		}
	}
}
