// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awq_test

import (
	"context"
	"testing"

	"code.hybscloud.com/awq"
	"code.hybscloud.com/spin"
)

// =============================================================================
// Uncontended Try Operations
// =============================================================================

func BenchmarkTryEnqueueDequeueFIFO(b *testing.B) {
	q := awq.NewFIFO[int]()
	defer q.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.TryEnqueue(i)
		_, _ = q.TryDequeue()
	}
}

func BenchmarkTryEnqueueDequeueLIFO(b *testing.B) {
	q := awq.NewLIFO[int]()
	defer q.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.TryEnqueue(i)
		_, _ = q.TryDequeue()
	}
}

func BenchmarkTryEnqueueDequeuePriority(b *testing.B) {
	q := awq.NewPriority[int]()
	defer q.Close()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = q.TryEnqueue(i)
		_, _ = q.TryDequeue()
	}
}

// =============================================================================
// Concurrent Producer/Consumer
// =============================================================================

// BenchmarkBoundedTryConcurrent measures a bounded FIFO under one spinning
// producer and one spinning consumer.
func BenchmarkBoundedTryConcurrent(b *testing.B) {
	q, err := awq.BuildFIFO[int](awq.New().Bounded(1024))
	if err != nil {
		b.Fatalf("BuildFIFO: %v", err)
	}
	defer q.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		sw := spin.Wait{}
		for range b.N {
			for {
				if _, err := q.TryDequeue(); err == nil {
					break
				}
				sw.Once()
			}
		}
	}()

	b.ResetTimer()
	sw := spin.Wait{}
	for i := 0; i < b.N; i++ {
		for q.TryEnqueue(i) != nil {
			sw.Once()
		}
	}
	<-done
}

// BenchmarkBlockingHandoff measures the suspended-consumer handoff path:
// every enqueue finds a waiting consumer.
func BenchmarkBlockingHandoff(b *testing.B) {
	q := awq.NewFIFO[int]()
	defer q.Close()
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range b.N {
			if _, err := q.Dequeue(ctx); err != nil {
				b.Errorf("Dequeue: %v", err)
				return
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := q.Enqueue(ctx, i); err != nil {
			b.Fatalf("Enqueue: %v", err)
		}
	}
	<-done
}
