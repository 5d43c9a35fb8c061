// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package paced rate-limits consumption from an awq queue.
//
// A paced Consumer wraps the dequeue side of a queue with a token-bucket
// limiter, bounding the sustained rate at which workers drain elements.
// Producers are unaffected; backpressure builds in the queue itself.
package paced

import (
	"context"

	"golang.org/x/time/rate"

	"code.hybscloud.com/awq"
)

// Consumer dequeues from src at no more than the configured sustained rate.
// It implements [awq.Consumer] and is safe for concurrent use.
type Consumer[T any] struct {
	src     awq.Consumer[T]
	limiter *rate.Limiter
}

// NewConsumer wraps src with a token-bucket limiter of perSecond sustained
// dequeues and the given burst size. A non-positive burst defaults to 1.
func NewConsumer[T any](src awq.Consumer[T], perSecond float64, burst int) *Consumer[T] {
	if burst <= 0 {
		burst = 1
	}
	return &Consumer[T]{
		src:     src,
		limiter: rate.NewLimiter(rate.Limit(perSecond), burst),
	}
}

// Dequeue waits for a rate token, then dequeues from the source queue.
// Returns the limiter's error when ctx ends before a token is available,
// and the queue's error otherwise.
func (c *Consumer[T]) Dequeue(ctx context.Context) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := c.limiter.Wait(ctx); err != nil {
		var zero T
		return zero, err
	}
	return c.src.Dequeue(ctx)
}

// TryDequeue dequeues without suspending. Returns ErrWouldBlock when no
// rate token is immediately available or the source queue is empty; a token
// is consumed only when an element is actually returned.
func (c *Consumer[T]) TryDequeue() (T, error) {
	var zero T
	r := c.limiter.Reserve()
	if !r.OK() || r.Delay() > 0 {
		if r.OK() {
			r.Cancel()
		}
		return zero, awq.ErrWouldBlock
	}
	elem, err := c.src.TryDequeue()
	if err != nil {
		r.Cancel()
		return zero, err
	}
	return elem, nil
}
