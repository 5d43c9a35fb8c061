// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package awq

// Scheduler runs completion callbacks on a later logical turn.
//
// The queue resolves suspended operations through a Scheduler so that waiter
// continuations never run while the queue lock is held and never run on the
// stack of the goroutine that performed the match. A continuation that
// re-enters the queue therefore cannot deadlock or starve the matcher.
//
// Implementations must eventually run every scheduled fn exactly once, on a
// goroutine other than the caller's current call frame. They must not run fn
// synchronously inside Schedule.
type Scheduler interface {
	Schedule(fn func())
}

// goScheduler is the default Scheduler: one goroutine per completion.
//
// Completions are rare relative to throughput (only suspended operations
// need them), so per-completion goroutines are cheaper than maintaining a
// dedicated worker.
type goScheduler struct{}

func (goScheduler) Schedule(fn func()) { go fn() }

// DefaultScheduler returns the Scheduler used when the builder does not
// supply one.
func DefaultScheduler() Scheduler { return goScheduler{} }
