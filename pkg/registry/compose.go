package registry

import (
	"context"
	"sync"

	"github.com/aretw0/butterfly/pkg/ports"
)

// AsyncRunner runs every effect on its own goroutine.
// The caller returns immediately; Wait blocks until all started effects end.
type AsyncRunner[E any] struct {
	inner ports.EffectRunner[E]
	wg    sync.WaitGroup
}

// Async wraps inner so that effects run in the background. The context
// handed to inner is detached from the caller's cancellation.
func Async[E any](inner ports.EffectRunner[E]) *AsyncRunner[E] {
	return &AsyncRunner[E]{inner: inner}
}

// Run implements ports.EffectRunner.
func (a *AsyncRunner[E]) Run(ctx context.Context, effect E) {
	detached := context.WithoutCancel(ctx)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.inner.Run(detached, effect)
	}()
}

// Wait blocks until every started effect has returned.
func (a *AsyncRunner[E]) Wait() {
	a.wg.Wait()
}

// Fanout hands each effect to every runner, in order.
func Fanout[E any](runners ...ports.EffectRunner[E]) ports.EffectRunner[E] {
	return ports.EffectRunnerFunc[E](func(ctx context.Context, effect E) {
		for _, r := range runners {
			if r != nil {
				r.Run(ctx, effect)
			}
		}
	})
}
