package ports

import "context"

// EffectRunner executes effects on behalf of the engine.
// Run is fire-and-forget: failures are the runner's concern and never reach
// the engine.
type EffectRunner[E any] interface {
	Run(ctx context.Context, effect E)
}

// EffectRunnerFunc adapts a function to the EffectRunner interface.
type EffectRunnerFunc[E any] func(ctx context.Context, effect E)

// Run calls f(ctx, effect).
func (f EffectRunnerFunc[E]) Run(ctx context.Context, effect E) {
	f(ctx, effect)
}

// Invoke is the runner for portals whose effects are plain functions.
func Invoke() EffectRunner[func()] {
	return EffectRunnerFunc[func()](func(_ context.Context, effect func()) {
		if effect != nil {
			effect()
		}
	})
}
