package domain

import "context"

type actorKey struct{}

// ContextWithActor returns a context carrying the actor on whose behalf an
// effect runs. The engine attaches it before handing effects to a runner.
func ContextWithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFromContext returns the actor attached by ContextWithActor.
func ActorFromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok
}
