package butterfly

import (
	"context"
	"io"
	"log/slog"

	"github.com/aretw0/butterfly/internal/runtime"
	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/aretw0/butterfly/pkg/ports"
)

// Engine is the high-level entry point for the Butterfly library.
// It wraps the internal runtime and provides a simplified API for hosts.
type Engine[E any] struct {
	runtime *runtime.Engine[E]
	Name    string
}

type config struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	name   string
}

// Option defines a functional option for configuring the Engine.
type Option func(*config)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(c *config) {
		c.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithName labels the engine. The name is attached to every log line.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// New mounts portal for the initial actor. Activated buttons hand their
// action to runner.
func New[E any](portal domain.Portal[E], initial domain.Actor, runner ports.EffectRunner[E], opts ...Option) *Engine[E] {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	// Ensure logger is initialized so the runtime never sees nil.
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	if cfg.name != "" {
		cfg.logger = cfg.logger.With("portal", cfg.name)
	}

	return &Engine[E]{
		Name: cfg.name,
		runtime: runtime.NewEngine(portal, initial, runner,
			runtime.WithLifecycleHooks(cfg.hooks),
			runtime.WithLogger(cfg.logger),
		),
	}
}

// State returns the current state.
func (e *Engine[E]) State() domain.State {
	return e.runtime.State()
}

// Actor returns the actor currently viewing the portal.
func (e *Engine[E]) Actor() domain.Actor {
	return e.runtime.State().CurrentActor
}

// Portal returns the mounted portal.
func (e *Engine[E]) Portal() domain.Portal[E] {
	return e.runtime.Portal()
}

// Render returns the view for the current actor.
func (e *Engine[E]) Render(ctx context.Context) domain.View[E] {
	return e.runtime.Render(ctx)
}

// SetActor delivers an updated actor from the host.
func (e *Engine[E]) SetActor(ctx context.Context, actor domain.Actor) {
	e.runtime.SetActor(ctx, actor)
}

// Activate delivers a click on a rendered element.
func (e *Engine[E]) Activate(ctx context.Context, element domain.Element[E]) {
	e.runtime.Activate(ctx, element)
}

// Click activates the portal button at index. It fails with
// domain.ErrElementNotVisible if the current actor cannot see it.
func (e *Engine[E]) Click(ctx context.Context, index int) error {
	return e.runtime.Click(ctx, index)
}

// Dispatch applies a raw event.
func (e *Engine[E]) Dispatch(ctx context.Context, event domain.Event) {
	e.runtime.Dispatch(ctx, event)
}
