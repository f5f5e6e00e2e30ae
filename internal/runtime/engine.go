package runtime

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/aretw0/butterfly/pkg/ports"
)

// Engine is a mounted portal: the configuration, the current state and the
// host capability that executes effects.
//
// Engine is not safe for concurrent use. Hosts deliver events one at a time.
type Engine[E any] struct {
	portal domain.Portal[E]
	state  domain.State
	runner ports.EffectRunner[E]
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineConfig)

type engineConfig struct {
	hooks  domain.LifecycleHooks
	logger *slog.Logger
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(c *engineConfig) {
		c.hooks = hooks
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(c *engineConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewEngine mounts portal for the initial actor. The runner receives the
// action of every activated button.
func NewEngine[E any](portal domain.Portal[E], initial domain.Actor, runner ports.EffectRunner[E], opts ...EngineOption) *Engine[E] {
	cfg := engineConfig{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine[E]{
		portal: portal,
		state:  domain.NewState(initial),
		runner: runner,
		hooks:  cfg.hooks,
		logger: cfg.logger,
	}
}

// State returns the current state.
func (e *Engine[E]) State() domain.State {
	return e.state
}

// Portal returns the read-only configuration.
func (e *Engine[E]) Portal() domain.Portal[E] {
	return e.portal
}

// Render returns the view for the current actor.
func (e *Engine[E]) Render(ctx context.Context) domain.View[E] {
	view := Render(e.portal, e.state)
	if e.hooks.OnRender != nil {
		e.hooks.OnRender(ctx, &domain.RenderEvent{
			Actor:   view.Actor,
			Visible: view.Len(),
			Total:   e.portal.Len(),
		})
	}
	return view
}

// Dispatch applies event and hands every emitted effect to the runner.
// It returns without waiting for the effects.
func (e *Engine[E]) Dispatch(ctx context.Context, event domain.Event) {
	if event == nil {
		return
	}
	prev := e.state
	next, effects := Reduce[E](prev, event)
	e.state = next

	switch ev := event.(type) {
	case domain.ActorChanged:
		e.logger.Debug("actor changed", "from", prev.CurrentActor, "to", next.CurrentActor)
		if e.hooks.OnActorChanged != nil {
			e.hooks.OnActorChanged(ctx, &domain.ActorEvent{From: prev.CurrentActor, To: next.CurrentActor})
		}
	case domain.ButtonClicked[E]:
		e.logger.Debug("button clicked", "actor", next.CurrentActor, "label", ev.Label, "index", ev.Index)
		if e.hooks.OnButtonClicked != nil {
			e.hooks.OnButtonClicked(ctx, &domain.ClickEvent{Actor: next.CurrentActor, Label: ev.Label, Index: ev.Index})
		}
	default:
		e.logger.Warn("ignoring unknown event", "kind", event.Kind())
	}

	if e.runner == nil || len(effects) == 0 {
		return
	}
	effectCtx := domain.ContextWithActor(ctx, next.CurrentActor)
	for _, effect := range effects {
		e.runner.Run(effectCtx, effect)
	}
}

// SetActor delivers a new viewing actor.
func (e *Engine[E]) SetActor(ctx context.Context, actor domain.Actor) {
	e.Dispatch(ctx, domain.ActorChanged{Actor: actor})
}

// Activate delivers a click on a rendered element.
func (e *Engine[E]) Activate(ctx context.Context, element domain.Element[E]) {
	e.Dispatch(ctx, element.Activate())
}

// Click activates the portal button at index if it is visible to the current
// actor. It returns domain.ErrElementNotVisible otherwise, leaving the state
// untouched and running nothing.
func (e *Engine[E]) Click(ctx context.Context, index int) error {
	element, ok := Render(e.portal, e.state).Find(index)
	if !ok {
		return fmt.Errorf("button %d for actor %q: %w", index, e.state.CurrentActor, domain.ErrElementNotVisible)
	}
	e.Activate(ctx, element)
	return nil
}
