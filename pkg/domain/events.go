package domain

import "context"

// EventKind identifies the category of an engine event.
type EventKind string

const (
	EventActorChanged  EventKind = "actor_changed"
	EventButtonClicked EventKind = "button_clicked"
)

// Event is an input accepted by the portal engine.
type Event interface {
	Kind() EventKind
}

// ActorChanged is raised when the host reports a new viewing actor.
type ActorChanged struct {
	Actor Actor
}

// Kind implements Event.
func (ActorChanged) Kind() EventKind { return EventActorChanged }

// ButtonClicked is raised when a rendered button is activated.
// Index and Label identify the button for observability only.
type ButtonClicked[E any] struct {
	Index  int
	Label  string
	Action E
}

// Kind implements Event.
func (ButtonClicked[E]) Kind() EventKind { return EventButtonClicked }

// RenderEvent describes one render pass.
type RenderEvent struct {
	Actor   Actor `json:"actor"`
	Visible int   `json:"visible"`
	Total   int   `json:"total"`
}

// ActorEvent describes an actor transition.
type ActorEvent struct {
	From Actor `json:"from"`
	To   Actor `json:"to"`
}

// ClickEvent describes a button activation.
type ClickEvent struct {
	Actor Actor  `json:"actor"`
	Label string `json:"label"`
	Index int    `json:"index"`
}

// LifecycleHooks defines callbacks for engine observability.
// Any field may be nil.
type LifecycleHooks struct {
	OnRender        func(context.Context, *RenderEvent)
	OnActorChanged  func(context.Context, *ActorEvent)
	OnButtonClicked func(context.Context, *ClickEvent)
}

// ChainHooks returns hooks that call each of the given hooks in order.
func ChainHooks(hooks ...LifecycleHooks) LifecycleHooks {
	return LifecycleHooks{
		OnRender: func(ctx context.Context, e *RenderEvent) {
			for _, h := range hooks {
				if h.OnRender != nil {
					h.OnRender(ctx, e)
				}
			}
		},
		OnActorChanged: func(ctx context.Context, e *ActorEvent) {
			for _, h := range hooks {
				if h.OnActorChanged != nil {
					h.OnActorChanged(ctx, e)
				}
			}
		},
		OnButtonClicked: func(ctx context.Context, e *ClickEvent) {
			for _, h := range hooks {
				if h.OnButtonClicked != nil {
					h.OnButtonClicked(ctx, e)
				}
			}
		},
	}
}
