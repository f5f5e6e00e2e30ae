package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/butterfly/pkg/domain"
)

// LoggingHooks audits engine activity at info level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnActorChanged: func(_ context.Context, e *domain.ActorEvent) {
			logger.Info("actor_changed", "from", e.From, "to", e.To)
		},
		OnButtonClicked: func(_ context.Context, e *domain.ClickEvent) {
			logger.Info("button_clicked", "actor", e.Actor, "label", e.Label, "index", e.Index)
		},
	}
}

// Chain composes hook sets; each callback runs in argument order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.ChainHooks(hooks...)
}
