package registry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/aretw0/butterfly/internal/logging"
	"github.com/aretw0/butterfly/pkg/ports"
)

// ErrEffectNotFound is returned when no effect is registered under a name.
var ErrEffectNotFound = errors.New("effect not found")

// Effect defines the signature for an effect implementation.
type Effect func(ctx context.Context) error

// Registry manages the effects available to portals whose buttons are bound
// by name.
type Registry struct {
	mu      sync.RWMutex
	effects map[string]Effect
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		effects: make(map[string]Effect),
	}
}

// Register adds an effect to the registry.
// If an effect with the same name exists, it is overwritten. A nil fn
// removes the name.
func (r *Registry) Register(name string, fn Effect) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if fn == nil {
		delete(r.effects, name)
		return
	}
	r.effects[name] = fn
}

// Execute looks up an effect by name and runs it.
func (r *Registry) Execute(ctx context.Context, name string) error {
	r.mu.RLock()
	fn, ok := r.effects[name]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrEffectNotFound, name)
	}

	return fn(ctx)
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.effects))
	for name := range r.effects {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Runner adapts the registry to ports.EffectRunner. Failures, including
// unknown names, are logged and otherwise dropped.
func (r *Registry) Runner(logger *slog.Logger) ports.EffectRunner[string] {
	if logger == nil {
		logger = logging.NewNop()
	}
	return ports.EffectRunnerFunc[string](func(ctx context.Context, name string) {
		if err := r.Execute(ctx, name); err != nil {
			logger.Error("effect failed", "effect", name, "error", err)
			return
		}
		logger.Debug("effect completed", "effect", name)
	})
}
