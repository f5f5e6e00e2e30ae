package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/butterfly"
	"github.com/aretw0/butterfly/internal/config"
	"github.com/aretw0/butterfly/internal/logging"
	"github.com/aretw0/butterfly/internal/runtime"
	"github.com/aretw0/butterfly/pkg/adapters/process"
	"github.com/aretw0/butterfly/pkg/adapters/redis"
	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/aretw0/butterfly/pkg/observability"
	"github.com/aretw0/butterfly/pkg/ports"
	"github.com/aretw0/butterfly/pkg/registry"
)

// App is everything a command needs: the loaded diagram, its portal and
// the effect pipeline built from the configuration.
type App struct {
	Config  config.Config
	Logger  *slog.Logger
	Diagram *diagram.Diagram
	Portal  domain.Portal[string]

	Registry        *registry.Registry
	Metrics         *observability.Metrics
	MetricsRegistry *prometheus.Registry

	effects    *registry.AsyncRunner[string]
	dispatcher *redis.Dispatcher
}

// NewApp loads cfg's diagram and wires the effect runners.
//
// Every use case gets a registry entry. Titles bound in the effects section
// run their process; the rest are logged. With a Redis address, effects are
// also queued for external consumers. All of it runs in the background.
func NewApp(ctx context.Context, cfg config.Config) (*App, error) {
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level)

	d, err := LoadDiagram(ctx, cfg.Diagram)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		Logger:   logger,
		Diagram:  d,
		Portal:   diagram.BuildPortal(d, diagram.TitleAction),
		Registry: registry.NewRegistry(),
	}

	procs := process.NewRunner(
		process.WithRegistry(cfg.EffectRegistry()),
		process.WithLogger(logger),
	)
	bound := cfg.EffectRegistry()
	for _, uc := range d.UseCases() {
		title := uc.UseCase.Title
		if _, ok := bound[title]; ok {
			app.Registry.Register(title, func(ctx context.Context) error {
				out, err := procs.Execute(ctx, title)
				if err != nil {
					return err
				}
				logger.Info("effect output", "effect", title, "output", out)
				return nil
			})
			continue
		}
		app.Registry.Register(title, func(ctx context.Context) error {
			actor, _ := domain.ActorFromContext(ctx)
			logger.Info("effect requested", "effect", title, "actor", actor)
			return nil
		})
	}

	runners := []ports.EffectRunner[string]{app.Registry.Runner(logger)}
	if cfg.Redis.Addr != "" {
		app.dispatcher = redis.New(cfg.Redis.Addr, redis.WithKey(cfg.Redis.Key), redis.WithLogger(logger))
		runners = append(runners, app.dispatcher)
	}
	app.effects = registry.Async(registry.Fanout(runners...))

	if cfg.Metrics.Enabled {
		app.Metrics = observability.NewMetrics(app.Actors(), observability.Labels(app.Portal))
		app.MetricsRegistry = prometheus.NewRegistry()
		if err := app.Metrics.Register(app.MetricsRegistry); err != nil {
			return nil, fmt.Errorf("failed to register metrics: %w", err)
		}
	}

	return app, nil
}

// Effects returns the runner every engine of this app hands effects to.
func (a *App) Effects() ports.EffectRunner[string] {
	return a.effects
}

func (a *App) hooks() domain.LifecycleHooks {
	hooks := observability.LoggingHooks(a.Logger)
	if a.Metrics != nil {
		return observability.Chain(hooks, a.Metrics.Hooks())
	}
	return hooks
}

// NewEngine builds a session engine for actor. It backs the HTTP and MCP hosts.
func (a *App) NewEngine(actor domain.Actor) *runtime.Engine[string] {
	return runtime.NewEngine(a.Portal, actor, a.effects,
		runtime.WithLifecycleHooks(a.hooks()),
		runtime.WithLogger(a.Logger),
	)
}

// NewPortalEngine builds the library-level engine used by interactive runs.
func (a *App) NewPortalEngine(actor domain.Actor) *butterfly.Engine[string] {
	return butterfly.New(a.Portal, actor, a.effects,
		butterfly.WithLifecycleHooks(a.hooks()),
		butterfly.WithLogger(a.Logger),
		butterfly.WithName(a.Config.Diagram),
	)
}

// Actors returns the diagram's actors in declaration order.
func (a *App) Actors() []domain.Actor {
	var actors []domain.Actor
	for _, e := range a.Diagram.Actors() {
		actors = append(actors, domain.NewActor(e.Actor.Name))
	}
	return actors
}

// DefaultActor is the configured actor, or the first declared one.
func (a *App) DefaultActor() domain.Actor {
	if a.Config.Actor != "" {
		return domain.NewActor(a.Config.Actor)
	}
	if actors := a.Actors(); len(actors) > 0 {
		return actors[0]
	}
	return ""
}

// Close waits for running effects and releases connections.
func (a *App) Close() error {
	a.effects.Wait()
	if a.dispatcher != nil {
		return a.dispatcher.Close()
	}
	return nil
}

// WithApp builds the app for cfg, hands it to fn and closes it afterwards,
// also when fn fails. Close waits for effects still running in the
// background, so callers may exit right after WithApp returns.
func WithApp(ctx context.Context, cfg config.Config, fn func(*App) error) error {
	app, err := NewApp(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize butterfly: %w", err)
	}
	runErr := fn(app)
	if err := app.Close(); err != nil {
		app.Logger.Error("failed to close app", "err", err)
	}
	return runErr
}
