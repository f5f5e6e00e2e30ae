package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/butterfly/pkg/adapters/http"
	"github.com/aretw0/butterfly/pkg/adapters/mcp"
	"github.com/aretw0/butterfly/pkg/session"
)

// NewHTTPHandler builds the session API for app.
func NewHTTPHandler(app *App) (http.Handler, error) {
	sessions := session.NewManager(app.NewEngine, session.WithLogger(app.Logger))

	opts := []httpAdapter.Option{httpAdapter.WithLogger(app.Logger)}
	if app.MetricsRegistry != nil {
		opts = append(opts, httpAdapter.WithMetrics(app.MetricsRegistry))
	}
	return httpAdapter.NewServer(sessions, app.Diagram, opts...).NewHandler()
}

// Serve runs the HTTP API on addr until ctx is cancelled.
func Serve(ctx context.Context, app *App, addr string) error {
	handler, err := NewHTTPHandler(app)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		app.Logger.Info("starting Butterfly server", "addr", addr, "diagram", app.Config.Diagram)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			if closeErr := srv.Close(); closeErr != nil {
				app.Logger.Error("error killing server", "error", closeErr)
			}
			return fmt.Errorf("graceful shutdown did not complete: %w", err)
		}
		app.Logger.Info("Butterfly server stopped gracefully")
		return nil
	}
}

// NewMCPServer builds the MCP host for app.
func NewMCPServer(app *App) *mcp.Server {
	return mcp.NewServer(app.NewEngine, app.Diagram, mcp.WithLogger(app.Logger))
}
