package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/butterfly/internal/logging"
	"github.com/aretw0/butterfly/pkg/domain"
)

// Runner handles the interaction loop of a portal engine using provided IO.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. If nil, a TextHandler on Stdin/Stdout is used.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Renderer is applied by the default TextHandler.
	Renderer ContentRenderer
}

// ContentRenderer is a function that transforms the content before outputting it.
// This allows for markdown to ANSI rendering without coupling the core package.
type ContentRenderer func(string) (string, error)

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		Logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// resolveHandler returns the configured handler, or a text handler on the
// standard streams that the caller owns and must close.
func (r *Runner) resolveHandler() (IOHandler, func()) {
	if r.Handler != nil {
		return r.Handler, func() {}
	}
	h := NewTextHandler(os.Stdin, os.Stdout, WithTextHandlerRenderer(r.Renderer))
	return h, func() { h.Close() }
}

// Run drives host until the user quits, input ends, or ctx is cancelled.
// A handler passed with WithInputHandler stays open; closing it is up to
// the caller.
// It is a function rather than a method because methods cannot carry type
// parameters.
func Run[E any](ctx context.Context, r *Runner, host Host[E]) error {
	handler, release := r.resolveHandler()
	defer release()
	logger := r.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	view := host.Render(ctx)
	if err := handler.Output(ctx, NewFrame(view)); err != nil {
		return fmt.Errorf("output error: %w", err)
	}

	for {
		line, err := handler.Input(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				logger.Debug("input closed")
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if errors.Is(err, ErrInputTooLarge) || errors.Is(err, ErrInvalidUTF8) {
				if err := handler.SystemOutput(ctx, err.Error()); err != nil {
					return err
				}
				continue
			}
			return fmt.Errorf("input error: %w", err)
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			if err := handler.SystemOutput(ctx, err.Error()); err != nil {
				return err
			}
			continue
		}

		switch cmd.Kind {
		case CommandEmpty:
			continue
		case CommandQuit:
			logger.Debug("quit requested")
			return nil
		case CommandList:
		case CommandSetActor:
			host.SetActor(ctx, domain.NewActor(cmd.Actor))
		case CommandActivate:
			if cmd.Number < 1 || cmd.Number > view.Len() {
				msg := fmt.Sprintf("no button %d (choose 1-%d)", cmd.Number, view.Len())
				if view.Len() == 0 {
					msg = fmt.Sprintf("no button %d: nothing is available to %s", cmd.Number, view.Actor)
				}
				if err := handler.SystemOutput(ctx, msg); err != nil {
					return err
				}
				continue
			}
			element := view.Elements[cmd.Number-1]
			logger.Debug("activating", "label", element.Label, "index", element.Index)
			host.Activate(ctx, element)
			if err := handler.SystemOutput(ctx, fmt.Sprintf("%s: done", element.Label)); err != nil {
				return err
			}
		}

		view = host.Render(ctx)
		if err := handler.Output(ctx, NewFrame(view)); err != nil {
			return fmt.Errorf("output error: %w", err)
		}
	}
}
