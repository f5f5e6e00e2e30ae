package cli

import (
	"context"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/aretw0/butterfly/internal/presentation/tui"
	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/aretw0/butterfly/pkg/runner"
)

// RunMode selects the interactive host.
type RunMode int

const (
	// ModeAuto picks the TUI on a terminal and text otherwise.
	ModeAuto RunMode = iota
	ModeTUI
	ModeText
	ModeJSON
)

// RunOptions configures an interactive session.
type RunOptions struct {
	Mode   RunMode
	Actor  domain.Actor
	Input  io.Reader
	Output io.Writer
}

// ResolveMode turns ModeAuto into a concrete mode for out.
func ResolveMode(mode RunMode, out io.Writer) RunMode {
	if mode != ModeAuto {
		return mode
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ModeTUI
	}
	return ModeText
}

// RunInteractive mounts the portal for opts.Actor and hands it to the
// selected host until the user quits.
func RunInteractive(ctx context.Context, app *App, opts RunOptions) error {
	if opts.Input == nil {
		opts.Input = os.Stdin
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	actor := opts.Actor
	if actor == "" {
		actor = app.DefaultActor()
	}

	eng := app.NewPortalEngine(actor)

	switch ResolveMode(opts.Mode, opts.Output) {
	case ModeTUI:
		return tui.Run(tui.NewModel[string](ctx, eng, app.Actors()))
	case ModeJSON:
		r := runner.NewRunner(
			runner.WithLogger(app.Logger),
			runner.WithInputHandler(runner.NewJSONHandler(opts.Input, opts.Output)),
		)
		return runner.Run[string](ctx, r, eng)
	default:
		handler := runner.NewTextHandler(opts.Input, opts.Output)
		defer handler.Close()
		if f, ok := opts.Output.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			handler.Renderer = tui.NewRenderer()
		}
		r := runner.NewRunner(
			runner.WithLogger(app.Logger),
			runner.WithInputHandler(handler),
		)
		return runner.Run[string](ctx, r, eng)
	}
}
