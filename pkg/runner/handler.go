package runner

import (
	"context"

	"github.com/aretw0/butterfly/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (CLI) and JSON (Structured) modes.
type IOHandler interface {
	// Output presents the current view.
	Output(ctx context.Context, frame Frame) error

	// Input reads one command line from the user.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message to the user (e.g. errors, status updates).
	// This is distinct from view rendering.
	SystemOutput(ctx context.Context, msg string) error
}

// Frame is the handler-facing form of a view. Numbers are 1-based and are
// what the user types to activate a button.
type Frame struct {
	Actor   string        `json:"actor"`
	Buttons []FrameButton `json:"buttons"`
}

// FrameButton is one listed button.
type FrameButton struct {
	Number int    `json:"number"`
	Index  int    `json:"index"`
	Label  string `json:"label"`
}

// NewFrame flattens a view for display.
func NewFrame[E any](view domain.View[E]) Frame {
	frame := Frame{
		Actor:   view.Actor.String(),
		Buttons: make([]FrameButton, len(view.Elements)),
	}
	for i, el := range view.Elements {
		frame.Buttons[i] = FrameButton{Number: i + 1, Index: el.Index, Label: el.Label}
	}
	return frame
}

// Host is what the runner drives. Both the root engine and the internal
// runtime engine satisfy it.
type Host[E any] interface {
	Render(ctx context.Context) domain.View[E]
	SetActor(ctx context.Context, actor domain.Actor)
	Activate(ctx context.Context, element domain.Element[E])
}
