// Package memory provides an in-memory diagram loader, mostly for tests and
// embedding.
package memory

import (
	"context"
	"errors"

	"github.com/aretw0/butterfly/pkg/diagram"
)

// ErrNoDiagram is returned when the loader was built without a diagram.
var ErrNoDiagram = errors.New("memory loader has no diagram")

// Loader implements ports.DiagramLoader around a prebuilt diagram.
type Loader struct {
	diagram *diagram.Diagram
}

// NewLoader wraps d.
func NewLoader(d *diagram.Diagram) *Loader {
	return &Loader{diagram: d}
}

// LoadDiagram returns the wrapped diagram after checking its invariants.
func (l *Loader) LoadDiagram(_ context.Context) (*diagram.Diagram, error) {
	if l.diagram == nil {
		return nil, ErrNoDiagram
	}
	if err := l.diagram.CheckInvariants(); err != nil {
		return nil, err
	}
	return l.diagram, nil
}
