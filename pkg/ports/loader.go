package ports

import (
	"context"

	"github.com/aretw0/butterfly/pkg/diagram"
)

// DiagramLoader defines how a use-case diagram is retrieved.
// This allows the storage layer (YAML, Loam, Memory) to be decoupled.
type DiagramLoader interface {
	LoadDiagram(ctx context.Context) (*diagram.Diagram, error)
}
