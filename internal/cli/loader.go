package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/butterfly/pkg/adapters/loam"
	"github.com/aretw0/butterfly/pkg/adapters/memory"
	"github.com/aretw0/butterfly/pkg/adapters/yaml"
	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/aretw0/butterfly/pkg/ports"
)

// NewLoader picks a diagram loader for path: the built-in forum demo when
// path is empty, Loam for a directory, YAML otherwise.
func NewLoader(path string) (ports.DiagramLoader, error) {
	if path == "" {
		return memory.NewLoader(diagram.Forum()), nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("diagram %s: %w", path, err)
	}
	if info.IsDir() {
		return loam.Open(path)
	}
	return yaml.NewLoader(path), nil
}

// LoadDiagram loads and checks the diagram at path.
func LoadDiagram(ctx context.Context, path string) (*diagram.Diagram, error) {
	loader, err := NewLoader(path)
	if err != nil {
		return nil, err
	}
	d, err := loader.LoadDiagram(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load diagram: %w", err)
	}
	if err := d.CheckInvariants(); err != nil {
		return nil, err
	}
	return d, nil
}
