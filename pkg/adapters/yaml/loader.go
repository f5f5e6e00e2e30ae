// Package yaml loads use-case diagrams from a single YAML document.
package yaml

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/aretw0/butterfly/pkg/dsl"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// File is the decoded form of a diagram document.
type File struct {
	Actors   []string      `mapstructure:"actors"`
	UseCases []UseCaseSpec `mapstructure:"use_cases"`
}

// UseCaseSpec declares one use case and the actors associated with it.
type UseCaseSpec struct {
	Title  string   `mapstructure:"title"`
	Actors []string `mapstructure:"actors"`
}

// Loader implements ports.DiagramLoader for a YAML file or in-memory bytes.
type Loader struct {
	path string
	data []byte
}

// NewLoader reads the diagram from path on every LoadDiagram call.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// NewFromBytes decodes the diagram from raw YAML.
func NewFromBytes(data []byte) *Loader {
	return &Loader{data: data}
}

// LoadDiagram implements ports.DiagramLoader.
func (l *Loader) LoadDiagram(_ context.Context) (*diagram.Diagram, error) {
	data := l.data
	if l.path != "" {
		raw, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read diagram %s: %w", l.path, err)
		}
		data = raw
	}
	return Parse(data)
}

// Parse decodes YAML into a diagram.
func Parse(data []byte) (*diagram.Diagram, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse diagram: %w", err)
	}

	var file File
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &file,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("failed to decode diagram: %w", err)
	}

	return file.Build()
}

// Build turns the decoded file into a diagram. Use cases keep file order.
func (f File) Build() (*diagram.Diagram, error) {
	b := dsl.New().Actors(f.Actors...)
	for _, spec := range f.UseCases {
		b.UseCase(spec.Title).For(spec.Actors...)
	}
	return b.Diagram()
}
