// Package loam loads use-case diagrams from a directory of Markdown documents
// managed by Loam. Each document is one use case.
package loam

import (
	"cmp"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/aretw0/loam"
)

// Loader adapts a Loam repository to ports.DiagramLoader.
type Loader struct {
	Repo *loam.TypedRepository[UseCaseMetadata]
}

// New creates a new Loam adapter.
func New(repo *loam.TypedRepository[UseCaseMetadata]) *Loader {
	return &Loader{
		Repo: repo,
	}
}

// Open initializes a strict, read-only Loam repository at dir.
func Open(dir string) (*Loader, error) {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve diagram directory: %w", err)
	}

	repo, err := loam.Init(absPath,
		loam.WithStrict(true),
		loam.WithReadOnly(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open loam repository %s: %w", absPath, err)
	}

	return New(loam.NewTypedRepository[UseCaseMetadata](repo)), nil
}

type entry struct {
	id   string
	meta UseCaseMetadata
}

// LoadDiagram implements ports.DiagramLoader.
// Actors are the union over all documents, inserted in sorted order.
func (l *Loader) LoadDiagram(ctx context.Context) (*diagram.Diagram, error) {
	docs, err := l.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loam list failed: %w", err)
	}

	entries := make([]entry, 0, len(docs))
	seen := make(map[string]string)
	for _, doc := range docs {
		id := trimExtension(doc.ID)
		meta := doc.Data
		if meta.Title == "" {
			meta.Title = filepath.Base(id)
		}

		// Collision Detection
		if existing, ok := seen[meta.Title]; ok {
			return nil, fmt.Errorf("collision detected: use case '%s' is defined in both '%s' and '%s'", meta.Title, existing, doc.ID)
		}
		seen[meta.Title] = doc.ID
		entries = append(entries, entry{id: id, meta: meta})
	}

	slices.SortFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(a.meta.Order, b.meta.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})

	var names []string
	for _, e := range entries {
		for _, name := range e.meta.Actors {
			if name == "" {
				return nil, fmt.Errorf("use case '%s': empty actor name", e.meta.Title)
			}
			names = append(names, name)
		}
	}
	slices.Sort(names)
	names = slices.Compact(names)

	d := diagram.New()
	actors := make(map[string]diagram.ActorID, len(names))
	for _, name := range names {
		actors[name] = d.InsertActor(diagram.Actor{Name: name})
	}

	for _, e := range entries {
		ucID := d.InsertUseCase(diagram.UseCase{Title: e.meta.Title})
		for _, name := range e.meta.Actors {
			if err := d.InsertAssociation(actors[name], ucID); err != nil {
				return nil, fmt.Errorf("use case '%s': %w", e.meta.Title, err)
			}
		}
	}

	return d, nil
}

func trimExtension(id string) string {
	ext := filepath.Ext(id)
	if ext == "" {
		return id
	}
	return strings.TrimSuffix(id, ext)
}
