package dsl

import (
	"fmt"

	"github.com/aretw0/butterfly/pkg/adapters/memory"
	"github.com/aretw0/butterfly/pkg/diagram"
)

// Builder manages the diagram construction. Actors and use cases keep the
// order in which they are declared.
type Builder struct {
	actors   []string
	useCases []*UseCaseBuilder
}

// New creates a new diagram builder.
func New() *Builder {
	return &Builder{}
}

// Actor declares an actor.
func (b *Builder) Actor(name string) *Builder {
	b.actors = append(b.actors, name)
	return b
}

// Actors declares several actors at once.
func (b *Builder) Actors(names ...string) *Builder {
	b.actors = append(b.actors, names...)
	return b
}

// UseCase declares a use case. Titles are not deduplicated: declaring the
// same title twice yields two buttons.
func (b *Builder) UseCase(title string) *UseCaseBuilder {
	ub := &UseCaseBuilder{title: title}
	b.useCases = append(b.useCases, ub)
	return ub
}

// Diagram compiles the declarations. Associations naming an undeclared actor
// fail with a *diagram.AssociationError.
func (b *Builder) Diagram() (*diagram.Diagram, error) {
	d := diagram.New()

	ids := make(map[string]diagram.ActorID, len(b.actors))
	for _, name := range b.actors {
		if name == "" {
			return nil, fmt.Errorf("actor name must not be empty")
		}
		if _, dup := ids[name]; dup {
			return nil, fmt.Errorf("duplicate actor %q", name)
		}
		ids[name] = d.InsertActor(diagram.Actor{Name: name})
	}

	for i, ub := range b.useCases {
		if ub.title == "" {
			return nil, fmt.Errorf("use_cases[%d]: title must not be empty", i)
		}
		ucID := d.InsertUseCase(diagram.UseCase{Title: ub.title})
		for _, name := range ub.actors {
			actorID, ok := ids[name]
			if !ok {
				// never handed out, so the diagram reports the dangling side
				actorID = diagram.ActorID(-1)
			}
			if err := d.InsertAssociation(actorID, ucID); err != nil {
				return nil, fmt.Errorf("use case %q, actor %q: %w", ub.title, name, err)
			}
		}
	}

	return d, nil
}

// Build compiles the diagram into a memory loader.
func (b *Builder) Build() (*memory.Loader, error) {
	d, err := b.Diagram()
	if err != nil {
		return nil, fmt.Errorf("failed to build memory loader: %w", err)
	}
	return memory.NewLoader(d), nil
}
