package diagram

import (
	"cmp"
	"fmt"
	"slices"
)

// ActorID identifies an actor. It is unique per diagram.
type ActorID int

// UseCaseID identifies a use case. It is unique per diagram.
type UseCaseID int

// Actor is a participant of zero or more use cases.
type Actor struct {
	Name string `json:"name"`
}

// UseCase is a single action offered by the system.
type UseCase struct {
	Title string `json:"title"`
}

// Association links an actor to a use case.
type Association struct {
	Actor   ActorID   `json:"actor"`
	UseCase UseCaseID `json:"use_case"`
}

// Diagram is a graph of actors, use cases and associations.
// Identifiers are handed out densely from zero in insertion order.
type Diagram struct {
	actors       []Actor
	useCases     []UseCase
	associations map[Association]struct{}
}

// New returns an empty diagram.
func New() *Diagram {
	return &Diagram{
		associations: make(map[Association]struct{}),
	}
}

// InsertActor adds an actor and returns its identifier.
func (d *Diagram) InsertActor(actor Actor) ActorID {
	d.actors = append(d.actors, actor)
	return ActorID(len(d.actors) - 1)
}

// InsertUseCase adds a use case and returns its identifier.
func (d *Diagram) InsertUseCase(useCase UseCase) UseCaseID {
	d.useCases = append(d.useCases, useCase)
	return UseCaseID(len(d.useCases) - 1)
}

// InsertAssociation links an actor to a use case. It returns an
// *AssociationError if either side does not exist. Inserting the same
// association twice is a no-op.
func (d *Diagram) InsertAssociation(actorID ActorID, useCaseID UseCaseID) error {
	if _, ok := d.Actor(actorID); !ok {
		return &AssociationError{Kind: NonexistentActor, ActorID: actorID}
	}
	if _, ok := d.UseCase(useCaseID); !ok {
		return &AssociationError{Kind: NonexistentUseCase, UseCaseID: useCaseID}
	}
	if d.associations == nil {
		d.associations = make(map[Association]struct{})
	}
	d.associations[Association{Actor: actorID, UseCase: useCaseID}] = struct{}{}
	return nil
}

// Actor returns the actor with the given identifier.
func (d *Diagram) Actor(id ActorID) (Actor, bool) {
	if id < 0 || int(id) >= len(d.actors) {
		return Actor{}, false
	}
	return d.actors[id], true
}

// UseCase returns the use case with the given identifier.
func (d *Diagram) UseCase(id UseCaseID) (UseCase, bool) {
	if id < 0 || int(id) >= len(d.useCases) {
		return UseCase{}, false
	}
	return d.useCases[id], true
}

// ActorByName returns the first actor with the given name.
func (d *Diagram) ActorByName(name string) (ActorID, bool) {
	for i, a := range d.actors {
		if a.Name == name {
			return ActorID(i), true
		}
	}
	return 0, false
}

// UseCaseByTitle returns the first use case with the given title.
func (d *Diagram) UseCaseByTitle(title string) (UseCaseID, bool) {
	for i, uc := range d.useCases {
		if uc.Title == title {
			return UseCaseID(i), true
		}
	}
	return 0, false
}

// ActorEntry pairs an actor with its identifier.
type ActorEntry struct {
	ID    ActorID
	Actor Actor
}

// UseCaseEntry pairs a use case with its identifier.
type UseCaseEntry struct {
	ID      UseCaseID
	UseCase UseCase
}

// Actors returns all actors in identifier order.
func (d *Diagram) Actors() []ActorEntry {
	entries := make([]ActorEntry, len(d.actors))
	for i, a := range d.actors {
		entries[i] = ActorEntry{ID: ActorID(i), Actor: a}
	}
	return entries
}

// UseCases returns all use cases in identifier order.
func (d *Diagram) UseCases() []UseCaseEntry {
	entries := make([]UseCaseEntry, len(d.useCases))
	for i, uc := range d.useCases {
		entries[i] = UseCaseEntry{ID: UseCaseID(i), UseCase: uc}
	}
	return entries
}

// Associations returns all associations sorted by actor, then use case.
func (d *Diagram) Associations() []Association {
	out := make([]Association, 0, len(d.associations))
	for a := range d.associations {
		out = append(out, a)
	}
	slices.SortFunc(out, func(x, y Association) int {
		if c := cmp.Compare(x.Actor, y.Actor); c != 0 {
			return c
		}
		return cmp.Compare(x.UseCase, y.UseCase)
	})
	return out
}

// ActorsOf returns the actors associated with a use case, in identifier order.
func (d *Diagram) ActorsOf(useCaseID UseCaseID) []Actor {
	var out []Actor
	for _, assoc := range d.Associations() {
		if assoc.UseCase != useCaseID {
			continue
		}
		if a, ok := d.Actor(assoc.Actor); ok {
			out = append(out, a)
		}
	}
	return out
}

// CheckInvariants verifies that every association refers to an existing
// actor and use case.
func (d *Diagram) CheckInvariants() error {
	for _, assoc := range d.Associations() {
		if _, ok := d.Actor(assoc.Actor); !ok {
			return fmt.Errorf("diagram invariant violation: association refers to nonexistent actor %d", assoc.Actor)
		}
		if _, ok := d.UseCase(assoc.UseCase); !ok {
			return fmt.Errorf("diagram invariant violation: association refers to nonexistent use case %d", assoc.UseCase)
		}
	}
	return nil
}
