package domain

import (
	"cmp"
	"slices"
	"strings"
)

// Actor identifies a participant of a use-case diagram.
// Two actors are interchangeable iff their names are equal.
type Actor string

// NewActor wraps a name as an Actor. No normalization is applied.
func NewActor(name string) Actor {
	return Actor(name)
}

// String returns the wrapped identifier.
func (a Actor) String() string {
	return string(a)
}

// Compare orders actors lexicographically by name.
func Compare(a, b Actor) int {
	return cmp.Compare(a, b)
}

// ActorSet is an immutable, ordered set of actors.
// The zero value is the empty set.
type ActorSet struct {
	members []Actor // sorted, unique
}

// NewActorSet builds a set from the given actors, dropping duplicates.
func NewActorSet(actors ...Actor) ActorSet {
	if len(actors) == 0 {
		return ActorSet{}
	}
	members := slices.Clone(actors)
	slices.Sort(members)
	return ActorSet{members: slices.Compact(members)}
}

// Contains reports whether a is a member of the set.
func (s ActorSet) Contains(a Actor) bool {
	_, found := slices.BinarySearch(s.members, a)
	return found
}

// Len returns the number of actors in the set.
func (s ActorSet) Len() int {
	return len(s.members)
}

// IsEmpty reports whether the set has no members.
func (s ActorSet) IsEmpty() bool {
	return len(s.members) == 0
}

// Actors returns the members in ascending order.
// The returned slice is a copy and may be modified by the caller.
func (s ActorSet) Actors() []Actor {
	return slices.Clone(s.members)
}

// Equal reports whether both sets hold the same actors.
func (s ActorSet) Equal(other ActorSet) bool {
	return slices.Equal(s.members, other.members)
}

// Union returns a new set with the members of both sets.
func (s ActorSet) Union(other ActorSet) ActorSet {
	return NewActorSet(append(s.Actors(), other.members...)...)
}

// String renders the set as "{a, b}".
func (s ActorSet) String() string {
	names := make([]string, len(s.members))
	for i, a := range s.members {
		names[i] = string(a)
	}
	return "{" + strings.Join(names, ", ") + "}"
}
