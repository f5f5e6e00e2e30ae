package domain

import (
	"iter"
	"slices"
)

// Portal is the ordered sequence of buttons derived from a use-case diagram.
// Order defines render order. Duplicate labels and empty portals are legal.
type Portal[E any] struct {
	buttons []Button[E]
}

// NewPortal creates a portal holding a copy of buttons.
func NewPortal[E any](buttons ...Button[E]) Portal[E] {
	return Portal[E]{buttons: slices.Clone(buttons)}
}

// Buttons returns the buttons in portal order.
// The returned slice is a copy; the portal itself is never mutated.
func (p Portal[E]) Buttons() []Button[E] {
	return slices.Clone(p.buttons)
}

// All iterates over the buttons with their positions.
func (p Portal[E]) All() iter.Seq2[int, Button[E]] {
	return func(yield func(int, Button[E]) bool) {
		for i, b := range p.buttons {
			if !yield(i, b) {
				return
			}
		}
	}
}

// Len returns the number of buttons.
func (p Portal[E]) Len() int {
	return len(p.buttons)
}

// Actors returns every actor that can see at least one button.
func (p Portal[E]) Actors() ActorSet {
	var all ActorSet
	for _, b := range p.buttons {
		all = all.Union(b.allowed)
	}
	return all
}
