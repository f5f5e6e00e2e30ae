package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortal_PreservesOrderAndDuplicates(t *testing.T) {
	buttons := []Button[string]{
		NewButton("B", NewActorSet("x"), "b"),
		NewButton("A", NewActorSet("x"), "a"),
		NewButton("B", NewActorSet("y"), "b2"),
	}
	p := NewPortal(buttons...)

	// Mutating the input does not leak into the portal.
	buttons[0] = NewButton("changed", NewActorSet(), "")

	got := p.Buttons()
	assert.Equal(t, 3, p.Len())
	assert.Equal(t, "B", got[0].Label())
	assert.Equal(t, "A", got[1].Label())
	assert.Equal(t, "b2", got[2].Action())
}

func TestPortal_All(t *testing.T) {
	p := NewPortal(
		NewButton("first", NewActorSet(), 1),
		NewButton("second", NewActorSet(), 2),
	)

	var labels []string
	for i, b := range p.All() {
		assert.Equal(t, i+1, b.Action())
		labels = append(labels, b.Label())
	}
	assert.Equal(t, []string{"first", "second"}, labels)
}

func TestPortal_Actors(t *testing.T) {
	p := NewPortal(
		NewButton("Ban subscriber", NewActorSet("Administrator"), 0),
		NewButton("Post comment", NewActorSet("Administrator", "Subscriber"), 0),
		NewButton("Hidden", NewActorSet(), 0),
	)

	assert.Equal(t, []Actor{"Administrator", "Subscriber"}, p.Actors().Actors())
	assert.True(t, NewPortal[int]().Actors().IsEmpty())
}

func TestElement_Activate(t *testing.T) {
	el := NewElement(3, "Post comment", "post")

	ev := el.Activate()
	assert.Equal(t, EventButtonClicked, ev.Kind())
	assert.Equal(t, 3, ev.Index)
	assert.Equal(t, "post", ev.Action)
}
