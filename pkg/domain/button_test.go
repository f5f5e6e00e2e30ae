package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestButton_WithAllowedActors_LensLaws(t *testing.T) {
	original := NewButton("Post comment", NewActorSet("Subscriber"), "post")

	tests := []struct {
		name string
		set  ActorSet
	}{
		{"empty", NewActorSet()},
		{"single", NewActorSet("Administrator")},
		{"many", NewActorSet("Administrator", "Subscriber", "Guest")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			updated := original.WithAllowedActors(tt.set)

			assert.True(t, updated.AllowedActors().Equal(tt.set))
			assert.Equal(t, original.Label(), updated.Label())
			assert.Equal(t, original.Action(), updated.Action())
		})
	}

	// The receiver is not modified.
	assert.True(t, original.AllowedActors().Equal(NewActorSet("Subscriber")))
}

func TestButton_EmptySetIsHidden(t *testing.T) {
	b := NewButton("Ghost", NewActorSet(), 0)

	assert.False(t, b.VisibleTo("Administrator"))
	assert.False(t, b.VisibleTo(""))
}
