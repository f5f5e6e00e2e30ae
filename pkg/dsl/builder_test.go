package dsl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/butterfly/internal/runtime"
	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/aretw0/butterfly/pkg/ports/tests"
)

func forum() *Builder {
	b := New().Actors("Administrator", "Subscriber")
	b.UseCase("Ban subscriber").For("Administrator")
	b.UseCase("Create subscriber").For("Administrator", "Subscriber")
	b.UseCase("Post comment").For("Administrator", "Subscriber")
	return b
}

func TestBuilder_MatchesForum(t *testing.T) {
	loader, err := forum().Build()
	require.NoError(t, err)

	tests.DiagramLoaderContractTest(t, loader, diagram.Forum())
}

func TestBuilder_Portal(t *testing.T) {
	loader, err := forum().Build()
	require.NoError(t, err)
	d, err := loader.LoadDiagram(context.Background())
	require.NoError(t, err)

	portal := diagram.BuildPortal(d, diagram.TitleAction)
	view := runtime.Render(portal, domain.NewState("Subscriber"))
	assert.Equal(t, []string{"Create subscriber", "Post comment"}, view.Labels())
}

func TestBuilder_Errors(t *testing.T) {
	t.Run("UndeclaredActor", func(t *testing.T) {
		b := New().Actor("A")
		b.UseCase("X").For("B")

		_, err := b.Diagram()
		var assocErr *diagram.AssociationError
		require.ErrorAs(t, err, &assocErr)
		assert.Equal(t, diagram.NonexistentActor, assocErr.Kind)

		_, err = b.Build()
		assert.ErrorContains(t, err, "failed to build memory loader")
	})

	t.Run("DuplicateActor", func(t *testing.T) {
		_, err := New().Actors("A", "A").Diagram()
		assert.ErrorContains(t, err, `duplicate actor "A"`)
	})

	t.Run("EmptyActor", func(t *testing.T) {
		_, err := New().Actor("").Diagram()
		assert.ErrorContains(t, err, "must not be empty")
	})

	t.Run("EmptyTitle", func(t *testing.T) {
		b := New().Actor("A")
		b.UseCase("").For("A")
		_, err := b.Diagram()
		assert.ErrorContains(t, err, "use_cases[0]: title must not be empty")
	})
}

func TestBuilder_KeepsDuplicateTitles(t *testing.T) {
	b := New().Actor("A")
	b.UseCase("Same").For("A")
	b.UseCase("Same").For("A")

	d, err := b.Diagram()
	require.NoError(t, err)
	assert.Len(t, d.UseCases(), 2)
	assert.Equal(t, "Same", b.useCases[1].Title())
}
