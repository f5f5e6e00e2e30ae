package runtime_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/aretw0/butterfly/internal/runtime"
	"github.com/aretw0/butterfly/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var actors = []domain.Actor{"Administrator", "Subscriber", "Guest", ""}

// randomPortal builds a portal whose buttons carry their own index as action.
func randomPortal(r *rand.Rand) domain.Portal[int] {
	n := r.IntN(8)
	buttons := make([]domain.Button[int], n)
	for i := range buttons {
		var allowed []domain.Actor
		for _, a := range actors {
			if r.IntN(2) == 0 {
				allowed = append(allowed, a)
			}
		}
		label := fmt.Sprintf("button-%d", r.IntN(4)) // duplicates are legal
		buttons[i] = domain.NewButton(label, domain.NewActorSet(allowed...), i)
	}
	return domain.NewPortal(buttons...)
}

func TestRender_FilteringCorrectness(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for iter := range 200 {
		portal := randomPortal(r)
		actor := actors[r.IntN(len(actors))]

		view := runtime.Render(portal, domain.NewState(actor))

		var want []int
		for i, b := range portal.All() {
			if b.AllowedActors().Contains(actor) {
				want = append(want, i)
			}
		}
		var got []int
		for _, el := range view.Elements {
			got = append(got, el.Action())
			assert.Equal(t, el.Index, el.Action(), "iteration %d: index must point at the source button", iter)
		}
		assert.Equal(t, want, got, "iteration %d", iter)
		assert.Equal(t, actor, view.Actor)
	}
}

func TestReduce_ActorChangedIsIdempotent(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for range 100 {
		portal := randomPortal(r)
		start := domain.NewState(actors[r.IntN(len(actors))])
		ev := domain.ActorChanged{Actor: actors[r.IntN(len(actors))]}

		once, effects := runtime.Reduce[int](start, ev)
		assert.Empty(t, effects)
		twice, effects := runtime.Reduce[int](once, ev)
		assert.Empty(t, effects)

		assert.Equal(t, once, twice)
		assert.Equal(t, runtime.Render(portal, once), runtime.Render(portal, twice))
	}
}

func TestReduce_ButtonClickedKeepsStateAndEmitsOnce(t *testing.T) {
	for _, actor := range actors {
		state := domain.NewState(actor)
		next, effects := runtime.Reduce[string](state, domain.ButtonClicked[string]{Label: "Post comment", Action: "post"})

		assert.Equal(t, state, next)
		assert.Equal(t, []string{"post"}, effects)
	}
}

func TestReduce_IgnoresForeignEvents(t *testing.T) {
	state := domain.NewState("Subscriber")

	// A click carrying a different effect type is not an event of this engine.
	next, effects := runtime.Reduce[string](state, domain.ButtonClicked[int]{Action: 1})
	assert.Equal(t, state, next)
	assert.Empty(t, effects)
}

func TestRender_EmptyPortal(t *testing.T) {
	for _, actor := range actors {
		view := runtime.Render(domain.NewPortal[string](), domain.NewState(actor))
		assert.Empty(t, view.Elements)
		assert.NotNil(t, view.Elements, "empty views encode as [] rather than null")
	}
}

func TestRender_UnknownActorSeesNothing(t *testing.T) {
	portal := domain.NewPortal(
		domain.NewButton("Ban subscriber", domain.NewActorSet("Administrator"), "ban"),
	)

	view := runtime.Render(portal, domain.NewState("Nobody"))
	assert.Zero(t, view.Len())
}

func TestScenario_BanAndPost(t *testing.T) {
	portal := domain.NewPortal(
		domain.NewButton("Ban subscriber", domain.NewActorSet("Administrator"), "banFx"),
		domain.NewButton("Post comment", domain.NewActorSet("Administrator", "Subscriber"), "postFx"),
	)

	state := domain.NewState("Subscriber")
	view := runtime.Render(portal, state)
	require.Equal(t, []string{"Post comment"}, view.Labels())

	// Clicking while Subscriber runs postFx once and keeps the actor.
	next, effects := runtime.Reduce[string](state, view.Elements[0].Activate())
	assert.Equal(t, []string{"postFx"}, effects)
	assert.Equal(t, domain.Actor("Subscriber"), next.CurrentActor)

	// Switching to Administrator shows both, Ban first.
	next, _ = runtime.Reduce[string](next, domain.ActorChanged{Actor: "Administrator"})
	assert.Equal(t, []string{"Ban subscriber", "Post comment"}, runtime.Render(portal, next).Labels())
}

func TestRender_NoStaleElementsAcrossActors(t *testing.T) {
	portal := domain.NewPortal(
		domain.NewButton("Admin only", domain.NewActorSet("Administrator"), 0),
		domain.NewButton("Subscriber only", domain.NewActorSet("Subscriber"), 1),
	)

	state := domain.NewState("Administrator")
	assert.Equal(t, []string{"Admin only"}, runtime.Render(portal, state).Labels())

	state, _ = runtime.Reduce[int](state, domain.ActorChanged{Actor: "Subscriber"})
	assert.Equal(t, []string{"Subscriber only"}, runtime.Render(portal, state).Labels())
}
