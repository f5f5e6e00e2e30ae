package runtime

import "github.com/aretw0/butterfly/pkg/domain"

// Reduce is the portal state machine.
//
//   - ActorChanged replaces the state and emits nothing.
//   - ButtonClicked keeps the state and emits the button's action once.
//
// Any other event is ignored. Reduce is pure and can be driven directly from
// tests without a host.
func Reduce[E any](state domain.State, event domain.Event) (domain.State, []E) {
	switch ev := event.(type) {
	case domain.ActorChanged:
		return domain.NewState(ev.Actor), nil
	case domain.ButtonClicked[E]:
		return state, []E{ev.Action}
	default:
		return state, nil
	}
}

// Render produces the UI tree for state: one element per button visible to
// the current actor, in portal order. Hidden buttons are omitted entirely.
// The result is recomputed on every call.
func Render[E any](portal domain.Portal[E], state domain.State) domain.View[E] {
	view := domain.View[E]{
		Actor:    state.CurrentActor,
		Elements: []domain.Element[E]{},
	}
	for i, b := range portal.All() {
		if !b.VisibleTo(state.CurrentActor) {
			continue
		}
		view.Elements = append(view.Elements, domain.NewElement(i, b.Label(), b.Action()))
	}
	return view
}
