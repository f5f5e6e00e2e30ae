package domain

// State is the entire mutable state of a portal engine: the actor currently
// viewing the portal. It is replaced wholesale on every transition.
type State struct {
	CurrentActor Actor `json:"current_actor"`
}

// NewState seeds a state with the externally supplied actor.
func NewState(actor Actor) State {
	return State{CurrentActor: actor}
}
