package domain

// Button is one action entry of a Portal: a display label, the actors allowed
// to see it, and the effect bound to it.
//
// E is the effect type of the portal. The engine never interprets it; it only
// hands it to the host's effect runner.
type Button[E any] struct {
	label   string
	allowed ActorSet
	action  E
}

// NewButton creates a button. An empty allowed set hides the button from
// every actor.
func NewButton[E any](label string, allowed ActorSet, action E) Button[E] {
	return Button[E]{
		label:   label,
		allowed: allowed,
		action:  action,
	}
}

// Label returns the display text.
func (b Button[E]) Label() string {
	return b.label
}

// AllowedActors returns the actors for whom the button is visible.
func (b Button[E]) AllowedActors() ActorSet {
	return b.allowed
}

// Action returns the bound effect.
func (b Button[E]) Action() E {
	return b.action
}

// VisibleTo reports whether the button is shown to actor a.
func (b Button[E]) VisibleTo(a Actor) bool {
	return b.allowed.Contains(a)
}

// WithAllowedActors returns a copy of the button whose visibility set is
// replaced by allowed. Label and action are preserved.
func (b Button[E]) WithAllowedActors(allowed ActorSet) Button[E] {
	b.allowed = allowed
	return b
}
