package domain

// View is the actor-scoped UI tree produced by rendering a portal.
// Hosts decide how to draw it.
type View[E any] struct {
	Actor    Actor        `json:"actor"`
	Elements []Element[E] `json:"elements"`
}

// Element is one interactive entry of a View.
type Element[E any] struct {
	// Index is the position of the originating button in the portal.
	Index  int    `json:"index"`
	Label  string `json:"label"`
	action E
}

// NewElement binds a rendered entry to the button at index.
func NewElement[E any](index int, label string, action E) Element[E] {
	return Element[E]{Index: index, Label: label, action: action}
}

// Action returns the effect bound to the element.
func (e Element[E]) Action() E {
	return e.action
}

// Activate returns the event the element raises when it is clicked.
func (e Element[E]) Activate() ButtonClicked[E] {
	return ButtonClicked[E]{Index: e.Index, Label: e.Label, Action: e.action}
}

// Labels returns the element labels in render order.
func (v View[E]) Labels() []string {
	labels := make([]string, len(v.Elements))
	for i, el := range v.Elements {
		labels[i] = el.Label
	}
	return labels
}

// Len returns the number of rendered elements.
func (v View[E]) Len() int {
	return len(v.Elements)
}

// Find returns the element rendered for the portal button at index.
func (v View[E]) Find(index int) (Element[E], bool) {
	for _, el := range v.Elements {
		if el.Index == index {
			return el, true
		}
	}
	return Element[E]{}, false
}
