package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the portal TUI.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding

	// Actor cycling.
	NextActor key.Binding
	PrevActor key.Binding

	Quit key.Binding
}

// DefaultKeyMap uses vim-style movement (j/k) alongside the arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Activate: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "activate"),
	),
	NextActor: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next actor"),
	),
	PrevActor: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-tab", "previous actor"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp lists the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Activate, k.NextActor, k.Quit}
}
