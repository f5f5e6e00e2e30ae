// Package tui is the interactive terminal host for a portal engine.
package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aretw0/butterfly/pkg/domain"
)

// Host is the engine surface the model drives.
type Host[E any] interface {
	Render(ctx context.Context) domain.View[E]
	SetActor(ctx context.Context, actor domain.Actor)
	Activate(ctx context.Context, element domain.Element[E])
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c084fc"))
	cursorStyle = lipgloss.NewStyle().Reverse(true)
	emptyStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f472b6"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// Model is the Bubble Tea model. The cursor always points into the view
// that is currently on screen.
type Model[E any] struct {
	ctx    context.Context
	host   Host[E]
	actors []domain.Actor
	keys   KeyMap

	view   domain.View[E]
	cursor int
	status string
}

// NewModel renders host once and returns a model cycling through actors.
func NewModel[E any](ctx context.Context, host Host[E], actors []domain.Actor) Model[E] {
	return Model[E]{
		ctx:    ctx,
		host:   host,
		actors: slices.Clone(actors),
		keys:   DefaultKeyMap,
		view:   host.Render(ctx),
	}
}

func (m Model[E]) Init() tea.Cmd {
	return nil
}

func (m Model[E]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < m.view.Len()-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Activate):
		if m.view.Len() == 0 {
			m.status = fmt.Sprintf("nothing is available to %s", m.view.Actor)
			return m, nil
		}
		element := m.view.Elements[m.cursor]
		m.host.Activate(m.ctx, element)
		m.status = fmt.Sprintf("%s: done", element.Label)
		m.refresh()
	case key.Matches(keyMsg, m.keys.NextActor):
		m.cycle(1)
	case key.Matches(keyMsg, m.keys.PrevActor):
		m.cycle(-1)
	}
	return m, nil
}

// cycle moves to the neighbouring actor. An actor outside the list moves to
// the first one.
func (m *Model[E]) cycle(step int) {
	if len(m.actors) == 0 {
		return
	}
	next := 0
	if i := slices.Index(m.actors, m.view.Actor); i >= 0 {
		next = (i + step + len(m.actors)) % len(m.actors)
	}
	m.host.SetActor(m.ctx, m.actors[next])
	m.status = ""
	m.refresh()
}

// refresh re-renders and clamps the cursor into the new view.
func (m *Model[E]) refresh() {
	m.view = m.host.Render(m.ctx)
	m.cursor = min(m.cursor, max(m.view.Len()-1, 0))
}

// Cursor returns the selected position in the current view.
func (m Model[E]) Cursor() int {
	return m.cursor
}

// Actor returns the actor of the current view.
func (m Model[E]) Actor() domain.Actor {
	return m.view.Actor
}

func (m Model[E]) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Portal for " + m.view.Actor.String()))
	b.WriteString("\n\n")

	if m.view.Len() == 0 {
		b.WriteString(emptyStyle.Render("No actions available."))
		b.WriteString("\n")
	}
	for i, el := range m.view.Elements {
		row := fmt.Sprintf("  %s", el.Label)
		if i == m.cursor {
			row = cursorStyle.Render("> " + el.Label)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	var help []string
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	return b.String()
}

// Run starts a full-screen program on the given model.
func Run[E any](m Model[E], opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
