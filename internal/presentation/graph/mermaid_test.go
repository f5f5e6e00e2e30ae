package graph

import (
	"strings"
	"testing"

	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/stretchr/testify/assert"
)

func TestGenerateMermaid(t *testing.T) {
	got := GenerateMermaid(diagram.Forum(), nil)

	want := `graph LR
    a0(("Administrator"))
    a1(("Subscriber"))
    u0(["Ban subscriber"])
    u1(["Create subscriber"])
    u2(["Post comment"])
    a0 --- u0
    a0 --- u1
    a0 --- u2
    a1 --- u1
    a1 --- u2
`
	assert.Equal(t, want, got)
}

func TestGenerateMermaid_Overlay(t *testing.T) {
	got := GenerateMermaid(diagram.Forum(), &GraphOverlay{Actor: "Subscriber"})

	assert.Contains(t, got, "classDef visible")
	assert.Contains(t, got, "class a1 current;")
	assert.Contains(t, got, "class u1 visible;")
	assert.Contains(t, got, "class u2 visible;")
	assert.NotContains(t, got, "class u0 visible;")
}

func TestGenerateMermaid_UnknownActorOverlay(t *testing.T) {
	got := GenerateMermaid(diagram.Forum(), &GraphOverlay{Actor: "Guest"})

	assert.NotContains(t, got, "current;")
	assert.NotContains(t, got, "visible;")
}

func TestGenerateMermaid_EscapesQuotes(t *testing.T) {
	d := diagram.New()
	d.InsertUseCase(diagram.UseCase{Title: `Say "hi"`})

	got := GenerateMermaid(d, nil)
	assert.True(t, strings.Contains(got, `u0(["Say #quot;hi#quot;"])`))
}
