package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/butterfly/pkg/diagram"
	"github.com/aretw0/butterfly/pkg/domain"
)

// GraphOverlay contains the viewing actor to highlight on the graph.
type GraphOverlay struct {
	Actor domain.Actor
}

// GenerateMermaid produces a Mermaid flowchart of a use-case diagram.
// It applies semantic styling:
// - Actor: ((Circle))
// - Use case: ([Stadium])
// With an overlay, the actor gets the "current" class and the use cases it
// can see get the "visible" class.
func GenerateMermaid(d *diagram.Diagram, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, e := range d.Actors() {
		fmt.Fprintf(&sb, "    %s((\"%s\"))\n", actorNode(e.ID), escapeLabel(e.Actor.Name))
	}
	for _, e := range d.UseCases() {
		fmt.Fprintf(&sb, "    %s([\"%s\"])\n", useCaseNode(e.ID), escapeLabel(e.UseCase.Title))
	}
	for _, a := range d.Associations() {
		fmt.Fprintf(&sb, "    %s --- %s\n", actorNode(a.Actor), useCaseNode(a.UseCase))
	}

	// Apply Overlay Styles
	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast regardless of theme (Light/Dark)
		sb.WriteString("    classDef visible fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		if id, ok := d.ActorByName(overlay.Actor.String()); ok {
			fmt.Fprintf(&sb, "    class %s current;\n", actorNode(id))
		}
		for _, e := range d.UseCases() {
			if diagram.AllowedActors(d, e.ID).Contains(overlay.Actor) {
				fmt.Fprintf(&sb, "    class %s visible;\n", useCaseNode(e.ID))
			}
		}
	}

	return sb.String()
}

func actorNode(id diagram.ActorID) string {
	return fmt.Sprintf("a%d", id)
}

func useCaseNode(id diagram.UseCaseID) string {
	return fmt.Sprintf("u%d", id)
}

func escapeLabel(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
