/*
Package butterfly renders actor-scoped portals generated from use-case diagrams.

A portal is an ordered list of buttons. Each button is visible only to some
actors and is bound to an effect. The engine keeps one piece of state, the
actor currently viewing the portal, and reacts to two events: the actor
changed, or a visible button was clicked.

# Concept

The engine is a reducer plus a render function. Rendering filters the portal
for the current actor; clicking hands the button's effect to the host's
EffectRunner and never waits for it. Hosts (CLI, TUI, HTTP, MCP) mount an
engine and forward user events to it one at a time.

# Usage

	package main

	import (
		"context"
		"fmt"

		"github.com/aretw0/butterfly"
		"github.com/aretw0/butterfly/pkg/diagram"
		"github.com/aretw0/butterfly/pkg/ports"
	)

	func main() {
		portal := diagram.BuildPortal(diagram.Forum(), diagram.ActionsByTitle(map[string]func(){
			"Post comment": func() { fmt.Println("posted") },
		}))

		eng := butterfly.New(portal, "Subscriber", ports.Invoke())

		ctx := context.Background()
		for _, el := range eng.Render(ctx).Elements {
			fmt.Println(el.Label)
		}

		// Clicking the second portal button runs its effect.
		_ = eng.Click(ctx, 2)
	}
*/
package butterfly
