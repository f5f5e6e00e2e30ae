/*
Package domain contains the core domain models of the Butterfly portal engine.

A portal is an ordered list of buttons generated from a use-case diagram. Each
button is visible to a set of actors and is bound to an effect. This package is
kept pure and free of I/O: it only describes the data the engine reads and the
events it reacts to.

# Key Entities

  - Actor: An identity taking part in the diagram (e.g. "Administrator").
  - ActorSet: An immutable, ordered set of actors.
  - Button: A label, the actors allowed to see it, and the effect it triggers.
  - Portal: The ordered sequence of buttons handed to the engine.
  - State: The actor currently viewing the portal.
  - View: The actor-scoped UI tree produced by rendering.
*/
package domain
