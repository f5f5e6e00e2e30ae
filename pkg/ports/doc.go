/*
Package ports defines the driven ports (interfaces) of the Butterfly engine.

These interfaces decouple the portal engine from the host that runs effects and
from the storage that holds use-case diagrams.

# Key Interfaces

  - EffectRunner: The host's effect-execution capability. The engine hands it
    the action of every activated button and never waits for the result.
  - DiagramLoader: Responsible for loading a use-case diagram (e.g. from YAML,
    Loam or memory).
*/
package ports
