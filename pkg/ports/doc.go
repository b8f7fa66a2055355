/*
Package ports defines the driven ports (interfaces) for the Espalier engine.

These interfaces decouple the core reordering logic from external
implementations, allowing the engine to work with various persistence
backends and platform-specific hit-testing.

# Key Interfaces

  - ReorderSink: receives the finalized, reindexed collection once per completed drag.
  - OrderStore: persists the settled order of a list between sessions.
  - HitTester: resolves which item sits under a coordinate (touch input).
*/
package ports
