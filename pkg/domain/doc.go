/*
Package domain contains the core value types of the Espalier engine.

These types carry no behavior beyond ordering and validation helpers. The
reordering rules themselves live in the internal engine; adapters and hosts
only ever see the types defined here.

# Key Types

  - Item: one orderable entry ({id, order} plus an opaque payload).
  - Session: the ephemeral state of a single drag gesture.
  - LifecycleHooks: observability callbacks for drag lifecycle events.
*/
package domain
