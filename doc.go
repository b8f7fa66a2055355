/*
Package espalier is a headless drag-and-drop reordering engine for ordered
collections, designed to back admin UIs that let a user reorder entities
(cards, sections, menu entries) by dragging them.

It separates the drag state machine and the order-recomputation algorithm
(Core) from input devices and rendering (Host). The host forwards
normalized events (start/move/end/cancel) through an input adapter; the
engine keeps one drag session alive at a time, resolves the drop and hands
the fully reindexed collection to a Reorder Sink exactly once per
completed drag. This Hexagonal Architecture lets the same core serve a
browser bridge, a terminal UI or a test harness unchanged.

# Key Guarantees

  - Dense permutation: after every completed or cancelled drag, order
    values are exactly 0..n-1 with no gaps or duplicates.
  - Single session: a start while a drag is alive is ignored; every drag
    terminates through exactly one end or cancel.
  - Absorbing errors: unknown item references, self-drops and nested
    starts never panic or error; the engine skips the sink and settles.
  - No I/O in the core: every operation completes synchronously inside
    the input event that triggered it.

# Usage

	eng := espalier.New("services",
		[]domain.Item{
			{ID: "design", Order: 0},
			{ID: "backend", Order: 1},
			{ID: "seo", Order: 2},
		},
		espalier.WithSink(sink), // persists the new order
	)

	ctx := context.Background()
	eng.Start(ctx, "seo", domain.Coordinate{})
	eng.Move(ctx, "design")
	eng.End(ctx, "design") // sink receives [seo design backend], reindexed 0..2

Input normalization for pointer and touch devices lives in pkg/input;
persistence adapters (memory, file, redis) live under pkg/adapters and
plug in via WithStore.
*/
package espalier
