package domain

import "time"

// Coordinate is a device-independent input position. Pointer adapters fill
// it from mouse coordinates, touch adapters from the active touch point.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Session is the ephemeral state of one drag gesture. It is created on
// start, mutated on move and destroyed on end or cancel. At most one
// Session is alive per engine instance.
type Session struct {
	// DraggedID is the item currently lifted.
	DraggedID string

	// OverID is the item currently under the pointer/finger, or empty
	// when hovering over nothing (or over the dragged item itself).
	OverID string

	// Origin is the input coordinate at drag start. Only used for
	// relative-offset visual feedback, never for reordering decisions.
	Origin Coordinate

	// StartedAt timestamps the gesture for duration metrics.
	StartedAt time.Time
}
