package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventDragStart  EventType = "drag_start"
	EventDragOver   EventType = "drag_over"
	EventDrop       EventType = "drop"
	EventDragCancel EventType = "drag_cancel"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	ListID    string    `json:"list_id,omitempty"`
}

// DragEvent describes a lift, hover change or cancellation.
type DragEvent struct {
	EventBase
	ItemID string `json:"item_id"`
	OverID string `json:"over_id,omitempty"`
}

// DropEvent describes the terminal drop of a gesture.
type DropEvent struct {
	EventBase
	ItemID   string        `json:"item_id"`
	TargetID string        `json:"target_id,omitempty"`
	From     int           `json:"from"`
	To       int           `json:"to"`
	Applied  bool          `json:"applied"`
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability. Any field may
// be nil; the engine skips nil callbacks. Hooks run synchronously inside
// the event that triggered them and must not call back into the engine.
type LifecycleHooks struct {
	OnDragStart  func(context.Context, *DragEvent)
	OnDragOver   func(context.Context, *DragEvent)
	OnDrop       func(context.Context, *DropEvent)
	OnDragCancel func(context.Context, *DragEvent)
}
