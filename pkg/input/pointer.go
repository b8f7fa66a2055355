package input

import (
	"context"

	"github.com/aretw0/espalier/pkg/domain"
)

// Pointer adapts native drag-and-drop events (mouse/pen). The platform's
// drag-over and drop events deliver the target item directly, so this
// adapter is a pure relay.
type Pointer struct {
	engine Engine
}

// NewPointer creates a pointer adapter feeding the given engine.
func NewPointer(engine Engine) *Pointer {
	return &Pointer{engine: engine}
}

// DragStart maps the platform drag-start on an item's handle.
func (p *Pointer) DragStart(ctx context.Context, itemID string, at domain.Coordinate) {
	p.engine.Start(ctx, itemID, at)
}

// DragOver maps the platform drag-over on an item.
func (p *Pointer) DragOver(ctx context.Context, itemID string) {
	p.engine.Move(ctx, itemID)
}

// DragLeave maps the pointer leaving all registered items.
func (p *Pointer) DragLeave(ctx context.Context) {
	p.engine.Move(ctx, "")
}

// Drop maps the platform drop on a target item.
func (p *Pointer) Drop(ctx context.Context, targetID string) error {
	return p.engine.End(ctx, targetID)
}

// DragEnd maps a drag that ended without a drop (released outside any
// target, Escape, window losing the gesture). The session is discarded.
func (p *Pointer) DragEnd(ctx context.Context) {
	p.engine.Cancel(ctx)
}
