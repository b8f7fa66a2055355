package input

import (
	"context"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

// Touch adapts raw coordinate gestures (finger, stylus without native
// drag support). The platform has no drop-target notion, so every move
// and the final release are hit-tested through the injected HitTester.
type Touch struct {
	engine Engine
	hits   ports.HitTester
}

// NewTouch creates a touch adapter feeding the given engine. hits
// resolves which registered item sits under a coordinate.
func NewTouch(engine Engine, hits ports.HitTester) *Touch {
	return &Touch{engine: engine, hits: hits}
}

// TouchStart maps a touch landing on an item's drag handle. The handle
// region identifies the item, no hit-test needed yet.
func (t *Touch) TouchStart(ctx context.Context, itemID string, at domain.Coordinate) {
	t.engine.Start(ctx, itemID, at)
}

// TouchMove hit-tests the new finger position and reports the item under
// it (or nothing) as the hover target.
func (t *Touch) TouchMove(ctx context.Context, at domain.Coordinate) {
	id, ok := t.hits.Locate(at)
	if !ok {
		t.engine.Move(ctx, "")
		return
	}
	t.engine.Move(ctx, id)
}

// TouchEnd performs the final hit-test and drops onto whatever item is
// under the release point. Releasing over nothing settles as a no-op
// drag.
func (t *Touch) TouchEnd(ctx context.Context, at domain.Coordinate) error {
	id, _ := t.hits.Locate(at)
	return t.engine.End(ctx, id)
}

// TouchCancel maps the platform cancelling the gesture (incoming call,
// gesture stolen by scrolling, capture lost).
func (t *Touch) TouchCancel(ctx context.Context) {
	t.engine.Cancel(ctx)
}
