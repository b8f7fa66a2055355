package ports

import (
	"context"

	"github.com/aretw0/espalier/pkg/domain"
)

// ReorderSink receives the full reindexed collection after a completed
// drag. The engine invokes Apply at most once per drag; it is never
// called for self-drops, cancellations or aborted gestures.
//
// The sink owns persistence and failure handling (e.g. rolling back to
// the prior order and surfacing an error to the user). An error returned
// here does not alter the engine's in-memory snapshot.
type ReorderSink interface {
	Apply(ctx context.Context, listID string, items []domain.Item) error
}

// SinkFunc adapts a plain function to the ReorderSink interface.
type SinkFunc func(ctx context.Context, listID string, items []domain.Item) error

// Apply implements ReorderSink.
func (f SinkFunc) Apply(ctx context.Context, listID string, items []domain.Item) error {
	return f(ctx, listID, items)
}
