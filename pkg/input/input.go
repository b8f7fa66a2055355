package input

import (
	"context"

	"github.com/aretw0/espalier/pkg/domain"
)

// Engine is the normalized event surface the adapters feed. The
// espalier.Engine facade satisfies it.
type Engine interface {
	Start(ctx context.Context, itemID string, origin domain.Coordinate)
	Move(ctx context.Context, overID string)
	End(ctx context.Context, targetID string) error
	Cancel(ctx context.Context)
}
