package ports

import (
	"context"

	"github.com/aretw0/espalier/pkg/domain"
)

// OrderStore persists the settled order of a list. This allows the host
// to restore a collection between sessions ("the backend" from the
// engine's point of view).
type OrderStore interface {
	// Save persists the items for a given list ID.
	Save(ctx context.Context, listID string, items []domain.Item) error

	// Load retrieves the items for a given list ID, sorted by order.
	// Returns domain.ErrListNotFound if the list does not exist.
	Load(ctx context.Context, listID string) ([]domain.Item, error)

	// Delete removes the list.
	Delete(ctx context.Context, listID string) error

	// List returns the IDs of all stored lists.
	List(ctx context.Context) ([]string, error)
}
