package dsl

import (
	"context"
	"fmt"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

// Builder manages the list construction.
type Builder struct {
	listID string
	items  []*ItemBuilder
	byID   map[string]*ItemBuilder
}

// NewList creates a new list builder.
func NewList(listID string) *Builder {
	return &Builder{
		listID: listID,
		byID:   make(map[string]*ItemBuilder),
	}
}

// ListID returns the list this builder targets.
func (b *Builder) ListID() string {
	return b.listID
}

// Add creates a new item at the end of the list.
// If the item already exists, it returns the existing builder.
func (b *Builder) Add(id string) *ItemBuilder {
	if ib, ok := b.byID[id]; ok {
		return ib
	}
	ib := &ItemBuilder{
		item:    domain.Item{ID: id},
		builder: b,
	}
	b.items = append(b.items, ib)
	b.byID[id] = ib
	return ib
}

// Build compiles the list into a densely ordered item slice.
// Order values follow insertion order.
func (b *Builder) Build() ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(b.items))
	for n, ib := range b.items {
		it := ib.item
		it.Order = n
		items = append(items, it)
	}
	if err := domain.ValidateOrder(items); err != nil {
		return nil, fmt.Errorf("failed to build list %q: %w", b.listID, err)
	}
	return items, nil
}

// MustBuild is Build for static lists; it panics on an invalid list.
func (b *Builder) MustBuild() []domain.Item {
	items, err := b.Build()
	if err != nil {
		panic(err)
	}
	return items
}

// Seed builds the list and saves it to the store under the builder's
// list ID.
func (b *Builder) Seed(ctx context.Context, store ports.OrderStore) error {
	items, err := b.Build()
	if err != nil {
		return err
	}
	return store.Save(ctx, b.listID, items)
}
