// Package memory provides an in-memory OrderStore, primarily for tests
// and ephemeral hosts.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/espalier/pkg/domain"
)

// Store implements ports.OrderStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string][]domain.Item
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string][]domain.Item),
	}
}

// Save persists the items in memory. Items are deep-copied so later
// caller mutations cannot reach the stored state.
func (s *Store) Save(ctx context.Context, listID string, items []domain.Item) error {
	copied := domain.CloneItems(items)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[listID] = copied
	return nil
}

// Load retrieves the items, sorted by order.
func (s *Store) Load(ctx context.Context, listID string) ([]domain.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items, ok := s.data[listID]
	if !ok {
		return nil, domain.ErrListNotFound
	}

	out := domain.CloneItems(items)
	domain.SortByOrder(out)
	return out, nil
}

// Delete removes the list.
func (s *Store) Delete(ctx context.Context, listID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, listID)
	return nil
}

// List returns the stored list IDs.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	return ids, nil
}
