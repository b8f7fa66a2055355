// Package redis provides a Redis-backed OrderStore for hosts that share
// lists across processes or want TTL-bounded persistence.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/espalier/pkg/domain"
)

// DefaultPrefix namespaces all keys written by this store.
const DefaultPrefix = "espalier:"

// Store implements ports.OrderStore on Redis. Lists are stored as JSON
// values under <prefix>list:<listID>.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option defines a functional option for configuring the Store.
type Option func(*Store)

// WithTTL sets an expiration on saved lists. Zero (the default) means
// keys never expire.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix overrides the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// NewFromClient creates a Store on an existing Redis client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	s := &Store{
		client: client,
		prefix: DefaultPrefix,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) key(listID string) string {
	return s.prefix + "list:" + listID
}

// Save persists the items as a JSON value.
func (s *Store) Save(ctx context.Context, listID string, items []domain.Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal list: %w", err)
	}
	if err := s.client.Set(ctx, s.key(listID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis error saving list: %w", err)
	}
	return nil
}

// Load retrieves the items, sorted by order.
func (s *Store) Load(ctx context.Context, listID string) ([]domain.Item, error) {
	data, err := s.client.Get(ctx, s.key(listID)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrListNotFound
		}
		return nil, fmt.Errorf("redis error loading list: %w", err)
	}

	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal list: %w", err)
	}
	domain.SortByOrder(items)
	return items, nil
}

// Delete removes the list.
func (s *Store) Delete(ctx context.Context, listID string) error {
	if err := s.client.Del(ctx, s.key(listID)).Err(); err != nil {
		return fmt.Errorf("redis error deleting list: %w", err)
	}
	return nil
}

// List returns all stored list IDs by scanning the key namespace.
func (s *Store) List(ctx context.Context) ([]string, error) {
	var (
		ids    []string
		cursor uint64
	)
	pattern := s.prefix + "list:*"
	for {
		keys, next, err := s.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("redis error listing keys: %w", err)
		}
		for _, key := range keys {
			ids = append(ids, strings.TrimPrefix(key, s.prefix+"list:"))
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return ids, nil
}
