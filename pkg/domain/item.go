package domain

import (
	"fmt"
	"sort"
)

// Item is a single orderable entry in a list.
//
// ID is opaque, unique and stable for the lifetime of the list. Order is
// a non-negative integer; across a settled list the Order values form a
// dense zero-based permutation (0..n-1, no duplicates, no gaps). Payload
// carries arbitrary host data and is passed through untouched.
type Item struct {
	ID      string         `json:"id" yaml:"id" mapstructure:"id"`
	Order   int            `json:"order" yaml:"order" mapstructure:"order"`
	Payload map[string]any `json:"payload,omitempty" yaml:"payload,omitempty" mapstructure:"payload"`
}

// Clone returns a deep copy of the item (the payload map is copied one
// level deep, mirroring how stores isolate saved state).
func (i Item) Clone() Item {
	out := i
	if i.Payload != nil {
		out.Payload = make(map[string]any, len(i.Payload))
		for k, v := range i.Payload {
			out.Payload[k] = v
		}
	}
	return out
}

// CloneItems deep-copies a whole collection.
func CloneItems(items []Item) []Item {
	if items == nil {
		return nil
	}
	out := make([]Item, len(items))
	for n, it := range items {
		out[n] = it.Clone()
	}
	return out
}

// SortByOrder sorts the collection in place by Order ascending.
// Ties on Order (a pre-existing invariant violation from external
// mutation) fall back to ID ascending so resequencing stays
// deterministic.
func SortByOrder(items []Item) {
	sort.SliceStable(items, func(a, b int) bool {
		if items[a].Order != items[b].Order {
			return items[a].Order < items[b].Order
		}
		return items[a].ID < items[b].ID
	})
}

// IndexOf returns the position of id in items, or -1 if absent.
func IndexOf(items []Item, id string) int {
	for n, it := range items {
		if it.ID == id {
			return n
		}
	}
	return -1
}

// ValidateOrder checks the dense-permutation invariant: every Order value
// in 0..n-1 appears exactly once and no ID repeats. It reports the first
// violation found.
func ValidateOrder(items []Item) error {
	seenID := make(map[string]bool, len(items))
	seenOrder := make(map[int]bool, len(items))
	for _, it := range items {
		if it.ID == "" {
			return fmt.Errorf("%w: empty item id", ErrInvalidOrder)
		}
		if seenID[it.ID] {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidOrder, it.ID)
		}
		seenID[it.ID] = true
		if it.Order < 0 || it.Order >= len(items) {
			return fmt.Errorf("%w: item %q has order %d, want 0..%d", ErrInvalidOrder, it.ID, it.Order, len(items)-1)
		}
		if seenOrder[it.Order] {
			return fmt.Errorf("%w: duplicate order %d (item %q)", ErrInvalidOrder, it.Order, it.ID)
		}
		seenOrder[it.Order] = true
	}
	return nil
}
