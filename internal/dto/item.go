// Package dto holds the wire-level shapes shared by the HTTP and MCP
// adapters and the decoding rules that turn loosely-typed request maps
// into domain items.
package dto

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/espalier/pkg/domain"
)

// ItemPayload is one incoming item in a list-replace request. Order is
// optional: omitted orders are assigned densely by position, which lets
// clients send items in display order without counting.
type ItemPayload struct {
	ID      string         `json:"id" mapstructure:"id"`
	Order   *int           `json:"order,omitempty" mapstructure:"order"`
	Payload map[string]any `json:"payload,omitempty" mapstructure:"payload"`
}

// DecodeItems converts raw request maps into domain items. IDs must be
// non-empty and unique. The result is densely reindexed by the incoming
// order (explicit Order values win, sorted stably).
func DecodeItems(raw []map[string]any) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(raw))
	seen := make(map[string]bool, len(raw))

	for n, entry := range raw {
		var p ItemPayload
		if err := mapstructure.Decode(entry, &p); err != nil {
			return nil, fmt.Errorf("item %d: %w", n, err)
		}
		if p.ID == "" {
			return nil, fmt.Errorf("item %d: missing id", n)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("item %d: duplicate id %q", n, p.ID)
		}
		seen[p.ID] = true

		order := n
		if p.Order != nil {
			order = *p.Order
		}
		items = append(items, domain.Item{ID: p.ID, Order: order, Payload: p.Payload})
	}

	domain.SortByOrder(items)
	for n := range items {
		items[n].Order = n
	}
	return items, nil
}
