package dsl

import "github.com/aretw0/espalier/pkg/domain"

// ItemBuilder provides a fluent API for configuring an item.
type ItemBuilder struct {
	item    domain.Item
	builder *Builder
}

// Title sets the item's display title in its payload.
func (n *ItemBuilder) Title(title string) *ItemBuilder {
	return n.With("title", title)
}

// With sets an arbitrary payload field.
func (n *ItemBuilder) With(key string, value any) *ItemBuilder {
	if n.item.Payload == nil {
		n.item.Payload = make(map[string]any)
	}
	n.item.Payload[key] = value
	return n
}

// Add continues the chain on the parent builder, appending the next item.
func (n *ItemBuilder) Add(id string) *ItemBuilder {
	return n.builder.Add(id)
}
