package middleware

import (
	"context"
	"regexp"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

type piiMiddleware struct {
	next     ports.OrderStore
	patterns []*regexp.Regexp
}

// NewPIIMiddleware creates a middleware that masks payload values whose
// keys match the patterns before they reach the underlying store.
func NewPIIMiddleware(patternStrings []string) Middleware {
	patterns := make([]*regexp.Regexp, len(patternStrings))
	for i, p := range patternStrings {
		patterns[i] = regexp.MustCompile(p)
	}
	return func(next ports.OrderStore) ports.OrderStore {
		return &piiMiddleware{next: next, patterns: patterns}
	}
}

func (m *piiMiddleware) Save(ctx context.Context, listID string, items []domain.Item) error {
	// Deep clone so masking never mutates the items the engine holds.
	cloned := make([]domain.Item, len(items))
	for n, it := range items {
		cloned[n] = it
		cloned[n].Payload = deepCopyMap(it.Payload)
		maskMap(cloned[n].Payload, m.patterns)
	}
	return m.next.Save(ctx, listID, cloned)
}

func (m *piiMiddleware) Load(ctx context.Context, listID string) ([]domain.Item, error) {
	return m.next.Load(ctx, listID)
}

func (m *piiMiddleware) Delete(ctx context.Context, listID string) error {
	return m.next.Delete(ctx, listID)
}

func (m *piiMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// Helpers

func deepCopyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		// Handle nested maps
		if subMap, ok := v.(map[string]any); ok {
			out[k] = deepCopyMap(subMap)
		} else {
			out[k] = v // shallow copy of value
		}
	}
	return out
}

func maskMap(m map[string]any, patterns []*regexp.Regexp) {
	for k, v := range m {
		// Check key against patterns
		for _, p := range patterns {
			if p.MatchString(k) {
				m[k] = "***"
				break
			}
		}

		// Recurse if map
		if subMap, ok := v.(map[string]any); ok {
			maskMap(subMap, patterns)
		}
	}
}
