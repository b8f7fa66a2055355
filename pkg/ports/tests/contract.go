// Package tests provides reusable contract suites that verify adapter
// compliance with the ports interfaces.
package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

// RunOrderStoreContract verifies that a store behaves as every
// ports.OrderStore consumer expects. Adapters call this from their own
// test files with a freshly initialized store.
func RunOrderStoreContract(t *testing.T, store ports.OrderStore) {
	t.Helper()
	ctx := context.Background()

	items := []domain.Item{
		{ID: "hero", Order: 0, Payload: map[string]any{"title": "Hero section"}},
		{ID: "about", Order: 1},
		{ID: "services", Order: 2},
	}

	t.Run("Load_NotFound", func(t *testing.T) {
		_, err := store.Load(ctx, "missing")
		if !errors.Is(err, domain.ErrListNotFound) {
			t.Fatalf("expected ErrListNotFound, got %v", err)
		}
	})

	t.Run("Save_Load_RoundTrip", func(t *testing.T) {
		if err := store.Save(ctx, "home", items); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		got, err := store.Load(ctx, "home")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if len(got) != len(items) {
			t.Fatalf("expected %d items, got %d", len(items), len(got))
		}
		for n, it := range got {
			if it.Order != n {
				t.Errorf("item %q at position %d has order %d", it.ID, n, it.Order)
			}
		}
		if got[0].Payload["title"] != "Hero section" {
			t.Errorf("payload not preserved: %v", got[0].Payload)
		}
	})

	t.Run("Load_SortsByOrder", func(t *testing.T) {
		shuffled := []domain.Item{
			{ID: "c", Order: 2},
			{ID: "a", Order: 0},
			{ID: "b", Order: 1},
		}
		if err := store.Save(ctx, "shuffled", shuffled); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		got, err := store.Load(ctx, "shuffled")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		want := []string{"a", "b", "c"}
		for n := range want {
			if got[n].ID != want[n] {
				t.Errorf("position %d: got %q, want %q", n, got[n].ID, want[n])
			}
		}
	})

	t.Run("Save_Isolation", func(t *testing.T) {
		src := []domain.Item{{ID: "x", Order: 0, Payload: map[string]any{"k": "v"}}}
		if err := store.Save(ctx, "iso", src); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		src[0].Payload["k"] = "mutated"
		got, err := store.Load(ctx, "iso")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if got[0].Payload["k"] != "v" {
			t.Error("store did not isolate saved items from caller mutation")
		}
	})

	t.Run("List", func(t *testing.T) {
		ids, err := store.List(ctx)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		lookup := make(map[string]bool, len(ids))
		for _, id := range ids {
			lookup[id] = true
		}
		for _, want := range []string{"home", "shuffled", "iso"} {
			if !lookup[want] {
				t.Errorf("list %q missing from List() result %v", want, ids)
			}
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := store.Delete(ctx, "home"); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		_, err := store.Load(ctx, "home")
		if !errors.Is(err, domain.ErrListNotFound) {
			t.Fatalf("expected ErrListNotFound after delete, got %v", err)
		}
	})
}
