package dsl

import (
	"context"
	"testing"

	"github.com/aretw0/espalier/pkg/adapters/memory"
)

func TestBuilder_SimpleList(t *testing.T) {
	b := NewList("backlog")

	b.Add("design").
		Title("Design the trellis").
		With("points", 3)

	b.Add("build").
		Title("Build the frame")

	b.Add("plant").
		Title("Plant the vine")

	items, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("Expected 3 items, got %d", len(items))
	}
	for n, wantID := range []string{"design", "build", "plant"} {
		if items[n].ID != wantID {
			t.Errorf("Expected item %d to be %q, got %q", n, wantID, items[n].ID)
		}
		if items[n].Order != n {
			t.Errorf("Expected item %q order %d, got %d", items[n].ID, n, items[n].Order)
		}
	}
	if items[0].Payload["title"] != "Design the trellis" {
		t.Errorf("Expected title payload, got %v", items[0].Payload["title"])
	}
	if items[0].Payload["points"] != 3 {
		t.Errorf("Expected points payload, got %v", items[0].Payload["points"])
	}
}

func TestBuilder_AddTwiceReturnsSameItem(t *testing.T) {
	b := NewList("dedupe")

	b.Add("a").Title("first")
	b.Add("a").With("extra", true)
	b.Add("b")

	items, err := b.Build()
	if err != nil {
		t.Fatalf("Build() failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].Payload["title"] != "first" || items[0].Payload["extra"] != true {
		t.Errorf("Expected merged payload on re-added item, got %v", items[0].Payload)
	}
}

func TestBuilder_EmptyIDFails(t *testing.T) {
	b := NewList("broken")
	b.Add("")

	if _, err := b.Build(); err == nil {
		t.Fatal("Expected Build() to fail for empty id")
	}
}

func TestBuilder_Seed(t *testing.T) {
	store := memory.NewStore()
	b := NewList("seeded")
	b.Add("a").Title("A").
		Add("b").Title("B")

	if err := b.Seed(context.Background(), store); err != nil {
		t.Fatalf("Seed() failed: %v", err)
	}

	items, err := store.Load(context.Background(), "seeded")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "b" {
		t.Fatalf("Unexpected stored items: %+v", items)
	}
}
