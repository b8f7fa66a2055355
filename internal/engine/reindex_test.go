package engine

import (
	"testing"

	"github.com/aretw0/espalier/pkg/domain"
)

func four() []domain.Item {
	return []domain.Item{
		{ID: "A", Order: 0},
		{ID: "B", Order: 1},
		{ID: "C", Order: 2},
		{ID: "D", Order: 3},
	}
}

func ids(items []domain.Item) []string {
	out := make([]string, len(items))
	for n, it := range items {
		out[n] = it.ID
	}
	return out
}

func assertSequence(t *testing.T, items []domain.Item, want ...string) {
	t.Helper()
	got := ids(items)
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for n := range want {
		if got[n] != want[n] {
			t.Fatalf("position %d: got %q, want %q (full: %v)", n, got[n], want[n], got)
		}
	}
	for n, it := range items {
		if it.Order != n {
			t.Errorf("item %q has order %d at position %d", it.ID, it.Order, n)
		}
	}
}

func TestResolve_MoveForward(t *testing.T) {
	// Dragging A onto C: remove A, insert at C's slot.
	result, moved := Resolve(four(), "A", "C")
	if !moved {
		t.Fatal("expected a move")
	}
	assertSequence(t, result, "B", "C", "A", "D")
}

func TestResolve_MoveBackward(t *testing.T) {
	result, moved := Resolve(four(), "D", "A")
	if !moved {
		t.Fatal("expected a move")
	}
	assertSequence(t, result, "D", "A", "B", "C")
}

func TestResolve_SelfDrop(t *testing.T) {
	result, moved := Resolve(four(), "B", "B")
	if moved || result != nil {
		t.Errorf("self-drop must be a no-op, got moved=%v result=%v", moved, result)
	}
}

func TestResolve_UnknownIDs(t *testing.T) {
	cases := []struct {
		name            string
		dragged, target string
	}{
		{"unknown dragged", "zz", "A"},
		{"unknown target", "A", "zz"},
		{"empty dragged", "", "A"},
		{"empty target", "A", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, moved := Resolve(four(), tc.dragged, tc.target); moved {
				t.Error("expected no move")
			}
		})
	}
}

func TestResolve_InputUntouched(t *testing.T) {
	input := four()
	_, moved := Resolve(input, "A", "D")
	if !moved {
		t.Fatal("expected a move")
	}
	assertSequence(t, input, "A", "B", "C", "D")
}

func TestResolve_PreservesPayload(t *testing.T) {
	items := []domain.Item{
		{ID: "a", Order: 0, Payload: map[string]any{"icon": "wrench"}},
		{ID: "b", Order: 1, Payload: map[string]any{"icon": "globe"}},
	}
	result, moved := Resolve(items, "b", "a")
	if !moved {
		t.Fatal("expected a move")
	}
	if result[0].Payload["icon"] != "globe" || result[1].Payload["icon"] != "wrench" {
		t.Errorf("payloads not carried through: %v", result)
	}
}

func TestResolve_DuplicateOrderTieBreak(t *testing.T) {
	// Pre-existing invariant violation from external mutation: two items
	// share order 1. Sorting must fall back to id so the result is
	// deterministic: sorted sequence is [a, b, c].
	items := []domain.Item{
		{ID: "c", Order: 1},
		{ID: "b", Order: 1},
		{ID: "a", Order: 0},
	}
	result, moved := Resolve(items, "a", "c")
	if !moved {
		t.Fatal("expected a move")
	}
	assertSequence(t, result, "b", "c", "a")
}

func TestResolve_AlwaysDense(t *testing.T) {
	// Gappy external order values get compacted on the first drop.
	items := []domain.Item{
		{ID: "a", Order: 10},
		{ID: "b", Order: 20},
		{ID: "c", Order: 30},
	}
	result, moved := Resolve(items, "c", "a")
	if !moved {
		t.Fatal("expected a move")
	}
	assertSequence(t, result, "c", "a", "b")
	if err := domain.ValidateOrder(result); err != nil {
		t.Errorf("result violates dense permutation: %v", err)
	}
}

func TestResolve_PermutationInvariant_Randomized(t *testing.T) {
	items := []domain.Item{
		{ID: "a", Order: 0}, {ID: "b", Order: 1}, {ID: "c", Order: 2},
		{ID: "d", Order: 3}, {ID: "e", Order: 4},
	}
	all := []string{"a", "b", "c", "d", "e"}

	// Exhaustive pairs beat randomness at this size.
	for _, dragged := range all {
		for _, target := range all {
			result, moved := Resolve(items, dragged, target)
			if dragged == target {
				if moved {
					t.Fatalf("self-drop %q reported moved", dragged)
				}
				continue
			}
			if !moved {
				t.Fatalf("drag %q onto %q did not move", dragged, target)
			}
			if err := domain.ValidateOrder(result); err != nil {
				t.Fatalf("drag %q onto %q broke invariant: %v", dragged, target, err)
			}
			seen := make(map[string]bool)
			for _, it := range result {
				seen[it.ID] = true
			}
			for _, id := range all {
				if !seen[id] {
					t.Fatalf("drag %q onto %q lost item %q", dragged, target, id)
				}
			}
			// Chain: feed the result back in for a second drag.
			again, moved2 := Resolve(result, target, dragged)
			if moved2 {
				if err := domain.ValidateOrder(again); err != nil {
					t.Fatalf("chained drag broke invariant: %v", err)
				}
			}
		}
	}
}
