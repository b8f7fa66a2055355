package domain

import (
	"errors"
	"testing"
)

func TestValidateOrder(t *testing.T) {
	cases := []struct {
		name    string
		items   []Item
		wantErr bool
	}{
		{"empty", nil, false},
		{"single", []Item{{ID: "a", Order: 0}}, false},
		{"dense", []Item{{ID: "a", Order: 2}, {ID: "b", Order: 0}, {ID: "c", Order: 1}}, false},
		{"duplicate order", []Item{{ID: "a", Order: 0}, {ID: "b", Order: 0}}, true},
		{"gap", []Item{{ID: "a", Order: 0}, {ID: "b", Order: 2}}, true},
		{"negative", []Item{{ID: "a", Order: -1}}, true},
		{"duplicate id", []Item{{ID: "a", Order: 0}, {ID: "a", Order: 1}}, true},
		{"empty id", []Item{{ID: "", Order: 0}}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateOrder(tc.items)
			if tc.wantErr && err == nil {
				t.Errorf("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tc.wantErr && !errors.Is(err, ErrInvalidOrder) {
				t.Errorf("error %v is not ErrInvalidOrder", err)
			}
		})
	}
}

func TestSortByOrder_TieBreaksOnID(t *testing.T) {
	items := []Item{
		{ID: "c", Order: 1},
		{ID: "b", Order: 1},
		{ID: "a", Order: 0},
	}
	SortByOrder(items)

	got := []string{items[0].ID, items[1].ID, items[2].ID}
	want := []string{"a", "b", "c"}
	for n := range want {
		if got[n] != want[n] {
			t.Fatalf("position %d: got %q, want %q (full: %v)", n, got[n], want[n], got)
		}
	}
}

func TestCloneItems_Isolation(t *testing.T) {
	orig := []Item{{ID: "a", Order: 0, Payload: map[string]any{"title": "Hero"}}}
	clone := CloneItems(orig)

	clone[0].Payload["title"] = "changed"
	if orig[0].Payload["title"] != "Hero" {
		t.Error("mutating the clone leaked into the original payload")
	}
}

func TestIndexOf(t *testing.T) {
	items := []Item{{ID: "a"}, {ID: "b"}}
	if got := IndexOf(items, "b"); got != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", got)
	}
	if got := IndexOf(items, "zz"); got != -1 {
		t.Errorf("IndexOf(zz) = %d, want -1", got)
	}
}
