package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aretw0/espalier/pkg/adapters/file"
	httpAdapter "github.com/aretw0/espalier/pkg/adapters/http"
	"github.com/aretw0/espalier/pkg/dsl"
)

// TestHTTPAPIAgainstFileStore exercises the serve stack end to end: a
// file-backed store behind the validated HTTP handler, driven the way a
// browser sink would drive it.
func TestHTTPAPIAgainstFileStore(t *testing.T) {
	store := file.New(t.TempDir())
	handler, err := httpAdapter.NewHandler(store)
	if err != nil {
		t.Fatalf("NewHandler failed: %v", err)
	}
	srv := httptest.NewServer(handler)
	defer srv.Close()

	b := dsl.NewList("board")
	b.Add("a").Title("Alpha").
		Add("b").Title("Beta").
		Add("c").Title("Gamma")
	if err := b.Seed(context.Background(), store); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	// Move a onto c through the API.
	resp := postJSON(t, srv.URL+"/lists/board/move", map[string]any{
		"dragged_id": "a",
		"target_id":  "c",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("move returned %d", resp.StatusCode)
	}
	var moveBody struct {
		Moved *bool `json:"moved"`
		Items []struct {
			ID    string `json:"id"`
			Order int    `json:"order"`
		} `json:"items"`
	}
	decode(t, resp, &moveBody)
	if moveBody.Moved == nil || !*moveBody.Moved {
		t.Fatal("expected moved=true")
	}
	want := []string{"b", "c", "a"}
	for n, it := range moveBody.Items {
		if it.ID != want[n] || it.Order != n {
			t.Errorf("item %d: got %s/%d, want %s/%d", n, it.ID, it.Order, want[n], n)
		}
	}

	// The move was persisted, not just computed.
	items, err := store.Load(context.Background(), "board")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if items[0].ID != "b" || items[2].ID != "a" {
		t.Errorf("Persisted order wrong: %v", ids(items))
	}

	// Schema violations are rejected before the handler runs.
	resp = postJSON(t, srv.URL+"/lists/board/move", map[string]any{
		"dragged_id": "a",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for missing target_id, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Unknown lists are a 404.
	resp = postJSON(t, srv.URL+"/lists/ghost/move", map[string]any{
		"dragged_id": "a",
		"target_id":  "b",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404 for unknown list, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s failed: %v", url, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
}
