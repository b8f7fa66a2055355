package middleware_test

import (
	"context"
	"testing"

	"github.com/aretw0/espalier/pkg/adapters/memory"
	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/persistence/middleware"
)

func TestPIIMiddleware_Masking(t *testing.T) {
	// Setup
	underlyingStore := memory.NewStore()
	// Mask keys containing "password" or "ssn"
	mw := middleware.NewPIIMiddleware([]string{"password", "ssn"})
	secureStore := mw(underlyingStore)

	ctx := context.Background()
	listID := "pii-list"

	// Populate with mixed data
	items := []domain.Item{{
		ID:    "a",
		Order: 0,
		Payload: map[string]any{
			"username":      "jdoe",
			"user_password": "secret123",
			"details": map[string]any{
				"address":    "123 St",
				"ssn_number": "999-99-9999",
			},
			"safe_data": "public",
		},
	}}

	// 1. Save
	if err := secureStore.Save(ctx, listID, items); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Verify In-Memory Items are NOT MODIFIED (Immutability check)
	if items[0].Payload["user_password"] != "secret123" {
		t.Error("Middleware modified original items in memory!")
	}

	// 2. Load from Underlying Store (Should be masked)
	storedItems, err := underlyingStore.Load(ctx, listID)
	if err != nil {
		t.Fatalf("Underlying load failed: %v", err)
	}

	// Check masking
	payload := storedItems[0].Payload
	if payload["username"] != "jdoe" {
		t.Error("Username shouldn't be masked")
	}
	if payload["user_password"] != "***" {
		t.Errorf("Password should be masked, got: %v", payload["user_password"])
	}

	details := payload["details"].(map[string]any)
	if details["ssn_number"] != "***" {
		t.Errorf("Nested SSN should be masked, got: %v", details["ssn_number"])
	}
}

func TestChain_Order(t *testing.T) {
	underlyingStore := memory.NewStore()
	key := generateKey(t)

	// PII masking runs before encryption, so the sealed payload holds
	// masked values.
	secureStore := middleware.Chain(underlyingStore,
		middleware.NewPIIMiddleware([]string{"token"}),
		middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key}),
	)

	ctx := context.Background()
	items := []domain.Item{{ID: "a", Order: 0, Payload: map[string]any{"token": "tok_live_123", "name": "card"}}}

	if err := secureStore.Save(ctx, "chained", items); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := secureStore.Load(ctx, "chained")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded[0].Payload["token"] != "***" {
		t.Errorf("Expected token masked before sealing, got %v", loaded[0].Payload["token"])
	}
	if loaded[0].Payload["name"] != "card" {
		t.Errorf("Expected name to survive the chain, got %v", loaded[0].Payload["name"])
	}
}
