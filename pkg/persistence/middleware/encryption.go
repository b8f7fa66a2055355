package middleware

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/ports"
)

const envelopeKey = "__encrypted__"

// EncryptionConfig holds the keys for encryption and decryption.
type EncryptionConfig struct {
	// ActiveKey is the key used for encrypting new data.
	// Must be 32 bytes for AES-256.
	ActiveKey []byte

	// FallbackKeys is a list of old keys to try when decryption fails.
	// This enables zero-downtime key rotation.
	FallbackKeys [][]byte
}

type encryptionMiddleware struct {
	next   ports.OrderStore
	config EncryptionConfig
}

// NewEncryptionMiddleware creates a middleware that encrypts item
// payloads using AES-GCM. IDs and order values are left in the clear;
// only the payload content is opaque at rest.
func NewEncryptionMiddleware(config EncryptionConfig) Middleware {
	if len(config.ActiveKey) != 32 {
		panic("active key must be 32 bytes (AES-256)")
	}
	return func(next ports.OrderStore) ports.OrderStore {
		return &encryptionMiddleware{
			next:   next,
			config: config,
		}
	}
}

func (m *encryptionMiddleware) Save(ctx context.Context, listID string, items []domain.Item) error {
	sealed := make([]domain.Item, len(items))
	for n, it := range items {
		sealed[n] = it
		if it.Payload == nil {
			continue
		}

		plainText, err := json.Marshal(it.Payload)
		if err != nil {
			return fmt.Errorf("failed to marshal payload of %q: %w", it.ID, err)
		}
		ciphertext, err := encrypt(plainText, m.config.ActiveKey)
		if err != nil {
			return fmt.Errorf("failed to encrypt payload of %q: %w", it.ID, err)
		}

		sealed[n].Payload = map[string]any{
			envelopeKey: base64.StdEncoding.EncodeToString(ciphertext),
		}
	}
	return m.next.Save(ctx, listID, sealed)
}

func (m *encryptionMiddleware) Load(ctx context.Context, listID string) ([]domain.Item, error) {
	items, err := m.next.Load(ctx, listID)
	if err != nil {
		return nil, err
	}

	for n, it := range items {
		if it.Payload == nil {
			continue
		}
		encryptedStr, ok := it.Payload[envelopeKey].(string)
		if !ok {
			// Fail secure: a configured encryption layer does not pass
			// plaintext payloads through.
			return nil, fmt.Errorf("item %q is missing its encrypted payload envelope", it.ID)
		}

		ciphertext, err := base64.StdEncoding.DecodeString(encryptedStr)
		if err != nil {
			return nil, fmt.Errorf("failed to decode ciphertext of %q: %w", it.ID, err)
		}

		plainText, err := decryptWithRotation(ciphertext, m.config.ActiveKey, m.config.FallbackKeys)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt payload of %q: %w", it.ID, err)
		}

		var payload map[string]any
		if err := json.Unmarshal(plainText, &payload); err != nil {
			return nil, fmt.Errorf("failed to unmarshal decrypted payload of %q: %w", it.ID, err)
		}
		items[n].Payload = payload
	}
	return items, nil
}

func (m *encryptionMiddleware) Delete(ctx context.Context, listID string) error {
	return m.next.Delete(ctx, listID)
}

func (m *encryptionMiddleware) List(ctx context.Context) ([]string, error) {
	return m.next.List(ctx)
}

// Helpers

func encrypt(plaintext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decryptWithRotation(ciphertext []byte, activeKey []byte, fallbackKeys [][]byte) ([]byte, error) {
	// Try active key first
	if plain, err := decrypt(ciphertext, activeKey); err == nil {
		return plain, nil
	}

	// Try fallbacks in order
	for _, key := range fallbackKeys {
		if plain, err := decrypt(ciphertext, key); err == nil {
			return plain, nil
		}
	}

	return nil, errors.New("decryption failed with all available keys")
}

func decrypt(ciphertext []byte, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce := ciphertext[:gcm.NonceSize()]
	ciphertextBytes := ciphertext[gcm.NonceSize():]

	return gcm.Open(nil, nonce, ciphertextBytes, nil)
}
