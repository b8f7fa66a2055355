// Package file provides a filesystem OrderStore. Each list is one YAML
// document, written atomically, which keeps lists hand-editable and
// diff-friendly.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/espalier/pkg/domain"
)

// Store implements ports.OrderStore using the local filesystem.
// It stores lists as YAML files in a configured directory.
type Store struct {
	BasePath string
}

// listDocument is the on-disk shape of a list.
type listDocument struct {
	List  string        `yaml:"list"`
	Items []domain.Item `yaml:"items"`
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".espalier/lists".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".espalier", "lists")
	}
	return &Store{BasePath: basePath}
}

// Save persists the list to a YAML file atomically: write to a temp file
// in the same directory, fsync, then rename over the destination.
func (s *Store) Save(ctx context.Context, listID string, items []domain.Item) error {
	if listID == "" {
		return fmt.Errorf("listID cannot be empty")
	}

	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure list directory: %w", err)
	}

	doc := listDocument{List: listID, Items: domain.CloneItems(items)}
	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to marshal list: %w", err)
	}

	destPath := filepath.Join(s.BasePath, listID+".yaml")

	// Same directory as the destination so the rename stays on one
	// filesystem (required for atomicity).
	tmpFile, err := os.CreateTemp(s.BasePath, "tmp-"+listID+"-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op if already renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Close before rename (Windows cannot rename an open file).
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to move list into place: %w", err)
	}
	return nil
}

// Load retrieves the list, sorted by order.
func (s *Store) Load(ctx context.Context, listID string) ([]domain.Item, error) {
	data, err := os.ReadFile(filepath.Join(s.BasePath, listID+".yaml"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrListNotFound
		}
		return nil, fmt.Errorf("failed to read list file: %w", err)
	}

	var doc listDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse list file: %w", err)
	}

	items := doc.Items
	domain.SortByOrder(items)
	return items, nil
}

// Delete removes the list file. Deleting a list that does not exist is
// not an error.
func (s *Store) Delete(ctx context.Context, listID string) error {
	err := os.Remove(filepath.Join(s.BasePath, listID+".yaml"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete list file: %w", err)
	}
	return nil
}

// List returns the IDs of all stored lists.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read list directory: %w", err)
	}

	var ids []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") || strings.HasPrefix(name, "tmp-") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".yaml"))
	}
	return ids, nil
}
