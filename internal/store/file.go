package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/c7harry/bayform/internal/types"
)

// FileStore persists the document array as a single JSON file keyed under
// StorageKey, mirroring the browser-storage layout the documents originate
// from. It is the default store for CLI usage.
type FileStore struct {
	path string
	now  func() time.Time

	mu sync.Mutex
}

// fileLayout is the on-disk shape: the document array under the fixed key.
type fileLayout map[string][]types.ResumeDocument

// NewFileStore creates a file-backed store at path. The parent directory is
// created if needed. now is used to stamp created/updated times; nil uses
// the wall clock.
func NewFileStore(path string, now func() time.Time) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	if now == nil {
		now = time.Now
	}
	return &FileStore{path: path, now: now}, nil
}

// List returns all stored documents in insertion order.
func (s *FileStore) List(_ context.Context) ([]types.ResumeDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get returns the document with the given ID, or ErrNotFound.
func (s *FileStore) Get(_ context.Context, id uuid.UUID) (*types.ResumeDocument, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range docs {
		if docs[i].ID == id {
			return &docs[i], nil
		}
	}
	return nil, ErrNotFound
}

// Put inserts or replaces a document by ID, stamping UpdatedAt (and
// CreatedAt on first insert).
func (s *FileStore) Put(_ context.Context, doc types.ResumeDocument) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load()
	if err != nil {
		return err
	}

	doc.UpdatedAt = s.now()
	replaced := false
	for i := range docs {
		if docs[i].ID == doc.ID {
			doc.CreatedAt = docs[i].CreatedAt
			docs[i] = doc
			replaced = true
			break
		}
	}
	if !replaced {
		doc.CreatedAt = doc.UpdatedAt
		docs = append(docs, doc)
	}

	return s.save(docs)
}

// Delete removes a document by ID; deleting a missing document returns
// ErrNotFound.
func (s *FileStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	docs, err := s.load()
	if err != nil {
		return err
	}
	for i := range docs {
		if docs[i].ID == id {
			return s.save(append(docs[:i], docs[i+1:]...))
		}
	}
	return ErrNotFound
}

// Close is a no-op for file stores.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) load() ([]types.ResumeDocument, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file %s: %w", s.path, err)
	}

	var layout fileLayout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse store file %s: %w", s.path, err)
	}
	return layout[StorageKey], nil
}

func (s *FileStore) save(docs []types.ResumeDocument) error {
	data, err := json.MarshalIndent(fileLayout{StorageKey: docs}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write store file %s: %w", s.path, err)
	}
	return nil
}

// Ensure FileStore implements Repository.
var _ Repository = (*FileStore)(nil)
