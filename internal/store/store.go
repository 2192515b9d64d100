// Package store provides persistence for resume documents behind a small
// repository interface. The rendering engine never depends on this package;
// stores are injected at the CLI and server boundaries.
package store

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/c7harry/bayform/internal/types"
)

// StorageKey is the fixed key the document array is stored under.
const StorageKey = "bayform-resumes"

// ErrNotFound is returned when a requested document does not exist.
var ErrNotFound = errors.New("resume not found")

// Repository is the injected persistence collaborator. Implementations must
// treat documents as opaque values; they never interpret resume content.
type Repository interface {
	List(ctx context.Context) ([]types.ResumeDocument, error)
	Get(ctx context.Context, id uuid.UUID) (*types.ResumeDocument, error)
	Put(ctx context.Context, doc types.ResumeDocument) error
	Delete(ctx context.Context, id uuid.UUID) error
	Close() error
}
