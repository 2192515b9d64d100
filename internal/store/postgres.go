package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/c7harry/bayform/internal/types"
)

// PostgresStore persists documents as JSONB rows in PostgreSQL. Expected
// schema:
//
//	CREATE TABLE resumes (
//	    id         UUID PRIMARY KEY,
//	    name       TEXT NOT NULL DEFAULT '',
//	    doc        JSONB NOT NULL,
//	    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and verifies it.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// List returns all stored documents, oldest first.
func (s *PostgresStore) List(ctx context.Context) ([]types.ResumeDocument, error) {
	rows, err := s.pool.Query(ctx, `SELECT doc FROM resumes ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var docs []types.ResumeDocument
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		var doc types.ResumeDocument
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume: %w", err)
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// Get returns the document with the given ID, or ErrNotFound.
func (s *PostgresStore) Get(ctx context.Context, id uuid.UUID) (*types.ResumeDocument, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT doc FROM resumes WHERE id = $1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resume %s: %w", id, err)
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume %s: %w", id, err)
	}
	return &doc, nil
}

// Put inserts or replaces a document by ID.
func (s *PostgresStore) Put(ctx context.Context, doc types.ResumeDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal resume: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO resumes (id, name, doc)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET name = $2, doc = $3, updated_at = NOW()`,
		doc.ID, doc.Name, raw,
	)
	if err != nil {
		return fmt.Errorf("failed to save resume %s: %w", doc.ID, err)
	}
	return nil
}

// Delete removes a document by ID; deleting a missing document returns
// ErrNotFound.
func (s *PostgresStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete resume %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}

// Ensure PostgresStore implements Repository.
var _ Repository = (*PostgresStore)(nil)
