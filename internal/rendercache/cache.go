// Package rendercache caches rendered artifacts keyed by the resume
// content and the template that produced them. Because rendering is
// deterministic, a cache hit is always byte-identical to a fresh render.
package rendercache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/c7harry/bayform/internal/types"
)

// ErrMiss is returned by Get when no entry exists for the key.
var ErrMiss = errors.New("rendercache: miss")

// DefaultTTL bounds how long cached artifacts live in backends that
// support expiry.
const DefaultTTL = 24 * time.Hour

// Cache stores rendered artifacts by content hash.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, artifact []byte) error
	Close() error
}

// Key derives the cache key for a document rendered with the given
// format and template. The document is canonicalized through JSON so
// that two structurally equal documents hash identically.
func Key(doc types.ResumeDocument, format, template string) (string, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("canonicalize document: %w", err)
	}
	h := sha256.New()
	h.Write(payload)
	h.Write([]byte{0})
	h.Write([]byte(format))
	h.Write([]byte{0})
	h.Write([]byte(template))
	return hex.EncodeToString(h.Sum(nil)), nil
}
