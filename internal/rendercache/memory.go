package rendercache

import (
	"context"
	"sync"
)

// MemoryCache keeps artifacts in process memory. It is the default
// backend when no Redis address is configured.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]byte)}
}

func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	artifact, ok := c.entries[key]
	if !ok {
		return nil, ErrMiss
	}
	out := make([]byte, len(artifact))
	copy(out, artifact)
	return out, nil
}

func (c *MemoryCache) Set(_ context.Context, key string, artifact []byte) error {
	stored := make([]byte, len(artifact))
	copy(stored, artifact)
	c.mu.Lock()
	c.entries[key] = stored
	c.mu.Unlock()
	return nil
}

func (c *MemoryCache) Close() error { return nil }

var _ Cache = (*MemoryCache)(nil)
