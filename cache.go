package draft

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Cache is the interface for memoizing parsed diagrams. Callers upstream
// re-render diagrams on every edit tick, so parse results are cached by
// content rather than re-derived. Users can implement this interface with
// their preferred caching solution; MemCache is a ready in-process one.
type Cache interface {
	// Get retrieves a value from the cache.
	// Returns nil, nil if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with an optional TTL.
	// If ttl is 0, the value should not expire.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache.
	Delete(ctx context.Context, key string) error

	// Clear removes all values from the cache.
	Clear(ctx context.Context) error
}

// keySpace is the fixed namespace for cache key digests. Keys must be
// stable across processes so cached diagrams survive a reload.
var keySpace = uuid.MustParse("6f7a1f0e-4b3d-48b7-9a52-2f6d9f3f8f21")

// CacheKey identifies one parsed diagram by project, mode and source text.
type CacheKey struct {
	Project string
	Mode    Mode
	Source  string
}

// String returns a stable digest of the key. Identical inputs always
// produce the identical key.
func (k CacheKey) String() string {
	var b strings.Builder
	b.WriteString(k.Project)
	b.WriteByte(':')
	b.WriteString(k.Mode.String())
	b.WriteByte(':')
	b.WriteString(k.Source)
	return k.Mode.String() + ":" + uuid.NewSHA1(keySpace, []byte(b.String())).String()
}

// EncodeDiagram serializes a DiagramRoot for cache storage.
func EncodeDiagram(d *DiagramRoot) ([]byte, error) {
	if d == nil {
		return nil, ErrNilDiagram
	}
	if !d.Mode.Valid() {
		return nil, NewModeError(d.Mode)
	}
	return msgpack.Marshal(d)
}

// DecodeDiagram deserializes a DiagramRoot previously produced by
// EncodeDiagram.
func DecodeDiagram(b []byte) (*DiagramRoot, error) {
	var d DiagramRoot
	if err := msgpack.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	if !d.Mode.Valid() {
		return nil, NewModeError(d.Mode)
	}
	return &d, nil
}

// MemCache is an in-process Cache backed by a map. It is safe for
// concurrent use.
type MemCache struct {
	mu      sync.RWMutex
	entries map[string]memEntry
}

type memEntry struct {
	value   []byte
	expires time.Time // zero means no expiry
}

// NewMemCache returns an empty in-memory cache.
func NewMemCache() *MemCache {
	return &MemCache{entries: make(map[string]memEntry)}
}

// Get retrieves a value, or nil, nil when absent or expired.
func (c *MemCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !e.expires.IsZero() && time.Now().After(e.expires) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, nil
	}
	return e.value, nil
}

// Set stores a value with an optional TTL.
func (c *MemCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	e := memEntry{value: value}
	if ttl > 0 {
		e.expires = time.Now().Add(ttl)
	}
	c.mu.Lock()
	c.entries[key] = e
	c.mu.Unlock()
	return nil
}

// Delete removes a single value.
func (c *MemCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	return nil
}

// Clear removes all values.
func (c *MemCache) Clear(_ context.Context) error {
	c.mu.Lock()
	c.entries = make(map[string]memEntry)
	c.mu.Unlock()
	return nil
}
