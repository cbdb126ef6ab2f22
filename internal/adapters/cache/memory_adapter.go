package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/zatekoja/tastebuddies/frontend/internal/domain/providers"
)

// DefaultMemoryEntries bounds the in-memory cache when no size is given
const DefaultMemoryEntries = 10000

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryAdapter implements CacheProvider in process memory. It is used when
// Redis is disabled or unreachable; state does not survive a restart.
// Entries live in a size-bounded LRU whose ttl caps every entry, and
// expired entries are reclaimed in the background.
type MemoryAdapter struct {
	entries *expirable.LRU[string, memoryEntry]
	now     func() time.Time
}

// NewMemoryAdapter creates an empty in-memory cache holding at most size
// entries, none of them longer than ttl
func NewMemoryAdapter(size int, ttl time.Duration) *MemoryAdapter {
	if size <= 0 {
		size = DefaultMemoryEntries
	}
	return &MemoryAdapter{
		entries: expirable.NewLRU[string, memoryEntry](size, nil, ttl),
		now:     time.Now,
	}
}

var _ providers.CacheProvider = (*MemoryAdapter)(nil)

// Get retrieves a value from cache
func (a *MemoryAdapter) Get(_ context.Context, key string) ([]byte, error) {
	entry, ok := a.entries.Get(key)
	if !ok || a.expired(entry) {
		if ok {
			a.entries.Remove(key)
		}
		return nil, fmt.Errorf("%w: %s", providers.ErrCacheMiss, key)
	}
	value := make([]byte, len(entry.value))
	copy(value, entry.value)
	return value, nil
}

// Set stores a value. expirationSeconds shorter than the adapter ttl wins;
// <= 0 keeps it for the adapter ttl.
func (a *MemoryAdapter) Set(_ context.Context, key string, value []byte, expirationSeconds int) error {
	entry := memoryEntry{value: make([]byte, len(value))}
	copy(entry.value, value)
	if expirationSeconds > 0 {
		entry.expiresAt = a.now().Add(time.Duration(expirationSeconds) * time.Second)
	}
	a.entries.Add(key, entry)
	return nil
}

// Delete removes a value from cache
func (a *MemoryAdapter) Delete(_ context.Context, key string) error {
	a.entries.Remove(key)
	return nil
}

func (a *MemoryAdapter) expired(entry memoryEntry) bool {
	return !entry.expiresAt.IsZero() && !a.now().Before(entry.expiresAt)
}

// size reports the entries currently held, expired or not
func (a *MemoryAdapter) size() int {
	return a.entries.Len()
}
