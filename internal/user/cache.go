package user

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/InventoryManager_Go/internal/domain"
	"github.com/osse101/InventoryManager_Go/internal/metrics"
)

// cachedUserEntry wraps a lookup result with version metadata. A nil User
// records a lookup that matched nobody.
type cachedUserEntry struct {
	Version string
	User    *domain.User
}

// userCache is an in-memory LRU for exact and best-match lookups.
//
// Every write bumps generation and purges. A lookup only stores its result
// if no write happened since it read generation. mu covers the compare and
// the insert together, so a result computed before a write can never land
// in the cache after that write's purge.
type userCache struct {
	lru *expirable.LRU[string, *cachedUserEntry]

	mu         sync.Mutex
	generation uint64
}

// newUserCache returns nil when size is not positive; a nil cache is a no-op.
func newUserCache(size int, ttl time.Duration) *userCache {
	if size <= 0 {
		return nil
	}
	return &userCache{
		lru: expirable.NewLRU[string, *cachedUserEntry](size, nil, ttl),
	}
}

// Generation returns the write counter to pass back to Set.
func (c *userCache) Generation() uint64 {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// Get returns (user, true) on a hit; user may be nil for a cached no-match.
func (c *userCache) Get(key string) (*domain.User, bool) {
	if c == nil {
		return nil, false
	}
	entry, found := c.lru.Get(key)
	if !found || entry.Version != CacheSchemaVersion {
		if found {
			c.lru.Remove(key)
		}
		metrics.UserCacheLookups.WithLabelValues(metrics.CacheResultMiss).Inc()
		return nil, false
	}
	metrics.UserCacheLookups.WithLabelValues(metrics.CacheResultHit).Inc()
	return copyUser(entry.User), true
}

// Set stores user under key unless a write happened after gen was read.
func (c *userCache) Set(key string, gen uint64, user *domain.User) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generation != gen {
		return
	}
	c.lru.Add(key, &cachedUserEntry{
		Version: CacheSchemaVersion,
		User:    copyUser(user),
	})
}

// Invalidate drops every entry; name matches can change on any write.
func (c *userCache) Invalidate() {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generation++
	c.lru.Purge()
}

// Len reports the number of live entries.
func (c *userCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}

func copyUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}
