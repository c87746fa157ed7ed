package player

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/shopquest/ShopQuest_Go/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedPlayerEntry wraps a player with version metadata for cache invalidation
type cachedPlayerEntry struct {
	Version  string         `json:"version"`
	Player   *domain.Player `json:"player"`
	CachedAt time.Time      `json:"cached_at"`
}

// playerCache provides an in-memory LRU cache for player lookups by username
// with time-based expiration and version-based invalidation to prevent stale data.
type playerCache struct {
	lru *expirable.LRU[string, *cachedPlayerEntry]
}

func newPlayerCache(size int, ttl time.Duration) *playerCache {
	return &playerCache{
		lru: expirable.NewLRU[string, *cachedPlayerEntry](size, nil, ttl),
	}
}

// Get retrieves a player from the cache.
// Returns (nil, false) if not cached, expired, or the schema version moved on.
func (c *playerCache) Get(username string) (*domain.Player, bool) {
	entry, found := c.lru.Get(username)
	if !found {
		return nil, false
	}

	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(username)
		return nil, false
	}

	return entry.Player, true
}

// Set stores a player in the cache with the current schema version.
func (c *playerCache) Set(username string, player *domain.Player) {
	c.lru.Add(username, &cachedPlayerEntry{
		Version:  CacheSchemaVersion,
		Player:   player,
		CachedAt: time.Now(),
	})
}

// Invalidate removes a player from the cache after a write.
func (c *playerCache) Invalidate(username string) {
	c.lru.Remove(username)
}

// Clear removes all entries from the cache.
func (c *playerCache) Clear() {
	c.lru.Purge()
}
