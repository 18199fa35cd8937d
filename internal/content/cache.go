package content

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKey = "portfolio:content"
	cacheTTL = 5 * time.Minute
)

// Cache is a read-through Redis cache for the latest aggregate. All cache
// failures are logged and treated as misses; Postgres stays authoritative.
type Cache struct {
	client *redis.Client
}

// NewCache accepts a nil client, in which case every operation is a no-op.
func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context) (PortfolioData, bool) {
	if c == nil || c.client == nil {
		return PortfolioData{}, false
	}

	raw, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[warn] operation=content_cache_get error=%v", err)
		}
		return PortfolioData{}, false
	}

	var data PortfolioData
	if err := json.Unmarshal(raw, &data); err != nil {
		log.Printf("[warn] operation=content_cache_decode error=%v", err)
		return PortfolioData{}, false
	}
	return data, true
}

func (c *Cache) Set(ctx context.Context, data PortfolioData) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey, raw, cacheTTL).Err(); err != nil {
		log.Printf("[warn] operation=content_cache_set error=%v", err)
	}
}

// Invalidate drops the cached aggregate; called after every successful save.
func (c *Cache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, cacheKey).Err(); err != nil {
		log.Printf("[warn] operation=content_cache_invalidate error=%v", err)
	}
}
