package redissvc

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/warehouse-kit/inventory-api/internal/models"
)

// ReportCache caches rendered report payloads in redis. A nil *ReportCache
// is a disabled cache: every method is a no-op, so callers don't have to
// branch on whether redis is configured.
type ReportCache struct {
	rdb *redis.Client
	ctx context.Context
	ttl time.Duration
}

func NewReportCache(rdb *redis.Client, ctx context.Context, ttl time.Duration) *ReportCache {
	return &ReportCache{rdb: rdb, ctx: ctx, ttl: ttl}
}

// GetItems returns the cached item list for key, or false on a miss. Cache
// errors count as misses.
func (c *ReportCache) GetItems(key string) ([]models.Item, bool) {
	if c == nil {
		return nil, false
	}
	payload, err := c.rdb.Get(c.ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var items []models.Item
	if err := json.Unmarshal(payload, &items); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("discarding unreadable cache entry")
		c.rdb.Del(c.ctx, key)
		return nil, false
	}
	return items, true
}

// SetItems stores the item list under key with the configured TTL.
func (c *ReportCache) SetItems(key string, items []models.Item) {
	if c == nil {
		return
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.rdb.Set(c.ctx, key, payload, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("could not write cache entry")
	}
}

// Invalidate drops the cached payload for key.
func (c *ReportCache) Invalidate(key string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(c.ctx, key).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("could not invalidate cache entry")
	}
}
