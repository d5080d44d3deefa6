package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/techstore/storefront-api/internal/api/metrics"
)

// StatsCache is a Redis-backed short-TTL cache for dashboard aggregations.
// Redis failures are logged and treated as misses so a cache outage never
// takes the dashboard down.
type StatsCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewStatsCache(client *redis.Client, log zerolog.Logger) *StatsCache {
	return &StatsCache{client: client, log: log}
}

func (c *StatsCache) Get(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn().Err(err).Str("key", key).Msg("stats cache read failed")
		}
		metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("stats cache entry corrupt")
		metrics.StatsCacheTotal.WithLabelValues("miss").Inc()
		return false
	}
	metrics.StatsCacheTotal.WithLabelValues("hit").Inc()
	return true
}

func (c *StatsCache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("stats cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("stats cache write failed")
	}
}
