package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

const (
	statsRedisKey = "jugaad:stats"

	fieldTotal      = "total"
	fieldDegraded   = "degraded"
	prefixCategory  = "category:"
	prefixStore     = "store:"
	backendRedis    = "redis"
	backendInMemory = "memory"
)

// StatsCounter stores named counters.
type StatsCounter interface {
	Incr(ctx context.Context, field string) error
	All(ctx context.Context) (map[string]int64, error)
	Backend() string
}

type redisCounter struct {
	rdb *redis.Client
	key string
}

func NewRedisCounter(rdb *redis.Client) StatsCounter {
	return &redisCounter{rdb: rdb, key: statsRedisKey}
}

func (c *redisCounter) Incr(ctx context.Context, field string) error {
	return c.rdb.HIncrBy(ctx, c.key, field, 1).Err()
}

func (c *redisCounter) All(ctx context.Context) (map[string]int64, error) {
	raw, err := c.rdb.HGetAll(ctx, c.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read stats from redis: %w", err)
	}

	out := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		out[field] = n
	}
	return out, nil
}

func (c *redisCounter) Backend() string {
	return backendRedis
}

type cacheCounter struct {
	cache *cache.Cache
}

func NewCacheCounter() StatsCounter {
	return &cacheCounter{cache: cache.New(cache.NoExpiration, 0)}
}

func (c *cacheCounter) Incr(_ context.Context, field string) error {
	// Add fails when the key exists, which is fine.
	_ = c.cache.Add(field, int64(0), cache.NoExpiration)
	_, err := c.cache.IncrementInt64(field, 1)
	return err
}

func (c *cacheCounter) All(_ context.Context) (map[string]int64, error) {
	items := c.cache.Items()
	out := make(map[string]int64, len(items))
	for field, item := range items {
		if n, ok := item.Object.(int64); ok {
			out[field] = n
		}
	}
	return out, nil
}

func (c *cacheCounter) Backend() string {
	return backendInMemory
}

func splitCounters(all map[string]int64) (categories, stores map[string]int64) {
	categories = make(map[string]int64)
	stores = make(map[string]int64)
	for field, n := range all {
		switch {
		case strings.HasPrefix(field, prefixCategory):
			categories[strings.TrimPrefix(field, prefixCategory)] = n
		case strings.HasPrefix(field, prefixStore):
			stores[strings.TrimPrefix(field, prefixStore)] = n
		}
	}
	return categories, stores
}
