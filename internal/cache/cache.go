// Package cache is an optional read-through cache for fetcher results. A
// cache failure is never a request failure: misses and errors both mean
// "fetch again", and every error is logged and swallowed.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"devhub/portal/internal/config"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const keyPrefix = "portal:content:"

type Cache interface {
	// Get unmarshals the cached value for key into v, reporting whether a
	// usable value was found.
	Get(ctx context.Context, key string, v any) bool
	// Set stores v under key with the configured TTL.
	Set(ctx context.Context, key string, v any)
	// Purge removes every cached content entry. Used by the revalidation
	// trigger.
	Purge(ctx context.Context) error
}

type redisCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisCache(redisClient *redis.Client, cfg config.RedisConfig) Cache {
	ttl := time.Duration(cfg.TTL) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &redisCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func (c *redisCache) Get(ctx context.Context, key string, v any) bool {
	data, err := c.redisClient.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warnf("Cache read failed for %s: %v", key, err)
		}
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Warnf("Cache entry for %s is not decodable, ignoring: %v", key, err)
		return false
	}
	return true
}

func (c *redisCache) Set(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Warnf("Failed to encode cache entry for %s: %v", key, err)
		return
	}

	if err := c.redisClient.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		log.Warnf("Cache write failed for %s: %v", key, err)
	}
}

func (c *redisCache) Purge(ctx context.Context) error {
	iter := c.redisClient.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cache keys: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to purge %d cache keys: %w", len(keys), err)
	}

	log.Infof("Purged %d cached content entries", len(keys))
	return nil
}
