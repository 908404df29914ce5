package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/chatrelay/media-gateway-go/internal/port"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetStats(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, statsKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (c *Cache) GetEtagStats(ctx context.Context, key string) (string, error) {
	val, err := c.client.Get(ctx, etagKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil // cache miss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (c *Cache) SetStats(ctx context.Context, key string, data []byte, validUntil time.Time) {
	if err := c.client.Set(ctx, statsKey(key), data, time.Until(validUntil)).Err(); err != nil {
		log.Printf("failed caching stats payload for %q: %v", key, err)
	}
}

func (c *Cache) SetEtagStats(ctx context.Context, key string, etag string, validUntil time.Time) {
	if err := c.client.Set(ctx, etagKey(key), etag, time.Until(validUntil)).Err(); err != nil {
		log.Printf("failed caching stats etag for %q: %v", key, err)
	}
}

func statsKey(key string) string {
	return "stats:" + key
}

func etagKey(key string) string {
	return "stats_etag:" + key
}
