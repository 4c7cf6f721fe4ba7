package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LookupCache keeps resolved plate lookups in redis. Registry data for a
// plate changes rarely, so repeated add-vehicle attempts skip the upstream
// round trips.
type LookupCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLookupCache returns redis-backed cache.
func NewLookupCache(client *redis.Client, ttl time.Duration) *LookupCache {
	return &LookupCache{client: client, ttl: ttl}
}

func (c *LookupCache) key(plate string) string {
	return fmt.Sprintf("fuelmeter:lookup:%s", plate)
}

// Save caches a lookup result.
func (c *LookupCache) Save(ctx context.Context, plate string, result any) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(plate), data, c.ttl).Err()
}

// Get decodes a cached lookup into out, returning redis.Nil when absent.
func (c *LookupCache) Get(ctx context.Context, plate string, out any) error {
	result, err := c.client.Get(ctx, c.key(plate)).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(result), out)
}
