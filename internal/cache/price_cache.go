package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"fuelmeter/internal/clients"
)

const priceKey = "fuelmeter:prices:national"

// PriceCache keeps the averaged national fuel prices in redis so the
// government dataset is not hit on every trip calculation.
type PriceCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPriceCache returns redis-backed cache.
func NewPriceCache(client *redis.Client, ttl time.Duration) *PriceCache {
	return &PriceCache{client: client, ttl: ttl}
}

// Save caches prices.
func (c *PriceCache) Save(ctx context.Context, prices clients.FuelPrices) error {
	data, err := json.Marshal(prices)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, priceKey, data, c.ttl).Err()
}

// Get returns cached prices, or redis.Nil when absent.
func (c *PriceCache) Get(ctx context.Context) (*clients.FuelPrices, error) {
	result, err := c.client.Get(ctx, priceKey).Result()
	if err != nil {
		return nil, err
	}
	var prices clients.FuelPrices
	if err := json.Unmarshal([]byte(result), &prices); err != nil {
		return nil, err
	}
	return &prices, nil
}
