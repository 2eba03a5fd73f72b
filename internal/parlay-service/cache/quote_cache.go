package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

type Cache struct {
	R   *redis.Client
	TTL time.Duration
}

func New(r *redis.Client, ttl time.Duration) *Cache { return &Cache{R: r, TTL: ttl} }

func keyQuote(quoteID string) string { return "quote:" + quoteID }

func (c *Cache) GetQuote(ctx context.Context, quoteID string, dst any) (bool, error) {
	b, err := c.R.Get(ctx, keyQuote(quoteID)).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(b, dst)
}

func (c *Cache) SetQuote(ctx context.Context, quoteID string, v any) error {
	b, _ := json.Marshal(v)
	return c.R.Set(ctx, keyQuote(quoteID), b, c.TTL).Err()
}
