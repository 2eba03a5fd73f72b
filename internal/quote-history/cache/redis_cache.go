package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/radieske/parlay-pricing-poc/pkg/contracts/events"
)

// RedisCache encapsula o cache da cotação corrente no Redis
// Client: cliente Redis
// TTL: tempo de expiração dos registros
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

// NewRedisCache cria uma instância de cache Redis com TTL configurável
func NewRedisCache(c *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: c, TTL: ttl}
}

// key gera a chave Redis da cotação corrente de um quote_id
func key(quoteID string) string { return "quote:current:" + quoteID }

// SetCurrent armazena a cotação corrente no Redis com TTL definido
func (r *RedisCache) SetCurrent(ctx context.Context, e events.ParlayQuoted) error {
	b, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key(e.QuoteID), b, r.TTL).Err()
}
