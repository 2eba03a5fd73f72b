package pubsub

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const ChannelQuotesBroadcast = "parlay_quotes_broadcast"

type RedisBroadcaster struct {
	r *redis.Client
}

func NewRedisBroadcaster(r *redis.Client) *RedisBroadcaster {
	return &RedisBroadcaster{r: r}
}

func (b *RedisBroadcaster) Publish(ctx context.Context, channel string, payload []byte) error {
	return b.r.Publish(ctx, channel, payload).Err()
}

// Payload padrão para o WS do parlay-service
type WSUpdate struct {
	QuoteID string      `json:"quoteId"`
	Payload interface{} `json:"payload"`
}
