package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// DayCache stores serialized day grids.
type DayCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type redisDayCache struct {
	client *redis.Client
}

// NewRedisDayCache backs DayCache with Redis.
func NewRedisDayCache(client *redis.Client) DayCache {
	return &redisDayCache{client: client}
}

func (r *redisDayCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (r *redisDayCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}
