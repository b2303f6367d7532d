package redisad

import (
	"context"

	"github.com/redis/go-redis/v9"

	"hotel_portal/internal/adapters/observability"
)

// KV is the redis-backed durable mirror for the session store. Values are
// plain strings; the caller decides what is serialized into them.
type KV struct{ c *redis.Client }

func New(addr, pass string, db int) *KV {
	return &KV{c: redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})}
}

func (r *KV) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.c.Get(ctx, key).Result()
	if err == redis.Nil {
		observability.ObserveStore("redis", "miss")
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	observability.ObserveStore("redis", "hit")
	return v, true, nil
}

func (r *KV) Set(ctx context.Context, key, value string) error {
	observability.ObserveStore("redis", "set")
	return r.c.Set(ctx, key, value, 0).Err()
}

func (r *KV) Del(ctx context.Context, key string) error {
	observability.ObserveStore("redis", "del")
	return r.c.Del(ctx, key).Err()
}
