package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCheckoutGuard claims keys with SETNX.
type RedisCheckoutGuard struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCheckoutGuard(client *redis.Client, ttl time.Duration) *RedisCheckoutGuard {
	return &RedisCheckoutGuard{client: client, ttl: ttl}
}

func (g *RedisCheckoutGuard) Claim(ctx context.Context, key string) (bool, error) {
	return g.client.SetNX(ctx, key, time.Now().Unix(), g.ttl).Result()
}

func (g *RedisCheckoutGuard) Release(ctx context.Context, key string) error {
	return g.client.Del(ctx, key).Err()
}
