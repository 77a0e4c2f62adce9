package database

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// InitRedis returns nil (and no error) when no address is configured, so
// callers treat Redis as optional.
func InitRedis(ctx context.Context, addr string) (*redis.Client, error) {
	if addr == "" {
		log.Println("⚠️ REDIS_URI not set. Cache, checkout guard and jobs are disabled.")
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr, // เช่น localhost:6379
		Password: "",
		DB:       0,
	})
	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	log.Println("✅ Redis connected successfully")
	return client, nil
}
