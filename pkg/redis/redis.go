package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultPoolSize = 10

// NewRedisClient создает клиент Redis и проверяет соединение.
// Клиент общий для блокировок, кэша бейджей и очереди вебхуков.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
		PoolSize: defaultPoolSize,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	return rdb, nil
}
