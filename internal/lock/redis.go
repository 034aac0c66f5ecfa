package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/relief_coordination_system/internal/models"
)

const (
	keyPrefix     = "lock:"
	retryInterval = 25 * time.Millisecond
)

// Удаляем ключ только если он всё ещё принадлежит нам
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker - распределённая блокировка для нескольких инстансов сервиса
type RedisLocker struct {
	client *redis.Client
	wait   time.Duration
	ttl    time.Duration
}

// NewRedisLocker creates a locker. ttl bounds how long a crashed holder blocks the key.
func NewRedisLocker(client *redis.Client, wait, ttl time.Duration) *RedisLocker {
	return &RedisLocker{client: client, wait: wait, ttl: ttl}
}

// Lock acquires key with SET NX PX, retrying until the wait budget is spent.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := keyPrefix + key
	owner := uuid.NewString()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.client.SetNX(ctx, redisKey, owner, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("lock %s busy: %w", key, models.ErrConflict)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	return func() {
		// отдельный контекст: запрос мог быть уже отменён
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		// при ошибке ключ всё равно истечёт по ttl
		_ = releaseScript.Run(releaseCtx, l.client, []string{redisKey}, owner).Err()
	}, nil
}
