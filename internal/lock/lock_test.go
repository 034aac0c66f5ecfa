package lock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

func newRedisLocker(t *testing.T, wait time.Duration) *RedisLocker {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisLocker(client, wait, 5*time.Second)
}

func lockers(t *testing.T, wait time.Duration) map[string]locker {
	return map[string]locker{
		"local": NewLocalLocker(wait),
		"redis": newRedisLocker(t, wait),
	}
}

func TestLock_BusyKeyReturnsConflict(t *testing.T) {
	for name, l := range lockers(t, 50*time.Millisecond) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			unlock, err := l.Lock(ctx, "allocation:1")
			require.NoError(t, err)

			_, err = l.Lock(ctx, "allocation:1")
			assert.ErrorIs(t, err, models.ErrConflict)

			// другой ключ не блокируется
			unlockOther, err := l.Lock(ctx, "allocation:2")
			require.NoError(t, err)
			unlockOther()

			unlock()
			unlockAgain, err := l.Lock(ctx, "allocation:1")
			require.NoError(t, err)
			unlockAgain()
		})
	}
}

func TestLock_MutualExclusion(t *testing.T) {
	for name, l := range lockers(t, 5*time.Second) {
		t.Run(name, func(t *testing.T) {
			var inside, maxInside int32
			var wg sync.WaitGroup
			for i := 0; i < 8; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					unlock, err := l.Lock(context.Background(), "sos:42")
					if !assert.NoError(t, err) {
						return
					}
					n := atomic.AddInt32(&inside, 1)
					for {
						m := atomic.LoadInt32(&maxInside)
						if n <= m || atomic.CompareAndSwapInt32(&maxInside, m, n) {
							break
						}
					}
					time.Sleep(2 * time.Millisecond)
					atomic.AddInt32(&inside, -1)
					unlock()
				}()
			}
			wg.Wait()
			assert.Equal(t, int32(1), maxInside)
		})
	}
}

func TestLocalLock_ReleaseIsIdempotent(t *testing.T) {
	l := NewLocalLocker(10 * time.Millisecond)
	unlock, err := l.Lock(context.Background(), "mp:1")
	require.NoError(t, err)
	unlock()
	unlock()

	assert.Empty(t, l.slots)
}
