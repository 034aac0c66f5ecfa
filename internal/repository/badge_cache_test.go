package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBadgeCache(t *testing.T) (*miniredis.Miniredis, *BadgeCache) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewBadgeCache(client).(*BadgeCache)
}

func TestBadgeCache_MissReturnsNil(t *testing.T) {
	_, cache := newTestBadgeCache(t)

	snapshot, err := cache.Get(context.Background(), models.PDMAID(1))
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestBadgeCache_SetThenGet(t *testing.T) {
	mr, cache := newTestBadgeCache(t)
	ctx := context.Background()

	stored := &models.BadgeSnapshot{
		AuthorityID:        models.PDMAID(1),
		PendingAllocations: 3,
		ActiveSOS:          12,
		Stock:              map[models.ResourceType]int64{models.ResourceFood: 250},
		ComputedAt:         time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, cache.Set(ctx, stored, 30*time.Second))
	assert.True(t, mr.Exists("badges:pdma:1"))
	assert.Equal(t, 30*time.Second, mr.TTL("badges:pdma:1"))

	got, err := cache.Get(ctx, models.PDMAID(1))
	require.NoError(t, err)
	assert.Equal(t, stored, got)

	// по истечении TTL снимок пропадает
	mr.FastForward(31 * time.Second)
	got, err = cache.Get(ctx, models.PDMAID(1))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBadgeCache_CorruptedValue(t *testing.T) {
	mr, cache := newTestBadgeCache(t)
	require.NoError(t, mr.Set("badges:ndma", "{not json"))

	_, err := cache.Get(context.Background(), models.NDMAID)
	assert.Error(t, err)
}
