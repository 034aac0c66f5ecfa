package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBadges_ComputeWithoutCache(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	badges := NewBadgeService(env.allocations, env.sos, env.ledger, env.directory, nil, env.logger, env.cfg)

	env.replenish(t, punjab, models.ResourceFood, 300)
	_, err := env.allocations.Submit(ctx, foodRequest(lahore, punjab, 50))
	require.NoError(t, err)
	_, err = env.sos.Submit(ctx, aliKhan())
	require.NoError(t, err)

	snapshot, err := badges.Badges(ctx, punjab)
	require.NoError(t, err)
	assert.Equal(t, punjab, snapshot.AuthorityID)
	assert.Equal(t, 1, snapshot.PendingAllocations)
	assert.Equal(t, 1, snapshot.ActiveSOS)
	assert.Equal(t, int64(300), snapshot.Stock[models.ResourceFood])
	assert.Equal(t, int64(0), snapshot.Stock[models.ResourceShelter])

	pending, err := badges.PendingAllocationCount(ctx, punjab)
	require.NoError(t, err)
	assert.Equal(t, 1, pending)

	active, err := badges.ActiveSOSCount(ctx, rawalpindi)
	require.NoError(t, err)
	assert.Equal(t, 1, active)

	remaining, err := badges.StockRemaining(ctx, punjab, models.ResourceFood)
	require.NoError(t, err)
	assert.Equal(t, int64(300), remaining)

	_, err = badges.Badges(ctx, "pdma:77")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestBadges_ServedFromCache(t *testing.T) {
	env := newTestEnv(t)
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockBadgeCache(ctrl)
	badges := NewBadgeService(env.allocations, env.sos, env.ledger, env.directory, cache, env.logger, env.cfg)

	cached := &models.BadgeSnapshot{AuthorityID: punjab, PendingAllocations: 7, ComputedAt: time.Now().UTC()}
	cache.EXPECT().Get(gomock.Any(), punjab).Return(cached, nil)

	snapshot, err := badges.Badges(context.Background(), punjab)
	require.NoError(t, err)
	assert.Equal(t, cached, snapshot)
}

func TestBadges_MissStoresSnapshotWithRefreshTTL(t *testing.T) {
	env := newTestEnv(t)
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockBadgeCache(ctrl)
	badges := NewBadgeService(env.allocations, env.sos, env.ledger, env.directory, cache, env.logger, env.cfg)

	cache.EXPECT().Get(gomock.Any(), lahore).Return(nil, nil)
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), 30*time.Second).
		DoAndReturn(func(_ context.Context, s *models.BadgeSnapshot, _ time.Duration) error {
			assert.Equal(t, lahore, s.AuthorityID)
			return nil
		})

	_, err := badges.Badges(context.Background(), lahore)
	require.NoError(t, err)
}

func TestBadges_CacheFailureFallsBackToCompute(t *testing.T) {
	env := newTestEnv(t)
	ctrl := gomock.NewController(t)
	cache := mocks.NewMockBadgeCache(ctrl)
	badges := NewBadgeService(env.allocations, env.sos, env.ledger, env.directory, cache, env.logger, env.cfg)
	env.replenish(t, models.NDMAID, models.ResourceWater, 9000)

	cache.EXPECT().Get(gomock.Any(), models.NDMAID).Return(nil, errors.New("redis: connection refused"))
	cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: connection refused"))

	snapshot, err := badges.Badges(context.Background(), models.NDMAID)
	require.NoError(t, err)
	assert.Equal(t, int64(9000), snapshot.Stock[models.ResourceWater])
}
