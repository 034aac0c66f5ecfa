package service

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/shenikar/relief_coordination_system/internal/config"
	"github.com/shenikar/relief_coordination_system/internal/hierarchy"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	punjab     = models.PDMAID(1)
	lahore     = models.DistrictAuthorityID(1, 1)
	rawalpindi = models.DistrictAuthorityID(1, 5)
	sindh      = models.PDMAID(2)
)

func TestLedger_ReserveCommitMovesQuantity(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.replenish(t, punjab, models.ResourceFood, 300)

	res, err := env.ledger.Reserve(ctx, punjab, models.ResourceFood, 120, lahore)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationHeld, res.State)

	entry, err := env.ledger.Query(ctx, punjab, models.ResourceFood)
	require.NoError(t, err)
	assert.Equal(t, int64(180), entry.Available)
	assert.Equal(t, int64(120), entry.AllocatedOut)
	assert.Equal(t, int64(300), entry.Physical())

	committed, err := env.ledger.Commit(ctx, res.Token)
	require.NoError(t, err)
	assert.Equal(t, models.ReservationCommitted, committed.State)

	source, err := env.ledger.Query(ctx, punjab, models.ResourceFood)
	require.NoError(t, err)
	assert.Equal(t, int64(180), source.Available)
	assert.Equal(t, int64(0), source.AllocatedOut)
	assert.Equal(t, int64(120), env.available(t, lahore, models.ResourceFood))
}

func TestLedger_CommitIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.replenish(t, punjab, models.ResourceWater, 50)

	res, err := env.ledger.Reserve(ctx, punjab, models.ResourceWater, 20, lahore)
	require.NoError(t, err)

	_, err = env.ledger.Commit(ctx, res.Token)
	require.NoError(t, err)
	_, err = env.ledger.Commit(ctx, res.Token)
	require.NoError(t, err)

	assert.Equal(t, int64(20), env.available(t, lahore, models.ResourceWater))
	assert.Equal(t, int64(30), env.available(t, punjab, models.ResourceWater))
}

func TestLedger_ReleaseRestoresSource(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.replenish(t, punjab, models.ResourceMedical, 10)

	res, err := env.ledger.Reserve(ctx, punjab, models.ResourceMedical, 10, lahore)
	require.NoError(t, err)
	assert.Equal(t, int64(0), env.available(t, punjab, models.ResourceMedical))

	_, err = env.ledger.Release(ctx, res.Token)
	require.NoError(t, err)
	_, err = env.ledger.Release(ctx, res.Token)
	require.NoError(t, err, "second release is a no-op")

	assert.Equal(t, int64(10), env.available(t, punjab, models.ResourceMedical))

	_, err = env.ledger.Commit(ctx, res.Token)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestLedger_ReleaseAfterCommitFails(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.replenish(t, punjab, models.ResourceShelter, 5)

	res, err := env.ledger.Reserve(ctx, punjab, models.ResourceShelter, 5, lahore)
	require.NoError(t, err)
	_, err = env.ledger.Commit(ctx, res.Token)
	require.NoError(t, err)

	_, err = env.ledger.Release(ctx, res.Token)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestLedger_ReserveFailsFastWhenShort(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.replenish(t, punjab, models.ResourceFood, 300)

	_, err := env.ledger.Reserve(ctx, punjab, models.ResourceFood, 500, lahore)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	assert.Equal(t, int64(300), env.available(t, punjab, models.ResourceFood))
}

func TestLedger_RejectsBadInput(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.ledger.Reserve(ctx, punjab, models.ResourceType("fuel"), 0, lahore)
	assert.ElementsMatch(t, []string{"resourceType", "quantity"}, violationFields(t, err))

	_, err = env.ledger.Reserve(ctx, "pdma:99", models.ResourceFood, 1, lahore)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = env.ledger.Commit(ctx, uuid.New())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestLedger_ConsumeCannotGoNegative(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.replenish(t, lahore, models.ResourceWater, 40)

	entry, err := env.ledger.Consume(ctx, lahore, models.ResourceWater, 15)
	require.NoError(t, err)
	assert.Equal(t, int64(25), entry.Available)

	_, err = env.ledger.Consume(ctx, lahore, models.ResourceWater, 26)
	assert.ErrorIs(t, err, models.ErrInsufficientStock)
	assert.Equal(t, int64(25), env.available(t, lahore, models.ResourceWater))
}

func TestLedger_ListIncludesEveryResourceType(t *testing.T) {
	env := newTestEnv(t)
	env.replenish(t, sindh, models.ResourceShelter, 7)

	entries, err := env.ledger.List(context.Background(), sindh)
	require.NoError(t, err)
	require.Len(t, entries, len(models.AllResourceTypes()))
	for _, e := range entries {
		if e.ResourceType == models.ResourceShelter {
			assert.Equal(t, int64(7), e.Available)
			assert.Equal(t, "tents", e.Unit)
			continue
		}
		assert.Zero(t, e.Available)
	}
}

func TestLedger_ConcurrentReservesNeverOverdraw(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.replenish(t, punjab, models.ResourceFood, 100)

	const workers = 50
	var (
		wg           sync.WaitGroup
		succeeded    atomic.Int64
		insufficient atomic.Int64
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.ledger.Reserve(ctx, punjab, models.ResourceFood, 3, lahore)
			switch {
			case err == nil:
				succeeded.Add(1)
			case errors.Is(err, models.ErrInsufficientStock):
				insufficient.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(33), succeeded.Load())
	assert.Equal(t, int64(workers-33), insufficient.Load())

	entry, err := env.ledger.Query(ctx, punjab, models.ResourceFood)
	require.NoError(t, err)
	assert.Equal(t, int64(1), entry.Available)
	assert.Equal(t, int64(99), entry.AllocatedOut)
	assert.Equal(t, int64(100), entry.Physical())
}

func TestLedger_GivesUpAfterRepeatedVersionConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockStockRepository(ctrl)
	env := newTestEnv(t)
	ledger := NewStockLedger(repo, hierarchy.MustDefault(), env.logger, &config.Config{LedgerMaxRetries: 3})

	repo.EXPECT().GetEntry(gomock.Any(), punjab, models.ResourceFood).
		Return(&models.StockEntry{AuthorityID: punjab, ResourceType: models.ResourceFood, Available: 10, Version: 4}, nil).
		Times(3)
	repo.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(models.ErrVersionConflict).Times(3)

	_, err := ledger.Reserve(context.Background(), punjab, models.ResourceFood, 1, lahore)
	assert.ErrorIs(t, err, models.ErrConflict)
}
