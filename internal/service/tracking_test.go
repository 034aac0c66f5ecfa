package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/repository/memory"
	"github.com/shenikar/relief_coordination_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRegistry(t *testing.T, now time.Time) TrackingRegistry {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	r := NewTrackingRegistry(memory.NewTrackingStore(), logger).(*trackingRegistry)
	r.now = func() time.Time { return now }
	return r
}

func TestTrackingRegister_FormatAndSequence(t *testing.T) {
	r := newTestRegistry(t, time.Date(2025, 8, 14, 10, 0, 0, 0, time.UTC))
	ctx := context.Background()

	first, err := r.Register(ctx, models.CaseSOS, 17, "3520112345671")
	require.NoError(t, err)
	second, err := r.Register(ctx, models.CaseSOS, 18, "3520112345671")
	require.NoError(t, err)
	mp, err := r.Register(ctx, models.CaseMissingPerson, 1, "")
	require.NoError(t, err)

	assert.Equal(t, "SOS-2025-0001", first.TrackingID)
	assert.Equal(t, "SOS-2025-0002", second.TrackingID)
	assert.Equal(t, "MP-2025-0001", mp.TrackingID, "counters are scoped per case type")
}

func TestTrackingRegister_CounterRestartsEachYear(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	r := NewTrackingRegistry(memory.NewTrackingStore(), logger).(*trackingRegistry)
	ctx := context.Background()

	r.now = func() time.Time { return time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC) }
	_, err := r.Register(ctx, models.CaseSOS, 1, "")
	require.NoError(t, err)
	_, err = r.Register(ctx, models.CaseSOS, 2, "")
	require.NoError(t, err)

	r.now = func() time.Time { return time.Date(2026, 1, 1, 0, 1, 0, 0, time.UTC) }
	rec, err := r.Register(ctx, models.CaseSOS, 3, "")
	require.NoError(t, err)
	assert.Equal(t, "SOS-2026-0001", rec.TrackingID)
}

func TestTrackingRegister_ConcurrentIsCollisionFree(t *testing.T) {
	r := newTestRegistry(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	const n = 200
	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		ids = make(map[string]int64, n)
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(internalID int64) {
			defer wg.Done()
			rec, err := r.Register(ctx, models.CaseSOS, internalID, "")
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			ids[rec.TrackingID] = internalID
			mu.Unlock()
		}(int64(i))
	}
	wg.Wait()

	require.Len(t, ids, n)
	for trackingID, internalID := range ids {
		rec, err := r.Resolve(ctx, trackingID)
		require.NoError(t, err)
		assert.Equal(t, internalID, rec.InternalID)
	}
}

func TestTrackingResolve_CaseInsensitivePrefix(t *testing.T) {
	r := newTestRegistry(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))
	ctx := context.Background()

	rec, err := r.Register(ctx, models.CaseMissingPerson, 5, "")
	require.NoError(t, err)

	for _, id := range []string{"MP-2025-0001", "mp-2025-0001", " Mp-2025-0001 "} {
		got, err := r.Resolve(ctx, id)
		require.NoError(t, err, id)
		assert.Equal(t, rec.InternalID, got.InternalID)
	}

	for _, id := range []string{"MP-2025-0002", "SOS-2025-0001", "MP-25-0001", "garbage", ""} {
		_, err := r.Resolve(ctx, id)
		assert.ErrorIs(t, err, models.ErrNotFound, id)
	}
}

func TestTrackingResolveByCNIC_NewestFirst(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	r := NewTrackingRegistry(memory.NewTrackingStore(), logger).(*trackingRegistry)
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		r.now = func() time.Time { return at }
		_, err := r.Register(ctx, models.CaseSOS, int64(i+1), "3520112345671")
		require.NoError(t, err)
	}
	_, err := r.Register(ctx, models.CaseSOS, 9, "4210112345678")
	require.NoError(t, err)

	records, err := r.ResolveByCNIC(ctx, "3520112345671")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "SOS-2025-0003", records[0].TrackingID)
	assert.Equal(t, "SOS-2025-0001", records[2].TrackingID)

	records, err = r.ResolveByCNIC(ctx, "1111111111111")
	require.NoError(t, err)
	assert.Empty(t, records)

	_, err = r.ResolveByCNIC(ctx, "35201-1234567-1")
	assert.Equal(t, []string{"cnic"}, violationFields(t, err))
}

func TestTrackingRegister_StorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockTrackingRepository(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	r := NewTrackingRegistry(repo, logger)

	repo.EXPECT().NextSequence(gomock.Any(), models.CaseSOS, gomock.Any()).Return(int64(0), errors.New("connection reset"))

	_, err := r.Register(context.Background(), models.CaseSOS, 1, "")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "connection reset"))

	_, err = r.Register(context.Background(), models.CaseType("XX"), 1, "")
	assert.Equal(t, []string{"caseType"}, violationFields(t, err))
}

func TestTracking_ResolvableAfterTerminalState(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.sos.Submit(ctx, aliKhan())
	require.NoError(t, err)
	_, err = env.sos.Cancel(ctx, req.ID, "false alarm")
	require.NoError(t, err)

	rec, err := env.tracking.Resolve(ctx, strings.ToLower(req.TrackingID))
	require.NoError(t, err)
	assert.Equal(t, req.ID, rec.InternalID)
	assert.Equal(t, models.CaseSOS, rec.CaseType)
}
