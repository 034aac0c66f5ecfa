package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/relief_coordination_system/internal/hierarchy"
	"github.com/shenikar/relief_coordination_system/internal/lock"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/repository/memory"
	"github.com/shenikar/relief_coordination_system/internal/service/mocks"
	"github.com/shenikar/relief_coordination_system/internal/webhook"
	webhook_mocks "github.com/shenikar/relief_coordination_system/internal/webhook/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func foodRequest(requester, target models.AuthorityID, qty int64) models.AllocationSubmission {
	return models.AllocationSubmission{
		RequesterAuthorityID: string(requester),
		TargetAuthorityID:    string(target),
		ResourceType:         "food",
		Quantity:             qty,
		Reason:               "Flood relief camps",
	}
}

func TestAllocationSubmit_CreatesPending(t *testing.T) {
	env := newTestEnv(t)
	env.replenish(t, punjab, models.ResourceFood, 100)

	req, err := env.allocations.Submit(context.Background(), foodRequest(lahore, punjab, 40))
	require.NoError(t, err)

	assert.Equal(t, models.AllocationPending, req.Status)
	assert.Equal(t, models.PriorityMedium, req.Priority)
	assert.Nil(t, req.ReservationToken)
	assert.Equal(t, int64(100), env.available(t, punjab, models.ResourceFood), "submit does not touch the ledger")
}

func TestAllocationSubmit_RequiresDirectParent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.allocations.Submit(ctx, foodRequest(lahore, models.NDMAID, 10))
	assert.Equal(t, []string{"targetAuthorityId"}, violationFields(t, err))

	_, err = env.allocations.Submit(ctx, foodRequest(lahore, sindh, 10))
	assert.Equal(t, []string{"targetAuthorityId"}, violationFields(t, err))

	_, err = env.allocations.Submit(ctx, foodRequest(punjab, models.NDMAID, 10))
	assert.NoError(t, err)
}

func TestAllocationSubmit_ReportsAllViolations(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.allocations.Submit(context.Background(), models.AllocationSubmission{
		RequesterAuthorityID: string(lahore),
		TargetAuthorityID:    "district:9:99",
		ResourceType:         "fuel",
		Priority:             "urgent",
	})
	assert.ElementsMatch(t,
		[]string{"targetAuthorityId", "resourceType", "quantity", "priority", "reason"},
		violationFields(t, err))
}

func TestAllocation_ApproveInsufficientStockStaysPending(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.replenish(t, punjab, models.ResourceFood, 300)

	req, err := env.allocations.Submit(ctx, foodRequest(rawalpindi, punjab, 500))
	require.NoError(t, err)

	_, err = env.allocations.Approve(ctx, req.ID, "pdma.officer")
	require.ErrorIs(t, err, models.ErrInsufficientStock)
	assert.True(t, IsInsufficientStock(err))

	stored, err := env.allocations.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AllocationPending, stored.Status)
	assert.Equal(t, int64(300), env.available(t, punjab, models.ResourceFood))
}

func TestAllocation_ApproveFulfillConservesStock(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.replenish(t, punjab, models.ResourceFood, 300)
	env.replenish(t, lahore, models.ResourceFood, 20)

	req, err := env.allocations.Submit(ctx, foodRequest(lahore, punjab, 120))
	require.NoError(t, err)

	approved, err := env.allocations.Approve(ctx, req.ID, "pdma.officer")
	require.NoError(t, err)
	assert.Equal(t, models.AllocationApproved, approved.Status)
	require.NotNil(t, approved.ReservationToken)
	assert.Equal(t, "pdma.officer", approved.DecidedBy)
	assert.NotNil(t, approved.DecidedAt)

	fulfilled, err := env.allocations.Fulfill(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AllocationFulfilled, fulfilled.Status)
	assert.NotNil(t, fulfilled.FulfilledAt)

	assert.Equal(t, int64(180), env.available(t, punjab, models.ResourceFood))
	assert.Equal(t, int64(140), env.available(t, lahore, models.ResourceFood))
	assert.Equal(t, int64(320), env.available(t, punjab, models.ResourceFood)+env.available(t, lahore, models.ResourceFood))
}

func TestAllocation_CancelApprovedReleasesReservation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.replenish(t, punjab, models.ResourceWater, 1000)

	req, err := env.allocations.Submit(ctx, models.AllocationSubmission{
		RequesterAuthorityID: string(lahore),
		TargetAuthorityID:    string(punjab),
		ResourceType:         "water",
		Quantity:             400,
		Reason:               "Drinking water",
	})
	require.NoError(t, err)
	_, err = env.allocations.Approve(ctx, req.ID, "pdma.officer")
	require.NoError(t, err)
	assert.Equal(t, int64(600), env.available(t, punjab, models.ResourceWater))

	cancelled, err := env.allocations.Cancel(ctx, req.ID, "delivered by NGO")
	require.NoError(t, err)
	assert.Equal(t, models.AllocationCancelled, cancelled.Status)
	assert.Equal(t, "delivered by NGO", cancelled.DecisionNote)
	assert.Equal(t, int64(1000), env.available(t, punjab, models.ResourceWater))

	_, err = env.allocations.Fulfill(ctx, req.ID)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestAllocation_TerminalStatesAreFinal(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.allocations.Submit(ctx, foodRequest(lahore, punjab, 5))
	require.NoError(t, err)

	_, err = env.allocations.Fulfill(ctx, req.ID)
	assert.ErrorIs(t, err, models.ErrInvalidTransition, "fulfilled is only reachable through approved")

	rejected, err := env.allocations.Reject(ctx, req.ID, "pdma.officer", "duplicate request")
	require.NoError(t, err)
	assert.Equal(t, models.AllocationRejected, rejected.Status)

	for name, call := range map[string]func() error{
		"approve": func() error { _, err := env.allocations.Approve(ctx, req.ID, "x"); return err },
		"reject":  func() error { _, err := env.allocations.Reject(ctx, req.ID, "x", "y"); return err },
		"fulfill": func() error { _, err := env.allocations.Fulfill(ctx, req.ID); return err },
		"cancel":  func() error { _, err := env.allocations.Cancel(ctx, req.ID, ""); return err },
	} {
		t.Run(name, func(t *testing.T) {
			var terr *models.TransitionError
			require.ErrorAs(t, call(), &terr)
			assert.Equal(t, "rejected", terr.From)
		})
	}
}

func TestAllocation_RejectRequiresReason(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.allocations.Reject(context.Background(), uuid.New(), " ", "")
	assert.ElementsMatch(t, []string{"decidedBy", "reason"}, violationFields(t, err))
}

func TestAllocation_UnknownIDIsNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.allocations.Approve(context.Background(), uuid.New(), "pdma.officer")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestAllocation_ConcurrentApproveSucceedsOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.replenish(t, punjab, models.ResourceMedical, 100)

	req, err := env.allocations.Submit(ctx, models.AllocationSubmission{
		RequesterAuthorityID: string(lahore),
		TargetAuthorityID:    string(punjab),
		ResourceType:         "medical",
		Quantity:             30,
		Reason:               "Field hospital",
	})
	require.NoError(t, err)

	const callers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.allocations.Approve(ctx, req.ID, "pdma.officer")
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, models.ErrInvalidTransition) || errors.Is(err, models.ErrConflict), "unexpected error: %v", err)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, int64(70), env.available(t, punjab, models.ResourceMedical), "stock decremented exactly once")
}

func TestAllocation_ListsAreFirstComeFirstServed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	first, err := env.allocations.Submit(ctx, foodRequest(lahore, punjab, 10))
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	critical := foodRequest(rawalpindi, punjab, 10)
	critical.Priority = "critical"
	second, err := env.allocations.Submit(ctx, critical)
	require.NoError(t, err)

	incoming, err := env.allocations.ListIncoming(ctx, punjab, models.AllocationPending)
	require.NoError(t, err)
	require.Len(t, incoming, 2)
	assert.Equal(t, first.ID, incoming[0].ID, "priority does not reorder the queue")
	assert.Equal(t, second.ID, incoming[1].ID)

	outgoing, err := env.allocations.ListOutgoing(ctx, rawalpindi, "")
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
	assert.Equal(t, models.PriorityCritical, outgoing[0].Priority)

	count, err := env.allocations.PendingCount(ctx, punjab)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAllocation_FailedStatusWriteReleasesReservation(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAllocationRepository(ctrl)
	publisher := webhook_mocks.NewMockPublisher(ctrl)
	env := newTestEnv(t)
	env.replenish(t, punjab, models.ResourceFood, 50)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	svc := NewAllocationService(repo, env.ledger, hierarchy.MustDefault(), lock.NewLocalLocker(time.Second), logger, publisher)

	pending := &models.AllocationRequest{
		ID:                   uuid.New(),
		RequesterAuthorityID: lahore,
		TargetAuthorityID:    punjab,
		ResourceType:         models.ResourceFood,
		Quantity:             50,
		Status:               models.AllocationPending,
	}
	repo.EXPECT().GetByID(gomock.Any(), pending.ID).Return(pending, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), models.AllocationPending).Return(models.ErrConflict)

	_, err := svc.Approve(context.Background(), pending.ID, "pdma.officer")
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.Equal(t, int64(50), env.available(t, punjab, models.ResourceFood))
}

func TestAllocation_CancelRetryAfterFailedStatusWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAllocationRepository(ctrl)
	publisher := webhook_mocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	env := newTestEnv(t)
	env.replenish(t, punjab, models.ResourceFood, 50)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	svc := NewAllocationService(repo, env.ledger, hierarchy.MustDefault(), lock.NewLocalLocker(time.Second), logger, publisher)

	reservation, err := env.ledger.Reserve(context.Background(), punjab, models.ResourceFood, 30, lahore)
	require.NoError(t, err)
	token := reservation.Token
	approved := &models.AllocationRequest{
		ID:                   uuid.New(),
		RequesterAuthorityID: lahore,
		TargetAuthorityID:    punjab,
		ResourceType:         models.ResourceFood,
		Quantity:             30,
		Status:               models.AllocationApproved,
		ReservationToken:     &token,
	}
	repo.EXPECT().GetByID(gomock.Any(), approved.ID).Return(approved, nil).Times(2)
	gomock.InOrder(
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), models.AllocationApproved).Return(models.ErrConflict),
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), models.AllocationApproved).Return(nil),
	)

	_, err = svc.Cancel(context.Background(), approved.ID, "flood receded")
	assert.ErrorIs(t, err, models.ErrConflict)
	assert.Equal(t, int64(50), env.available(t, punjab, models.ResourceFood))

	cancelled, err := svc.Cancel(context.Background(), approved.ID, "flood receded")
	require.NoError(t, err)
	assert.Equal(t, models.AllocationCancelled, cancelled.Status)
	assert.Equal(t, int64(50), env.available(t, punjab, models.ResourceFood), "stock is returned only once")
}

func TestAllocation_PublishesStatusChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := webhook_mocks.NewMockPublisher(ctrl)
	env := newTestEnv(t)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	svc := NewAllocationService(memory.NewAllocationStore(), env.ledger, env.directory, lock.NewLocalLocker(time.Second), logger, publisher)

	gomock.InOrder(
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e webhook.Event) error {
			assert.Equal(t, webhook.EventAllocationSubmitted, e.Type)
			assert.Equal(t, string(punjab), e.AuthorityID)
			return nil
		}),
		publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e webhook.Event) error {
			assert.Equal(t, webhook.EventAllocationStatusChange, e.Type)
			assert.Equal(t, "rejected", e.Status)
			return errors.New("redis down")
		}),
	)

	req, err := svc.Submit(context.Background(), foodRequest(lahore, punjab, 1))
	require.NoError(t, err)
	_, err = svc.Reject(context.Background(), req.ID, "pdma.officer", "not needed")
	assert.NoError(t, err, "publish failures never fail the operation")
}
