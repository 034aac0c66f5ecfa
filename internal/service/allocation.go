package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shenikar/relief_coordination_system/internal/metrics"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AllocationRepository определяет контракт для работы с бд заявок на ресурсы.
// Update must succeed only while the stored status equals expected, otherwise models.ErrConflict.
type AllocationRepository interface {
	Create(ctx context.Context, req *models.AllocationRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AllocationRequest, error)
	Update(ctx context.Context, req *models.AllocationRequest, expected models.AllocationStatus) error
	List(ctx context.Context, filter models.AllocationFilter) ([]*models.AllocationRequest, error)
	Count(ctx context.Context, filter models.AllocationFilter) (int, error)
}

// AllocationService определяет контракт машины состояний заявок на ресурсы
type AllocationService interface {
	Submit(ctx context.Context, submission models.AllocationSubmission) (*models.AllocationRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*models.AllocationRequest, error)
	ListIncoming(ctx context.Context, target models.AuthorityID, status models.AllocationStatus) ([]*models.AllocationRequest, error)
	ListOutgoing(ctx context.Context, requester models.AuthorityID, status models.AllocationStatus) ([]*models.AllocationRequest, error)
	Approve(ctx context.Context, id uuid.UUID, decidedBy string) (*models.AllocationRequest, error)
	Reject(ctx context.Context, id uuid.UUID, decidedBy, reason string) (*models.AllocationRequest, error)
	Fulfill(ctx context.Context, id uuid.UUID) (*models.AllocationRequest, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) (*models.AllocationRequest, error)
	PendingCount(ctx context.Context, target models.AuthorityID) (int, error)
}

type allocationService struct {
	repo      AllocationRepository
	ledger    StockLedger
	directory AuthorityDirectory
	locker    Locker
	publisher webhook.Publisher
	validate  *validator.Validate
	logger    *logrus.Logger
	now       func() time.Time
}

func NewAllocationService(repo AllocationRepository, ledger StockLedger, directory AuthorityDirectory, locker Locker, logger *logrus.Logger, publisher webhook.Publisher) AllocationService {
	return &allocationService{
		repo:      repo,
		ledger:    ledger,
		directory: directory,
		locker:    locker,
		publisher: publisher,
		validate:  newValidator(),
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Submit создаёт заявку в статусе pending. Остатки не трогаются.
func (s *allocationService) Submit(ctx context.Context, submission models.AllocationSubmission) (*models.AllocationRequest, error) {
	submission.RequesterAuthorityID = strings.TrimSpace(submission.RequesterAuthorityID)
	submission.TargetAuthorityID = strings.TrimSpace(submission.TargetAuthorityID)
	submission.Reason = strings.TrimSpace(submission.Reason)
	submission.Notes = strings.TrimSpace(submission.Notes)
	submission.ResourceType = strings.ToLower(strings.TrimSpace(submission.ResourceType))
	submission.Priority = strings.ToLower(strings.TrimSpace(submission.Priority))

	log := s.logger.WithFields(logrus.Fields{
		"service":      "allocation",
		"method":       "Submit",
		"requester_id": submission.RequesterAuthorityID,
		"target_id":    submission.TargetAuthorityID,
	})
	log.Info("Attempting to submit allocation request")

	verr := validatePayload(s.validate, submission)
	requester := models.AuthorityID(submission.RequesterAuthorityID)
	target := models.AuthorityID(submission.TargetAuthorityID)
	if !verr.HasField("requesterAuthorityId") {
		if _, err := s.directory.Get(requester); err != nil {
			verr.Add("requesterAuthorityId", "exists", "authority does not exist")
		}
	}
	if !verr.HasField("targetAuthorityId") {
		if _, err := s.directory.Get(target); err != nil {
			verr.Add("targetAuthorityId", "exists", "authority does not exist")
		}
	}
	if !verr.HasField("requesterAuthorityId") && !verr.HasField("targetAuthorityId") && !s.directory.IsParentOf(target, requester) {
		verr.Add("targetAuthorityId", "parent", "must be the direct parent of the requesting authority")
	}
	if err := verr.OrNil(); err != nil {
		metrics.ValidationFailures.WithLabelValues("allocation").Inc()
		log.WithError(err).Warn("Allocation request rejected by validation")
		return nil, err
	}

	// значения уже проверены oneof
	resourceType, _ := models.ParseResourceType(submission.ResourceType)
	priority, _ := models.ParsePriority(submission.Priority)

	now := s.now()
	req := &models.AllocationRequest{
		ID:                   uuid.New(),
		RequesterAuthorityID: requester,
		TargetAuthorityID:    target,
		ResourceType:         resourceType,
		Quantity:             submission.Quantity,
		Priority:             priority,
		Reason:               submission.Reason,
		Notes:                submission.Notes,
		Status:               models.AllocationPending,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		log.WithError(err).Error("Failed to create allocation request in repository")
		return nil, fmt.Errorf("service: could not create allocation request: %w", err)
	}

	metrics.AllocationTransitions.WithLabelValues(string(req.Status), string(req.ResourceType)).Inc()
	publish(ctx, s.publisher, log, webhook.Event{
		Type:        webhook.EventAllocationSubmitted,
		EntityID:    req.ID.String(),
		Status:      string(req.Status),
		AuthorityID: string(req.TargetAuthorityID),
		Timestamp:   now,
	})
	log.WithField("allocation_id", req.ID).Info("Allocation request submitted")
	return req, nil
}

// Get получает заявку по ID
func (s *allocationService) Get(ctx context.Context, id uuid.UUID) (*models.AllocationRequest, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get allocation request: %w", err)
	}
	return req, nil
}

// ListIncoming возвращает заявки, адресованные органу, в порядке поступления
func (s *allocationService) ListIncoming(ctx context.Context, target models.AuthorityID, status models.AllocationStatus) ([]*models.AllocationRequest, error) {
	if _, err := s.directory.Get(target); err != nil {
		return nil, err
	}
	return s.list(ctx, models.AllocationFilter{TargetAuthorityID: target, Status: status})
}

// ListOutgoing возвращает заявки, поданные органом
func (s *allocationService) ListOutgoing(ctx context.Context, requester models.AuthorityID, status models.AllocationStatus) ([]*models.AllocationRequest, error) {
	if _, err := s.directory.Get(requester); err != nil {
		return nil, err
	}
	return s.list(ctx, models.AllocationFilter{RequesterAuthorityID: requester, Status: status})
}

func (s *allocationService) list(ctx context.Context, filter models.AllocationFilter) ([]*models.AllocationRequest, error) {
	requests, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.WithError(err).WithField("service", "allocation").Error("Failed to list allocation requests")
		return nil, fmt.Errorf("service: could not list allocation requests: %w", err)
	}
	return requests, nil
}

// PendingCount - количество заявок, ожидающих решения органа
func (s *allocationService) PendingCount(ctx context.Context, target models.AuthorityID) (int, error) {
	count, err := s.repo.Count(ctx, models.AllocationFilter{TargetAuthorityID: target, Status: models.AllocationPending})
	if err != nil {
		return 0, fmt.Errorf("service: could not count pending allocations: %w", err)
	}
	return count, nil
}

// Approve резервирует остаток у целевого органа. При нехватке заявка остаётся pending.
func (s *allocationService) Approve(ctx context.Context, id uuid.UUID, decidedBy string) (*models.AllocationRequest, error) {
	decidedBy = strings.TrimSpace(decidedBy)
	if decidedBy == "" {
		return nil, models.NewValidationError("decidedBy", "required", "is required")
	}

	return s.transition(ctx, id, "Approve", models.AllocationApproved, func(log *logrus.Entry, req *models.AllocationRequest, now time.Time) (func(), error) {
		reservation, err := s.ledger.Reserve(ctx, req.TargetAuthorityID, req.ResourceType, req.Quantity, req.RequesterAuthorityID)
		if err != nil {
			return nil, err
		}
		token := reservation.Token
		req.ReservationToken = &token
		req.DecidedBy = decidedBy
		req.DecidedAt = timePtr(now)

		// если статус не удалось записать, резерв возвращается
		return func() {
			if _, err := s.ledger.Release(ctx, token); err != nil {
				log.WithError(err).WithField("token", token).Error("Failed to release reservation after failed approval")
			}
		}, nil
	})
}

// Reject отклоняет заявку без обращения к остаткам
func (s *allocationService) Reject(ctx context.Context, id uuid.UUID, decidedBy, reason string) (*models.AllocationRequest, error) {
	verr := &models.ValidationError{}
	decidedBy = strings.TrimSpace(decidedBy)
	reason = strings.TrimSpace(reason)
	if decidedBy == "" {
		verr.Add("decidedBy", "required", "is required")
	}
	if reason == "" {
		verr.Add("reason", "required", "is required")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	return s.transition(ctx, id, "Reject", models.AllocationRejected, func(_ *logrus.Entry, req *models.AllocationRequest, now time.Time) (func(), error) {
		req.DecidedBy = decidedBy
		req.DecisionNote = reason
		req.DecidedAt = timePtr(now)
		return nil, nil
	})
}

// Fulfill проводит резерв: количество переходит в available запросившего органа
func (s *allocationService) Fulfill(ctx context.Context, id uuid.UUID) (*models.AllocationRequest, error) {
	return s.transition(ctx, id, "Fulfill", models.AllocationFulfilled, func(_ *logrus.Entry, req *models.AllocationRequest, now time.Time) (func(), error) {
		if req.ReservationToken == nil {
			return nil, fmt.Errorf("approved allocation %s has no reservation token", req.ID)
		}
		// Commit идемпотентен, поэтому повтор после сбоя записи статуса безопасен
		if _, err := s.ledger.Commit(ctx, *req.ReservationToken); err != nil {
			return nil, err
		}
		req.FulfilledAt = timePtr(now)
		return nil, nil
	})
}

// Cancel отменяет pending или approved заявку; для approved резерв возвращается источнику
func (s *allocationService) Cancel(ctx context.Context, id uuid.UUID, reason string) (*models.AllocationRequest, error) {
	reason = strings.TrimSpace(reason)
	return s.transition(ctx, id, "Cancel", models.AllocationCancelled, func(_ *logrus.Entry, req *models.AllocationRequest, now time.Time) (func(), error) {
		if req.Status == models.AllocationApproved && req.ReservationToken != nil {
			// Возврат резерва не откатывается. Если статус не записан, заявка остаётся approved
			// с уже возвращённым резервом; повторный Cancel её закрывает, Release идемпотентен.
			if _, err := s.ledger.Release(ctx, *req.ReservationToken); err != nil {
				return nil, err
			}
		}
		if reason != "" {
			req.DecisionNote = reason
		}
		req.CancelledAt = timePtr(now)
		return nil, nil
	})
}

// mutation подготавливает заявку к переходу; возвращаемый undo вызывается, если запись статуса не удалась
type mutation func(log *logrus.Entry, req *models.AllocationRequest, now time.Time) (undo func(), err error)

// transition: блокировка заявки -> проверка графа -> изменение (в т.ч. журнал остатков) -> условная запись статуса
func (s *allocationService) transition(ctx context.Context, id uuid.UUID, method string, to models.AllocationStatus, mutate mutation) (*models.AllocationRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "allocation",
		"method":        method,
		"allocation_id": id,
	})
	log.Info("Attempting allocation transition")

	unlock, err := lockEntity(ctx, s.locker, "allocation", id.String())
	if err != nil {
		logFailure(log, err, "Failed to lock allocation request")
		return nil, fmt.Errorf("service: could not lock allocation %s: %w", id, err)
	}
	defer unlock()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logFailure(log, err, "Failed to get allocation request")
		return nil, fmt.Errorf("service: could not get allocation request: %w", err)
	}
	if !current.Status.CanTransition(to) {
		err := &models.TransitionError{Entity: "allocation", From: string(current.Status), To: string(to)}
		log.WithError(err).Warn("Rejected allocation transition")
		return nil, err
	}

	now := s.now()
	updated := *current
	undo, err := mutate(log, &updated, now)
	if err != nil {
		logFailure(log, err, "Allocation transition failed")
		return nil, fmt.Errorf("service: could not %s allocation %s: %w", strings.ToLower(method), id, err)
	}
	updated.Status = to
	updated.UpdatedAt = now

	if err := s.repo.Update(ctx, &updated, current.Status); err != nil {
		if undo != nil {
			undo()
		}
		logFailure(log, err, "Failed to persist allocation transition")
		return nil, fmt.Errorf("service: could not update allocation %s: %w", id, err)
	}

	metrics.AllocationTransitions.WithLabelValues(string(to), string(updated.ResourceType)).Inc()
	publish(ctx, s.publisher, log, webhook.Event{
		Type:        webhook.EventAllocationStatusChange,
		EntityID:    updated.ID.String(),
		Status:      string(updated.Status),
		AuthorityID: string(updated.RequesterAuthorityID),
		Timestamp:   now,
	})
	log.WithField("status", to).Info("Allocation transition applied")
	return &updated, nil
}

// IsInsufficientStock помогает вызывающим отличить нехватку остатка от прочих ошибок
func IsInsufficientStock(err error) bool {
	return errors.Is(err, models.ErrInsufficientStock)
}
