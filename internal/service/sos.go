package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/relief_coordination_system/internal/metrics"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

const (
	minUrgencyOverride int64 = 1
	maxUrgencyOverride       = models.MaxTriageScore
)

// SOSRepository определяет контракт для работы с бд SOS-запросов.
// NextID reserves an identifier before the record exists so the tracking id can be issued first.
// Update must succeed only while the stored status equals expected, otherwise models.ErrConflict.
type SOSRepository interface {
	NextID(ctx context.Context) (int64, error)
	Create(ctx context.Context, req *models.SOSRequest) error
	GetByID(ctx context.Context, id int64) (*models.SOSRequest, error)
	Update(ctx context.Context, req *models.SOSRequest, expected models.SOSStatus) error
	List(ctx context.Context, filter models.SOSFilter, page, pageSize int) ([]*models.SOSRequest, error)
	Count(ctx context.Context, filter models.SOSFilter) (int, error)
}

// SOSService определяет контракт жизненного цикла SOS-запросов
type SOSService interface {
	Submit(ctx context.Context, submission models.SOSSubmission) (*models.SOSRequest, error)
	Get(ctx context.Context, id int64) (*models.SOSRequest, error)
	List(ctx context.Context, filter models.SOSFilter, page, pageSize int) ([]*models.SOSRequest, int, error)
	Triage(ctx context.Context, id int64, urgencyOverride *int64) (*models.SOSRequest, error)
	Assign(ctx context.Context, id int64, teamID string) (*models.SOSRequest, error)
	Resolve(ctx context.Context, id int64) (*models.SOSRequest, error)
	Cancel(ctx context.Context, id int64, reason string) (*models.SOSRequest, error)
	CountActive(ctx context.Context, authorityID models.AuthorityID) (int, error)
}

type sosService struct {
	repo      SOSRepository
	tracking  TrackingRegistry
	directory AuthorityDirectory
	locker    Locker
	publisher webhook.Publisher
	validate  *validator.Validate
	logger    *logrus.Logger
	now       func() time.Time
}

func NewSOSService(repo SOSRepository, tracking TrackingRegistry, directory AuthorityDirectory, locker Locker, logger *logrus.Logger, publisher webhook.Publisher) SOSService {
	return &sosService{
		repo:      repo,
		tracking:  tracking,
		directory: directory,
		locker:    locker,
		publisher: publisher,
		validate:  newValidator(),
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Submit проверяет все поля сразу, выдаёт трекинг-номер и только затем сохраняет запрос
func (s *sosService) Submit(ctx context.Context, submission models.SOSSubmission) (*models.SOSRequest, error) {
	submission.Name = strings.TrimSpace(submission.Name)
	submission.Phone = strings.TrimSpace(submission.Phone)
	submission.CNIC = strings.TrimSpace(submission.CNIC)
	submission.Location = strings.TrimSpace(submission.Location)
	submission.Description = strings.TrimSpace(submission.Description)
	submission.EmergencyType = strings.ToLower(strings.TrimSpace(submission.EmergencyType))

	log := s.logger.WithFields(logrus.Fields{
		"service":     "sos",
		"method":      "Submit",
		"province_id": submission.ProvinceID,
		"district_id": submission.DistrictID,
	})
	log.Info("Attempting to submit SOS request")

	verr := validatePayload(s.validate, submission)
	checkJurisdiction(s.directory, verr, submission.ProvinceID, submission.DistrictID)
	if err := verr.OrNil(); err != nil {
		metrics.ValidationFailures.WithLabelValues("sos").Inc()
		log.WithError(err).Warn("SOS request rejected by validation")
		return nil, err
	}

	emergencyType, _ := models.ParseEmergencyType(submission.EmergencyType)

	id, err := s.repo.NextID(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to reserve SOS id")
		return nil, fmt.Errorf("service: could not reserve sos id: %w", err)
	}
	record, err := s.tracking.Register(ctx, models.CaseSOS, id, submission.CNIC)
	if err != nil {
		log.WithError(err).Error("Failed to register tracking id")
		return nil, fmt.Errorf("service: could not register sos tracking id: %w", err)
	}

	now := s.now()
	req := &models.SOSRequest{
		ID:         id,
		TrackingID: record.TrackingID,
		FullName:   submission.Name,
		CNIC:       submission.CNIC,
		Phone:      submission.Phone,
		Location: models.Location{
			Lat:     *submission.LocationLat,
			Lng:     *submission.LocationLng,
			Address: submission.Location,
		},
		PeopleCount:   submission.PeopleCount,
		EmergencyType: emergencyType,
		Description:   submission.Description,
		ProvinceID:    submission.ProvinceID,
		DistrictID:    submission.DistrictID,
		Status:        models.SOSSubmitted,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, req); err != nil {
		log.WithError(err).Error("Failed to create SOS request in repository")
		return nil, fmt.Errorf("service: could not create sos request: %w", err)
	}

	metrics.SOSSubmitted.WithLabelValues(string(emergencyType)).Inc()
	publish(ctx, s.publisher, log, webhook.Event{
		Type:        webhook.EventSOSSubmitted,
		EntityID:    fmt.Sprint(req.ID),
		TrackingID:  req.TrackingID,
		Status:      string(req.Status),
		AuthorityID: string(models.DistrictAuthorityID(req.ProvinceID, req.DistrictID)),
		Phone:       req.Phone,
		Message:     fmt.Sprintf("Your SOS request has been received. Tracking ID: %s", req.TrackingID),
		Timestamp:   now,
	})
	log.WithFields(logrus.Fields{"sos_id": req.ID, "tracking_id": req.TrackingID}).Info("SOS request submitted")
	return req, nil
}

// Get получает SOS-запрос по ID
func (s *sosService) Get(ctx context.Context, id int64) (*models.SOSRequest, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get sos request: %w", err)
	}
	return req, nil
}

// List получает список SOS-запросов с пагинацией и общее количество по фильтру
func (s *sosService) List(ctx context.Context, filter models.SOSFilter, page, pageSize int) ([]*models.SOSRequest, int, error) {
	page, pageSize = models.NormalizePage(page, pageSize)

	log := s.logger.WithFields(logrus.Fields{
		"service":   "sos",
		"method":    "List",
		"page":      page,
		"page_size": pageSize,
	})

	requests, err := s.repo.List(ctx, filter, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list SOS requests from repository")
		return nil, 0, fmt.Errorf("service: could not list sos requests: %w", err)
	}
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to count SOS requests")
		return nil, 0, fmt.Errorf("service: could not count sos requests: %w", err)
	}
	return requests, total, nil
}

// Triage: submitted -> triaged. Оценка считается по типу ЧС и числу людей, если нет ручного значения.
func (s *sosService) Triage(ctx context.Context, id int64, urgencyOverride *int64) (*models.SOSRequest, error) {
	if urgencyOverride != nil && (*urgencyOverride < minUrgencyOverride || *urgencyOverride > maxUrgencyOverride) {
		return nil, models.NewValidationError("urgencyOverride", "range",
			fmt.Sprintf("must be between %d and %d", minUrgencyOverride, maxUrgencyOverride))
	}
	return s.transition(ctx, id, "Triage", models.SOSTriaged, func(req *models.SOSRequest, now time.Time) {
		if urgencyOverride != nil {
			req.PriorityScore = *urgencyOverride
			req.UrgencyOverridden = true
		} else {
			req.PriorityScore = models.TriageScore(req.EmergencyType, req.PeopleCount)
		}
		req.TriagedAt = timePtr(now)
	})
}

// Assign: triaged -> assigned. Из submitted нельзя: триаж обязателен.
func (s *sosService) Assign(ctx context.Context, id int64, teamID string) (*models.SOSRequest, error) {
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, models.NewValidationError("teamId", "required", "is required")
	}
	return s.transition(ctx, id, "Assign", models.SOSAssigned, func(req *models.SOSRequest, now time.Time) {
		req.AssignedTeamID = teamID
		req.AssignedAt = timePtr(now)
	})
}

// Resolve: assigned -> resolved. Повторный вызов возвращает запись без изменений.
func (s *sosService) Resolve(ctx context.Context, id int64) (*models.SOSRequest, error) {
	return s.transition(ctx, id, "Resolve", models.SOSResolved, func(req *models.SOSRequest, now time.Time) {
		req.ResolvedAt = timePtr(now)
	})
}

// Cancel - ложный вызов или дубликат; допустим из любого нетерминального состояния
func (s *sosService) Cancel(ctx context.Context, id int64, reason string) (*models.SOSRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, models.NewValidationError("reason", "required", "is required")
	}
	return s.transition(ctx, id, "Cancel", models.SOSCancelled, func(req *models.SOSRequest, now time.Time) {
		req.CancelReason = reason
		req.CancelledAt = timePtr(now)
	})
}

// CountActive считает нетерминальные запросы в зоне ответственности органа
func (s *sosService) CountActive(ctx context.Context, authorityID models.AuthorityID) (int, error) {
	authority, err := s.directory.Get(authorityID)
	if err != nil {
		return 0, err
	}
	filter := models.SOSFilter{
		ProvinceID: authority.ProvinceID,
		DistrictID: authority.DistrictID,
		ActiveOnly: true,
	}
	count, err := s.repo.Count(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("service: could not count active sos requests: %w", err)
	}
	return count, nil
}

func (s *sosService) transition(ctx context.Context, id int64, method string, to models.SOSStatus, mutate func(req *models.SOSRequest, now time.Time)) (*models.SOSRequest, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "sos",
		"method":  method,
		"sos_id":  id,
	})
	log.Info("Attempting SOS transition")

	unlock, err := lockEntity(ctx, s.locker, "sos", fmt.Sprint(id))
	if err != nil {
		logFailure(log, err, "Failed to lock SOS request")
		return nil, fmt.Errorf("service: could not lock sos %d: %w", id, err)
	}
	defer unlock()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logFailure(log, err, "Failed to get SOS request")
		return nil, fmt.Errorf("service: could not get sos request: %w", err)
	}
	// повторный resolve - не ошибка
	if to == models.SOSResolved && current.Status == models.SOSResolved {
		log.Info("SOS request already resolved")
		return current, nil
	}
	if !current.Status.CanTransition(to) {
		err := &models.TransitionError{Entity: "sos", From: string(current.Status), To: string(to)}
		log.WithError(err).Warn("Rejected SOS transition")
		return nil, err
	}

	now := s.now()
	updated := *current
	mutate(&updated, now)
	updated.Status = to
	updated.UpdatedAt = now

	if err := s.repo.Update(ctx, &updated, current.Status); err != nil {
		logFailure(log, err, "Failed to persist SOS transition")
		return nil, fmt.Errorf("service: could not update sos %d: %w", id, err)
	}

	metrics.SOSTransitions.WithLabelValues(string(to)).Inc()
	publish(ctx, s.publisher, log, webhook.Event{
		Type:        webhook.EventSOSStatusChanged,
		EntityID:    fmt.Sprint(updated.ID),
		TrackingID:  updated.TrackingID,
		Status:      string(updated.Status),
		AuthorityID: string(models.DistrictAuthorityID(updated.ProvinceID, updated.DistrictID)),
		Phone:       updated.Phone,
		Timestamp:   now,
	})
	log.WithField("status", to).Info("SOS transition applied")
	return &updated, nil
}
