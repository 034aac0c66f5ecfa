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

// MissingPersonRepository определяет контракт для работы с бд дел о пропавших.
// Update must succeed only while the stored status equals expected, otherwise models.ErrConflict.
type MissingPersonRepository interface {
	NextID(ctx context.Context) (int64, error)
	Create(ctx context.Context, c *models.MissingPersonCase) error
	GetByID(ctx context.Context, id int64) (*models.MissingPersonCase, error)
	Update(ctx context.Context, c *models.MissingPersonCase, expected models.MissingPersonStatus) error
}

// MissingPersonService определяет контракт жизненного цикла дел о пропавших
type MissingPersonService interface {
	Report(ctx context.Context, report models.MissingPersonReport) (*models.MissingPersonCase, error)
	Get(ctx context.Context, id int64) (*models.MissingPersonCase, error)
	MarkFound(ctx context.Context, id int64) (*models.MissingPersonCase, error)
	Close(ctx context.Context, id int64, reason string) (*models.MissingPersonCase, error)
}

type missingPersonService struct {
	repo      MissingPersonRepository
	tracking  TrackingRegistry
	directory AuthorityDirectory
	locker    Locker
	publisher webhook.Publisher
	validate  *validator.Validate
	logger    *logrus.Logger
	now       func() time.Time
}

func NewMissingPersonService(repo MissingPersonRepository, tracking TrackingRegistry, directory AuthorityDirectory, locker Locker, logger *logrus.Logger, publisher webhook.Publisher) MissingPersonService {
	return &missingPersonService{
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

// Report регистрирует дело и выдаёт номер MP-YYYY-NNNN до сохранения записи
func (s *missingPersonService) Report(ctx context.Context, report models.MissingPersonReport) (*models.MissingPersonCase, error) {
	report.FullName = strings.TrimSpace(report.FullName)
	report.Gender = strings.ToLower(strings.TrimSpace(report.Gender))
	report.LastSeenLocation = strings.TrimSpace(report.LastSeenLocation)
	report.Description = strings.TrimSpace(report.Description)
	report.ReporterName = strings.TrimSpace(report.ReporterName)
	report.ReporterPhone = strings.TrimSpace(report.ReporterPhone)
	report.ReporterCNIC = strings.TrimSpace(report.ReporterCNIC)

	log := s.logger.WithFields(logrus.Fields{
		"service":     "missing_person",
		"method":      "Report",
		"province_id": report.ProvinceID,
		"district_id": report.DistrictID,
	})
	log.Info("Attempting to report missing person")

	verr := validatePayload(s.validate, report)
	if (report.LastSeenLat == nil) != (report.LastSeenLng == nil) {
		field := "lastSeenLng"
		if report.LastSeenLat == nil {
			field = "lastSeenLat"
		}
		verr.Add(field, "required_with", "lastSeenLat and lastSeenLng must be given together")
	}
	checkJurisdiction(s.directory, verr, report.ProvinceID, report.DistrictID)
	if err := verr.OrNil(); err != nil {
		metrics.ValidationFailures.WithLabelValues("missing_person").Inc()
		log.WithError(err).Warn("Missing person report rejected by validation")
		return nil, err
	}

	id, err := s.repo.NextID(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to reserve missing person id")
		return nil, fmt.Errorf("service: could not reserve missing person id: %w", err)
	}
	record, err := s.tracking.Register(ctx, models.CaseMissingPerson, id, report.ReporterCNIC)
	if err != nil {
		log.WithError(err).Error("Failed to register tracking id")
		return nil, fmt.Errorf("service: could not register missing person tracking id: %w", err)
	}

	now := s.now()
	c := &models.MissingPersonCase{
		ID:               id,
		TrackingID:       record.TrackingID,
		FullName:         report.FullName,
		Age:              report.Age,
		Gender:           report.Gender,
		LastSeenLocation: report.LastSeenLocation,
		Description:      report.Description,
		ReporterName:     report.ReporterName,
		ReporterPhone:    report.ReporterPhone,
		ReporterCNIC:     report.ReporterCNIC,
		ProvinceID:       report.ProvinceID,
		DistrictID:       report.DistrictID,
		Status:           models.MissingPersonReported,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if report.LastSeenLat != nil {
		c.LastSeen = &models.Location{Lat: *report.LastSeenLat, Lng: *report.LastSeenLng, Address: report.LastSeenLocation}
	}
	if err := s.repo.Create(ctx, c); err != nil {
		log.WithError(err).Error("Failed to create missing person case in repository")
		return nil, fmt.Errorf("service: could not create missing person case: %w", err)
	}

	publish(ctx, s.publisher, log, webhook.Event{
		Type:        webhook.EventMissingPersonReported,
		EntityID:    fmt.Sprint(c.ID),
		TrackingID:  c.TrackingID,
		Status:      string(c.Status),
		AuthorityID: string(models.DistrictAuthorityID(c.ProvinceID, c.DistrictID)),
		Phone:       c.ReporterPhone,
		Message:     fmt.Sprintf("Missing person report received. Tracking ID: %s", c.TrackingID),
		Timestamp:   now,
	})
	log.WithFields(logrus.Fields{"case_id": c.ID, "tracking_id": c.TrackingID}).Info("Missing person reported")
	return c, nil
}

// Get получает дело по ID
func (s *missingPersonService) Get(ctx context.Context, id int64) (*models.MissingPersonCase, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get missing person case: %w", err)
	}
	return c, nil
}

// MarkFound: reported -> found. Повторный вызов возвращает дело без изменений.
func (s *missingPersonService) MarkFound(ctx context.Context, id int64) (*models.MissingPersonCase, error) {
	return s.transition(ctx, id, "MarkFound", models.MissingPersonFound, func(c *models.MissingPersonCase, now time.Time) {
		c.FoundAt = timePtr(now)
	})
}

// Close: reported -> closed
func (s *missingPersonService) Close(ctx context.Context, id int64, reason string) (*models.MissingPersonCase, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, models.NewValidationError("reason", "required", "is required")
	}
	return s.transition(ctx, id, "Close", models.MissingPersonClosed, func(c *models.MissingPersonCase, now time.Time) {
		c.CloseReason = reason
		c.ClosedAt = timePtr(now)
	})
}

func (s *missingPersonService) transition(ctx context.Context, id int64, method string, to models.MissingPersonStatus, mutate func(c *models.MissingPersonCase, now time.Time)) (*models.MissingPersonCase, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "missing_person",
		"method":  method,
		"case_id": id,
	})

	unlock, err := lockEntity(ctx, s.locker, "mp", fmt.Sprint(id))
	if err != nil {
		logFailure(log, err, "Failed to lock missing person case")
		return nil, fmt.Errorf("service: could not lock missing person case %d: %w", id, err)
	}
	defer unlock()

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		logFailure(log, err, "Failed to get missing person case")
		return nil, fmt.Errorf("service: could not get missing person case: %w", err)
	}
	if to == models.MissingPersonFound && current.Status == models.MissingPersonFound {
		return current, nil
	}
	if !current.Status.CanTransition(to) {
		err := &models.TransitionError{Entity: "missing_person", From: string(current.Status), To: string(to)}
		log.WithError(err).Warn("Rejected missing person transition")
		return nil, err
	}

	now := s.now()
	updated := *current
	mutate(&updated, now)
	updated.Status = to
	updated.UpdatedAt = now

	if err := s.repo.Update(ctx, &updated, current.Status); err != nil {
		logFailure(log, err, "Failed to persist missing person transition")
		return nil, fmt.Errorf("service: could not update missing person case %d: %w", id, err)
	}

	publish(ctx, s.publisher, log, webhook.Event{
		Type:        webhook.EventMissingPersonChanged,
		EntityID:    fmt.Sprint(updated.ID),
		TrackingID:  updated.TrackingID,
		Status:      string(updated.Status),
		AuthorityID: string(models.DistrictAuthorityID(updated.ProvinceID, updated.DistrictID)),
		Phone:       updated.ReporterPhone,
		Timestamp:   now,
	})
	log.WithField("status", to).Info("Missing person transition applied")
	return &updated, nil
}
