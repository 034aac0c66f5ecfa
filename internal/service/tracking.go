package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shenikar/relief_coordination_system/internal/metrics"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// TrackingRepository определяет контракт реестра трекинг-номеров.
// NextSequence must be atomic per (caseType, year); Create returns models.ErrConflict for a duplicate id.
type TrackingRepository interface {
	NextSequence(ctx context.Context, caseType models.CaseType, year int) (int64, error)
	Create(ctx context.Context, record *models.TrackingRecord) error
	Get(ctx context.Context, trackingID string) (*models.TrackingRecord, error)
	ListByCNIC(ctx context.Context, cnic string) ([]*models.TrackingRecord, error)
}

// TrackingRegistry выдаёт и разрешает публичные номера дел
type TrackingRegistry interface {
	Register(ctx context.Context, caseType models.CaseType, internalID int64, cnic string) (*models.TrackingRecord, error)
	Resolve(ctx context.Context, trackingID string) (*models.TrackingRecord, error)
	ResolveByCNIC(ctx context.Context, cnic string) ([]*models.TrackingRecord, error)
}

type trackingRegistry struct {
	repo   TrackingRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewTrackingRegistry(repo TrackingRepository, logger *logrus.Logger) TrackingRegistry {
	return &trackingRegistry{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Register выдаёт номер <PREFIX>-<YEAR>-<SEQ>. Год берётся по UTC.
func (r *trackingRegistry) Register(ctx context.Context, caseType models.CaseType, internalID int64, cnic string) (*models.TrackingRecord, error) {
	log := r.logger.WithFields(logrus.Fields{
		"service":     "tracking",
		"method":      "Register",
		"case_type":   caseType,
		"internal_id": internalID,
	})

	if _, err := models.ParseCaseType(string(caseType)); err != nil {
		return nil, models.NewValidationError("caseType", "oneof", "must be one of: SOS, MP")
	}

	now := r.now()
	seq, err := r.repo.NextSequence(ctx, caseType, now.Year())
	if err != nil {
		log.WithError(err).Error("Failed to allocate tracking sequence")
		return nil, fmt.Errorf("service: could not allocate tracking sequence: %w", err)
	}

	record := &models.TrackingRecord{
		TrackingID: models.FormatTrackingID(caseType, now.Year(), seq),
		CaseType:   caseType,
		InternalID: internalID,
		CNIC:       cnic,
		CreatedAt:  now,
	}
	if err := r.repo.Create(ctx, record); err != nil {
		log.WithError(err).Error("Failed to store tracking record")
		return nil, fmt.Errorf("service: could not register tracking id: %w", err)
	}

	metrics.TrackingRegistered.WithLabelValues(string(caseType)).Inc()
	log.WithField("tracking_id", record.TrackingID).Info("Tracking id registered")
	return record, nil
}

// Resolve находит запись по номеру. Некорректный формат считается несуществующим номером.
func (r *trackingRegistry) Resolve(ctx context.Context, trackingID string) (*models.TrackingRecord, error) {
	normalized, err := models.NormalizeTrackingID(trackingID)
	if err != nil {
		return nil, fmt.Errorf("tracking id %q: %w", trackingID, models.ErrNotFound)
	}
	record, err := r.repo.Get(ctx, normalized)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			r.logger.WithError(err).WithField("tracking_id", normalized).Error("Failed to resolve tracking id")
		}
		return nil, fmt.Errorf("service: could not resolve tracking id: %w", err)
	}
	return record, nil
}

// ResolveByCNIC возвращает все номера, связанные с CNIC, от новых к старым
func (r *trackingRegistry) ResolveByCNIC(ctx context.Context, cnic string) ([]*models.TrackingRecord, error) {
	if !validCNIC(cnic) {
		return nil, models.NewValidationError("cnic", "cnic", "must be exactly 13 digits without dashes")
	}
	records, err := r.repo.ListByCNIC(ctx, cnic)
	if err != nil {
		r.logger.WithError(err).Error("Failed to list tracking records by cnic")
		return nil, fmt.Errorf("service: could not resolve cnic: %w", err)
	}
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].TrackingID > records[j].TrackingID
		}
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	return records, nil
}
