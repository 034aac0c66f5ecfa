package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// CaseLookupService - публичный поиск дела по трекинг-номеру или CNIC
type CaseLookupService interface {
	ByTrackingID(ctx context.Context, trackingID string) (*models.CaseSummary, error)
	ByCNIC(ctx context.Context, cnic string) ([]*models.CaseSummary, error)
}

type caseLookupService struct {
	tracking  TrackingRegistry
	sos       SOSRepository
	missing   MissingPersonRepository
	directory AuthorityDirectory
	logger    *logrus.Logger
}

func NewCaseLookupService(tracking TrackingRegistry, sos SOSRepository, missing MissingPersonRepository, directory AuthorityDirectory, logger *logrus.Logger) CaseLookupService {
	return &caseLookupService{
		tracking:  tracking,
		sos:       sos,
		missing:   missing,
		directory: directory,
		logger:    logger,
	}
}

func (s *caseLookupService) ByTrackingID(ctx context.Context, trackingID string) (*models.CaseSummary, error) {
	record, err := s.tracking.Resolve(ctx, trackingID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, record)
}

// ByCNIC возвращает все дела гражданина, от новых к старым
func (s *caseLookupService) ByCNIC(ctx context.Context, cnic string) ([]*models.CaseSummary, error) {
	records, err := s.tracking.ResolveByCNIC(ctx, cnic)
	if err != nil {
		return nil, err
	}

	summaries := make([]*models.CaseSummary, 0, len(records))
	for _, record := range records {
		summary, err := s.summarize(ctx, record)
		if errors.Is(err, models.ErrNotFound) {
			// номер выдан, но запись дела не сохранилась
			s.logger.WithField("tracking_id", record.TrackingID).Warn("Tracking id points to a missing case")
			continue
		}
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *caseLookupService) summarize(ctx context.Context, record *models.TrackingRecord) (*models.CaseSummary, error) {
	switch record.CaseType {
	case models.CaseSOS:
		req, err := s.sos.GetByID(ctx, record.InternalID)
		if err != nil {
			return nil, fmt.Errorf("service: could not load sos case %s: %w", record.TrackingID, err)
		}
		return &models.CaseSummary{
			TrackingID:    record.TrackingID,
			CaseType:      record.CaseType,
			Status:        string(req.Status),
			SubmittedAt:   req.CreatedAt,
			LastUpdatedAt: req.UpdatedAt,
			Summary: fmt.Sprintf("%s emergency, %d people affected, %s",
				req.EmergencyType, req.PeopleCount, s.areaName(req.ProvinceID, req.DistrictID)),
		}, nil
	case models.CaseMissingPerson:
		c, err := s.missing.GetByID(ctx, record.InternalID)
		if err != nil {
			return nil, fmt.Errorf("service: could not load missing person case %s: %w", record.TrackingID, err)
		}
		return &models.CaseSummary{
			TrackingID:    record.TrackingID,
			CaseType:      record.CaseType,
			Status:        string(c.Status),
			SubmittedAt:   c.CreatedAt,
			LastUpdatedAt: c.UpdatedAt,
			Summary:       fmt.Sprintf("Missing person: %s, %s", c.FullName, s.areaName(c.ProvinceID, c.DistrictID)),
		}, nil
	}
	return nil, fmt.Errorf("unknown case type %q", record.CaseType)
}

func (s *caseLookupService) areaName(provinceID, districtID int) string {
	district, err := s.directory.District(provinceID, districtID)
	if err != nil {
		return fmt.Sprintf("district %d", districtID)
	}
	return district.Name
}
