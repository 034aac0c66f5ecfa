package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/relief_coordination_system/internal/config"
	"github.com/shenikar/relief_coordination_system/internal/metrics"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// BadgeCache хранит последние снимки. Get returns nil, nil on a miss.
type BadgeCache interface {
	Get(ctx context.Context, authorityID models.AuthorityID) (*models.BadgeSnapshot, error)
	Set(ctx context.Context, snapshot *models.BadgeSnapshot, ttl time.Duration) error
}

// BadgeService - сводки для дашбордов. Только чтение, собственного состояния нет.
type BadgeService interface {
	PendingAllocationCount(ctx context.Context, authorityID models.AuthorityID) (int, error)
	ActiveSOSCount(ctx context.Context, authorityID models.AuthorityID) (int, error)
	StockRemaining(ctx context.Context, authorityID models.AuthorityID, resourceType models.ResourceType) (int64, error)
	Badges(ctx context.Context, authorityID models.AuthorityID) (*models.BadgeSnapshot, error)
}

type badgeService struct {
	allocations AllocationService
	sos         SOSService
	ledger      StockLedger
	directory   AuthorityDirectory
	cache       BadgeCache
	ttl         time.Duration
	logger      *logrus.Logger
	now         func() time.Time
}

// NewBadgeService creates the rollup service. cache may be nil.
func NewBadgeService(allocations AllocationService, sos SOSService, ledger StockLedger, directory AuthorityDirectory, cache BadgeCache, logger *logrus.Logger, cfg *config.Config) BadgeService {
	return &badgeService{
		allocations: allocations,
		sos:         sos,
		ledger:      ledger,
		directory:   directory,
		cache:       cache,
		ttl:         cfg.BadgeRefreshInterval,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

func (s *badgeService) PendingAllocationCount(ctx context.Context, authorityID models.AuthorityID) (int, error) {
	if _, err := s.directory.Get(authorityID); err != nil {
		return 0, err
	}
	return s.allocations.PendingCount(ctx, authorityID)
}

func (s *badgeService) ActiveSOSCount(ctx context.Context, authorityID models.AuthorityID) (int, error) {
	return s.sos.CountActive(ctx, authorityID)
}

func (s *badgeService) StockRemaining(ctx context.Context, authorityID models.AuthorityID, resourceType models.ResourceType) (int64, error) {
	entry, err := s.ledger.Query(ctx, authorityID, resourceType)
	if err != nil {
		return 0, err
	}
	return entry.Available, nil
}

// Badges отдаёт снимок из кэша, если он не старше BADGE_REFRESH_INTERVAL, иначе пересчитывает
func (s *badgeService) Badges(ctx context.Context, authorityID models.AuthorityID) (*models.BadgeSnapshot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "badge",
		"method":       "Badges",
		"authority_id": authorityID,
	})

	if _, err := s.directory.Get(authorityID); err != nil {
		return nil, err
	}

	if s.cache != nil {
		snapshot, err := s.cache.Get(ctx, authorityID)
		if err != nil {
			// кэш не источник истины, поэтому просто пересчитываем
			log.WithError(err).Warn("Failed to read badge cache")
		} else if snapshot != nil {
			metrics.BadgeCacheHits.WithLabelValues("cache").Inc()
			return snapshot, nil
		}
	}

	snapshot, err := s.compute(ctx, authorityID)
	if err != nil {
		log.WithError(err).Error("Failed to compute badges")
		return nil, fmt.Errorf("service: could not compute badges: %w", err)
	}
	metrics.BadgeCacheHits.WithLabelValues("computed").Inc()

	if s.cache != nil {
		if err := s.cache.Set(ctx, snapshot, s.ttl); err != nil {
			log.WithError(err).Warn("Failed to store badge snapshot")
		}
	}
	return snapshot, nil
}

func (s *badgeService) compute(ctx context.Context, authorityID models.AuthorityID) (*models.BadgeSnapshot, error) {
	pending, err := s.allocations.PendingCount(ctx, authorityID)
	if err != nil {
		return nil, err
	}
	active, err := s.sos.CountActive(ctx, authorityID)
	if err != nil {
		return nil, err
	}
	entries, err := s.ledger.List(ctx, authorityID)
	if err != nil {
		return nil, err
	}

	stock := make(map[models.ResourceType]int64, len(entries))
	for _, e := range entries {
		stock[e.ResourceType] = e.Available
	}
	return &models.BadgeSnapshot{
		AuthorityID:        authorityID,
		PendingAllocations: pending,
		ActiveSOS:          active,
		Stock:              stock,
		ComputedAt:         s.now(),
	}, nil
}
