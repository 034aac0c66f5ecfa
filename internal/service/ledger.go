package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/relief_coordination_system/internal/config"
	"github.com/shenikar/relief_coordination_system/internal/metrics"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/sirupsen/logrus"
)

// StockRepository определяет контракт хранилища остатков.
// Apply must write the whole LedgerChange atomically or return models.ErrVersionConflict.
type StockRepository interface {
	GetEntry(ctx context.Context, authorityID models.AuthorityID, resourceType models.ResourceType) (*models.StockEntry, error)
	ListEntries(ctx context.Context, authorityID models.AuthorityID) ([]*models.StockEntry, error)
	GetReservation(ctx context.Context, token uuid.UUID) (*models.Reservation, error)
	Apply(ctx context.Context, change models.LedgerChange) error
}

// StockLedger определяет контракт учёта остатков по органам
type StockLedger interface {
	Reserve(ctx context.Context, source models.AuthorityID, resourceType models.ResourceType, qty int64, recipient models.AuthorityID) (*models.Reservation, error)
	Commit(ctx context.Context, token uuid.UUID) (*models.Reservation, error)
	Release(ctx context.Context, token uuid.UUID) (*models.Reservation, error)
	Query(ctx context.Context, authorityID models.AuthorityID, resourceType models.ResourceType) (*models.StockEntry, error)
	List(ctx context.Context, authorityID models.AuthorityID) ([]*models.StockEntry, error)
	Replenish(ctx context.Context, authorityID models.AuthorityID, resourceType models.ResourceType, qty int64) (*models.StockEntry, error)
	Consume(ctx context.Context, authorityID models.AuthorityID, resourceType models.ResourceType, qty int64) (*models.StockEntry, error)
}

type stockLedger struct {
	repo       StockRepository
	directory  AuthorityDirectory
	logger     *logrus.Logger
	maxRetries int
	now        func() time.Time
}

func NewStockLedger(repo StockRepository, directory AuthorityDirectory, logger *logrus.Logger, cfg *config.Config) StockLedger {
	retries := cfg.LedgerMaxRetries
	if retries < 1 {
		retries = 1
	}
	return &stockLedger{
		repo:       repo,
		directory:  directory,
		logger:     logger,
		maxRetries: retries,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Reserve удерживает qty у source в пользу recipient. Не ждёт: при нехватке сразу ErrInsufficientStock.
func (s *stockLedger) Reserve(ctx context.Context, source models.AuthorityID, resourceType models.ResourceType, qty int64, recipient models.AuthorityID) (*models.Reservation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "ledger",
		"method":        "Reserve",
		"authority_id":  source,
		"recipient_id":  recipient,
		"resource_type": resourceType,
		"quantity":      qty,
	})

	if err := s.checkInput(resourceType, qty, source, recipient); err != nil {
		log.WithError(err).Warn("Rejected reservation input")
		return nil, err
	}
	if source == recipient {
		return nil, models.NewValidationError("recipientAuthorityId", "ne", "must differ from the source authority")
	}

	var reservation *models.Reservation
	err := s.withRetry(log, func() error {
		entry, err := s.loadEntry(ctx, source, resourceType)
		if err != nil {
			return err
		}
		if entry.Available < qty {
			return fmt.Errorf("%s holds %d %s of %s, %d requested: %w",
				source, entry.Available, entry.Unit, resourceType, qty, models.ErrInsufficientStock)
		}
		entry.Available -= qty
		entry.AllocatedOut += qty

		now := s.now()
		candidate := &models.Reservation{
			Token:                uuid.New(),
			SourceAuthorityID:    source,
			RecipientAuthorityID: recipient,
			ResourceType:         resourceType,
			Quantity:             qty,
			State:                models.ReservationHeld,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if err := s.repo.Apply(ctx, models.LedgerChange{
			Entries:     []models.StockEntry{entry},
			Reservation: candidate,
		}); err != nil {
			return err
		}
		reservation = candidate
		return nil
	})
	if err != nil {
		if errors.Is(err, models.ErrInsufficientStock) {
			metrics.InsufficientStock.WithLabelValues(string(resourceType)).Inc()
		}
		logFailure(log, err, "Failed to reserve stock")
		return nil, err
	}

	log.WithField("token", reservation.Token).Info("Stock reserved")
	return reservation, nil
}

// Commit переводит резерв в окончательную передачу. Повторный вызов для уже проведённого резерва - no-op.
func (s *stockLedger) Commit(ctx context.Context, token uuid.UUID) (*models.Reservation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "ledger",
		"method":  "Commit",
		"token":   token,
	})

	var result *models.Reservation
	err := s.withRetry(log, func() error {
		res, err := s.repo.GetReservation(ctx, token)
		if err != nil {
			return err
		}
		switch res.State {
		case models.ReservationCommitted:
			result = res
			return nil
		case models.ReservationReleased:
			return &models.TransitionError{Entity: "reservation", From: string(res.State), To: string(models.ReservationCommitted)}
		}

		source, err := s.loadEntry(ctx, res.SourceAuthorityID, res.ResourceType)
		if err != nil {
			return err
		}
		recipient, err := s.loadEntry(ctx, res.RecipientAuthorityID, res.ResourceType)
		if err != nil {
			return err
		}
		if source.AllocatedOut < res.Quantity {
			return fmt.Errorf("ledger inconsistency: %s allocatedOut %d below reservation %d", source.AuthorityID, source.AllocatedOut, res.Quantity)
		}
		source.AllocatedOut -= res.Quantity
		recipient.Available += res.Quantity

		updated := *res
		updated.State = models.ReservationCommitted
		updated.UpdatedAt = s.now()
		if err := s.repo.Apply(ctx, models.LedgerChange{
			Entries:         []models.StockEntry{source, recipient},
			Reservation:     &updated,
			ReservationFrom: models.ReservationHeld,
		}); err != nil {
			return err
		}
		result = &updated
		return nil
	})
	if err != nil {
		logFailure(log, err, "Failed to commit reservation")
		return nil, err
	}

	log.Info("Reservation committed")
	return result, nil
}

// Release отменяет резерв и возвращает количество источнику. Повторный вызов - no-op.
func (s *stockLedger) Release(ctx context.Context, token uuid.UUID) (*models.Reservation, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "ledger",
		"method":  "Release",
		"token":   token,
	})

	var result *models.Reservation
	err := s.withRetry(log, func() error {
		res, err := s.repo.GetReservation(ctx, token)
		if err != nil {
			return err
		}
		switch res.State {
		case models.ReservationReleased:
			result = res
			return nil
		case models.ReservationCommitted:
			return &models.TransitionError{Entity: "reservation", From: string(res.State), To: string(models.ReservationReleased)}
		}

		source, err := s.loadEntry(ctx, res.SourceAuthorityID, res.ResourceType)
		if err != nil {
			return err
		}
		if source.AllocatedOut < res.Quantity {
			return fmt.Errorf("ledger inconsistency: %s allocatedOut %d below reservation %d", source.AuthorityID, source.AllocatedOut, res.Quantity)
		}
		source.AllocatedOut -= res.Quantity
		source.Available += res.Quantity

		updated := *res
		updated.State = models.ReservationReleased
		updated.UpdatedAt = s.now()
		if err := s.repo.Apply(ctx, models.LedgerChange{
			Entries:         []models.StockEntry{source},
			Reservation:     &updated,
			ReservationFrom: models.ReservationHeld,
		}); err != nil {
			return err
		}
		result = &updated
		return nil
	})
	if err != nil {
		logFailure(log, err, "Failed to release reservation")
		return nil, err
	}

	log.Info("Reservation released")
	return result, nil
}

// Query возвращает снимок остатка без блокировок
func (s *stockLedger) Query(ctx context.Context, authorityID models.AuthorityID, resourceType models.ResourceType) (*models.StockEntry, error) {
	if _, err := s.directory.Get(authorityID); err != nil {
		return nil, err
	}
	if resourceType.Unit() == "" {
		return nil, models.NewValidationError("resourceType", "oneof", "must be one of: food, water, medical, shelter")
	}
	entry, err := s.loadEntry(ctx, authorityID, resourceType)
	if err != nil {
		return nil, fmt.Errorf("service: could not query stock: %w", err)
	}
	return &entry, nil
}

// List возвращает остатки по всем типам ресурсов, включая нулевые
func (s *stockLedger) List(ctx context.Context, authorityID models.AuthorityID) ([]*models.StockEntry, error) {
	if _, err := s.directory.Get(authorityID); err != nil {
		return nil, err
	}
	stored, err := s.repo.ListEntries(ctx, authorityID)
	if err != nil {
		return nil, fmt.Errorf("service: could not list stock: %w", err)
	}
	byType := make(map[models.ResourceType]*models.StockEntry, len(stored))
	for _, e := range stored {
		byType[e.ResourceType] = e
	}

	entries := make([]*models.StockEntry, 0, len(models.AllResourceTypes()))
	for _, rt := range models.AllResourceTypes() {
		if e, ok := byType[rt]; ok {
			entries = append(entries, e)
			continue
		}
		entries = append(entries, &models.StockEntry{AuthorityID: authorityID, ResourceType: rt, Unit: rt.Unit()})
	}
	return entries, nil
}

// Replenish - внешнее поступление ресурса (единственный способ увеличить общий запас)
func (s *stockLedger) Replenish(ctx context.Context, authorityID models.AuthorityID, resourceType models.ResourceType, qty int64) (*models.StockEntry, error) {
	return s.adjust(ctx, "Replenish", authorityID, resourceType, qty)
}

// Consume - внешний расход ресурса (выдача на месте)
func (s *stockLedger) Consume(ctx context.Context, authorityID models.AuthorityID, resourceType models.ResourceType, qty int64) (*models.StockEntry, error) {
	return s.adjust(ctx, "Consume", authorityID, resourceType, -qty)
}

func (s *stockLedger) adjust(ctx context.Context, method string, authorityID models.AuthorityID, resourceType models.ResourceType, delta int64) (*models.StockEntry, error) {
	qty := delta
	if qty < 0 {
		qty = -qty
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":       "ledger",
		"method":        method,
		"authority_id":  authorityID,
		"resource_type": resourceType,
		"quantity":      qty,
	})

	if err := s.checkInput(resourceType, qty, authorityID); err != nil {
		log.WithError(err).Warn("Rejected stock adjustment input")
		return nil, err
	}

	var result models.StockEntry
	err := s.withRetry(log, func() error {
		entry, err := s.loadEntry(ctx, authorityID, resourceType)
		if err != nil {
			return err
		}
		if entry.Available+delta < 0 {
			return fmt.Errorf("%s holds %d %s of %s, %d requested: %w",
				authorityID, entry.Available, entry.Unit, resourceType, qty, models.ErrInsufficientStock)
		}
		entry.Available += delta
		if err := s.repo.Apply(ctx, models.LedgerChange{Entries: []models.StockEntry{entry}}); err != nil {
			return err
		}
		entry.Version++
		result = entry
		return nil
	})
	if err != nil {
		logFailure(log, err, "Failed to adjust stock")
		return nil, err
	}

	log.WithField("available", result.Available).Info("Stock adjusted")
	return &result, nil
}

func (s *stockLedger) checkInput(resourceType models.ResourceType, qty int64, authorities ...models.AuthorityID) error {
	verr := &models.ValidationError{}
	if resourceType.Unit() == "" {
		verr.Add("resourceType", "oneof", "must be one of: food, water, medical, shelter")
	}
	if qty <= 0 {
		verr.Add("quantity", "min", "must be at least 1")
	}
	if err := verr.OrNil(); err != nil {
		return err
	}
	for _, id := range authorities {
		if _, err := s.directory.Get(id); err != nil {
			return err
		}
	}
	return nil
}

// loadEntry возвращает нулевую запись с версией 0, если строки ещё нет
func (s *stockLedger) loadEntry(ctx context.Context, authorityID models.AuthorityID, resourceType models.ResourceType) (models.StockEntry, error) {
	entry, err := s.repo.GetEntry(ctx, authorityID, resourceType)
	if errors.Is(err, models.ErrNotFound) {
		return models.StockEntry{AuthorityID: authorityID, ResourceType: resourceType, Unit: resourceType.Unit()}, nil
	}
	if err != nil {
		return models.StockEntry{}, fmt.Errorf("failed to load stock entry: %w", err)
	}
	return *entry, nil
}

// withRetry повторяет оптимистичную операцию, пока CAS проигрывает гонку
func (s *stockLedger) withRetry(log *logrus.Entry, fn func() error) error {
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		err := fn()
		if !errors.Is(err, models.ErrVersionConflict) {
			return err
		}
		metrics.LedgerCASConflicts.Inc()
		log.WithField("attempt", attempt).Debug("Ledger compare-and-swap lost, retrying")
	}
	return fmt.Errorf("ledger update gave up after %d attempts: %w", s.maxRetries, models.ErrConflict)
}
