package service

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks
//go:generate mockgen -source=ledger.go -destination=mocks/ledger.go -package=mocks
//go:generate mockgen -source=allocation.go -destination=mocks/allocation.go -package=mocks
//go:generate mockgen -source=sos.go -destination=mocks/sos.go -package=mocks
//go:generate mockgen -source=missing_person.go -destination=mocks/missing_person.go -package=mocks
//go:generate mockgen -source=tracking.go -destination=mocks/tracking.go -package=mocks
//go:generate mockgen -source=lookup.go -destination=mocks/lookup.go -package=mocks
//go:generate mockgen -source=badge.go -destination=mocks/badge.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/shenikar/relief_coordination_system/internal/metrics"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/webhook"
	"github.com/sirupsen/logrus"
)

// AuthorityDirectory - чтение неизменяемой иерархии органов (hierarchy.Directory)
type AuthorityDirectory interface {
	Get(id models.AuthorityID) (models.Authority, error)
	Province(provinceID int) (models.Authority, error)
	District(provinceID, districtID int) (models.Authority, error)
	IsParentOf(parent, child models.AuthorityID) bool
}

// Locker сериализует изменения одной сущности. При таймауте ожидания возвращает models.ErrConflict.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

func lockEntity(ctx context.Context, locker Locker, entity, id string) (func(), error) {
	unlock, err := locker.Lock(ctx, entity+":"+id)
	if err != nil {
		if errors.Is(err, models.ErrConflict) {
			metrics.LockContention.WithLabelValues(entity).Inc()
		}
		return nil, err
	}
	return unlock, nil
}

// publish отправляет событие; ошибка доставки не влияет на результат операции
func publish(ctx context.Context, publisher webhook.Publisher, log *logrus.Entry, event webhook.Event) {
	if publisher == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	if err := publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event_type", event.Type).Error("Failed to publish webhook event")
	}
}

// isClientError - ошибки, вызванные запросом клиента, логируются как Warn
func isClientError(err error) bool {
	var verr *models.ValidationError
	return errors.As(err, &verr) ||
		errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrInvalidTransition) ||
		errors.Is(err, models.ErrInsufficientStock) ||
		errors.Is(err, models.ErrConflict)
}

func logFailure(log *logrus.Entry, err error, msg string) {
	if isClientError(err) {
		log.WithError(err).Warn(msg)
		return
	}
	log.WithError(err).Error(msg)
}

func timePtr(t time.Time) *time.Time {
	return &t
}
