package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/publisher.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	webhookQueueKey = "webhook_events"
)

// Типы событий, которые получает внешний сервис уведомлений (SMS/email)
const (
	EventSOSSubmitted           = "sos.submitted"
	EventSOSStatusChanged       = "sos.status_changed"
	EventMissingPersonReported  = "missing_person.reported"
	EventMissingPersonChanged   = "missing_person.status_changed"
	EventAllocationSubmitted    = "allocation.submitted"
	EventAllocationStatusChange = "allocation.status_changed"
)

// Event - структура для данных вебхука
type Event struct {
	Type        string    `json:"type"`
	EntityID    string    `json:"entityId"`
	TrackingID  string    `json:"trackingId,omitempty"`
	Status      string    `json:"status"`
	AuthorityID string    `json:"authorityId,omitempty"`
	Phone       string    `json:"phone,omitempty"` // номер для SMS-уведомления гражданина
	Message     string    `json:"message,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Publisher - интерфейс для публикации вебхуков
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// RedisPublisher - реализация Publisher, использующая Redis
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH + BRPOP в воркере дают FIFO
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}

// LogPublisher только пишет событие в лог; используется без Redis (STORAGE_DRIVER=memory)
type LogPublisher struct {
	logger *logrus.Logger
}

// NewLogPublisher создает LogPublisher
func NewLogPublisher(logger *logrus.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish пишет событие в лог
func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	p.logger.WithFields(logrus.Fields{
		"event_type":  event.Type,
		"entity_id":   event.EntityID,
		"tracking_id": event.TrackingID,
		"status":      event.Status,
	}).Debug("Webhook event (not delivered: no queue configured)")
	return nil
}
