package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/shenikar/relief_coordination_system/internal/service"
)

// BadgeCache хранит снимки бейджей в Redis
type BadgeCache struct {
	redisClient *redis.Client
}

func NewBadgeCache(redisClient *redis.Client) service.BadgeCache {
	return &BadgeCache{redisClient: redisClient}
}

func badgeKey(authorityID models.AuthorityID) string {
	return fmt.Sprintf("badges:%s", authorityID)
}

// Get пытается получить снимок из Redis. Промах - (nil, nil).
func (c *BadgeCache) Get(ctx context.Context, authorityID models.AuthorityID) (*models.BadgeSnapshot, error) {
	val, err := c.redisClient.Get(ctx, badgeKey(authorityID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get badges from cache: %w", err)
	}

	snapshot := &models.BadgeSnapshot{}
	if err := json.Unmarshal(val, snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal badges from cache: %w", err)
	}
	return snapshot, nil
}

// Set сохраняет снимок на время ttl
func (c *BadgeCache) Set(ctx context.Context, snapshot *models.BadgeSnapshot, ttl time.Duration) error {
	val, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal badges for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, badgeKey(snapshot.AuthorityID), val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set badges in cache: %w", err)
	}
	return nil
}
