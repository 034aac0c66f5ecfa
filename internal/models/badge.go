package models

import "time"

// BadgeSnapshot - агрегаты для дашборда органа. Не является источником истины.
type BadgeSnapshot struct {
	AuthorityID        AuthorityID            `json:"authorityId"`
	PendingAllocations int                    `json:"pendingAllocations"`
	ActiveSOS          int                    `json:"activeSos"`
	Stock              map[ResourceType]int64 `json:"stock"`
	ComputedAt         time.Time              `json:"computedAt"`
}
