package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ResourceType - закрытый перечень типов ресурсов; новый тип добавляется только в коде
type ResourceType string

const (
	ResourceFood    ResourceType = "food"
	ResourceWater   ResourceType = "water"
	ResourceMedical ResourceType = "medical"
	ResourceShelter ResourceType = "shelter"
)

// AllResourceTypes returns every resource type in display order.
func AllResourceTypes() []ResourceType {
	return []ResourceType{ResourceFood, ResourceWater, ResourceMedical, ResourceShelter}
}

// ParseResourceType converts user input into a ResourceType.
func ParseResourceType(raw string) (ResourceType, error) {
	switch rt := ResourceType(strings.ToLower(strings.TrimSpace(raw))); rt {
	case ResourceFood, ResourceWater, ResourceMedical, ResourceShelter:
		return rt, nil
	}
	return "", fmt.Errorf("unknown resource type %q", raw)
}

// Unit returns the accounting unit of the resource.
func (r ResourceType) Unit() string {
	switch r {
	case ResourceFood:
		return "tons"
	case ResourceWater:
		return "liters"
	case ResourceMedical:
		return "kits"
	case ResourceShelter:
		return "tents"
	}
	return ""
}

// StockEntry - остаток ресурса у органа. Version используется для оптимистичной блокировки.
type StockEntry struct {
	AuthorityID  AuthorityID  `json:"authorityId"`
	ResourceType ResourceType `json:"resourceType"`
	Available    int64        `json:"available"`
	AllocatedOut int64        `json:"allocatedOut"`
	Unit         string       `json:"unit"`
	Version      int64        `json:"version"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Physical is the quantity this authority physically holds: free plus reserved for children.
func (e StockEntry) Physical() int64 {
	return e.Available + e.AllocatedOut
}

// ReservationState - состояние резерва в журнале
type ReservationState string

const (
	ReservationHeld      ReservationState = "held"
	ReservationCommitted ReservationState = "committed"
	ReservationReleased  ReservationState = "released"
)

// Reservation - временное удержание количества у источника в пользу получателя
type Reservation struct {
	Token                uuid.UUID        `json:"token"`
	SourceAuthorityID    AuthorityID      `json:"sourceAuthorityId"`
	RecipientAuthorityID AuthorityID      `json:"recipientAuthorityId"`
	ResourceType         ResourceType     `json:"resourceType"`
	Quantity             int64            `json:"quantity"`
	State                ReservationState `json:"state"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
}

// LedgerChange is applied by storage as a single atomic unit.
//
// Every entry carries the version it was read at (0 for a row that does not
// exist yet); storage bumps it on write. ReservationFrom is the state the
// stored reservation must currently be in, or empty to insert a new one.
// Any mismatch aborts the whole change with ErrVersionConflict.
type LedgerChange struct {
	Entries         []StockEntry
	Reservation     *Reservation
	ReservationFrom ReservationState
}
