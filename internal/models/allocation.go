package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Priority is informational for reviewers; approval order is first-come-first-served.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// ParsePriority defaults an empty value to medium.
func ParsePriority(raw string) (Priority, error) {
	switch p := Priority(strings.ToLower(strings.TrimSpace(raw))); p {
	case "":
		return PriorityMedium, nil
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return p, nil
	}
	return "", fmt.Errorf("unknown priority %q", raw)
}

// AllocationStatus - состояние заявки на ресурсы
type AllocationStatus string

const (
	AllocationPending   AllocationStatus = "pending"
	AllocationApproved  AllocationStatus = "approved"
	AllocationRejected  AllocationStatus = "rejected"
	AllocationFulfilled AllocationStatus = "fulfilled"
	AllocationCancelled AllocationStatus = "cancelled"
)

// ParseAllocationStatus validates a status filter value.
func ParseAllocationStatus(raw string) (AllocationStatus, error) {
	switch s := AllocationStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case AllocationPending, AllocationApproved, AllocationRejected, AllocationFulfilled, AllocationCancelled:
		return s, nil
	}
	return "", fmt.Errorf("unknown allocation status %q", raw)
}

// CanTransition reports whether the allocation graph allows from -> to.
func (s AllocationStatus) CanTransition(to AllocationStatus) bool {
	switch s {
	case AllocationPending:
		return to == AllocationApproved || to == AllocationRejected || to == AllocationCancelled
	case AllocationApproved:
		return to == AllocationFulfilled || to == AllocationCancelled
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s AllocationStatus) IsTerminal() bool {
	switch s {
	case AllocationRejected, AllocationFulfilled, AllocationCancelled:
		return true
	default:
		return false
	}
}

// AllocationRequest - заявка дочернего органа на ресурсы родителя
type AllocationRequest struct {
	ID                   uuid.UUID        `json:"id"`
	RequesterAuthorityID AuthorityID      `json:"requesterAuthorityId"`
	TargetAuthorityID    AuthorityID      `json:"targetAuthorityId"`
	ResourceType         ResourceType     `json:"resourceType"`
	Quantity             int64            `json:"quantity"`
	Priority             Priority         `json:"priority"`
	Reason               string           `json:"reason"`
	Notes                string           `json:"notes,omitempty"`
	Status               AllocationStatus `json:"status"`
	ReservationToken     *uuid.UUID       `json:"reservationToken,omitempty"`
	DecisionNote         string           `json:"decisionNote,omitempty"`
	DecidedBy            string           `json:"decidedBy,omitempty"`
	CreatedAt            time.Time        `json:"createdAt"`
	UpdatedAt            time.Time        `json:"updatedAt"`
	DecidedAt            *time.Time       `json:"decidedAt,omitempty"`
	FulfilledAt          *time.Time       `json:"fulfilledAt,omitempty"`
	CancelledAt          *time.Time       `json:"cancelledAt,omitempty"`
}

// AllocationSubmission is the validated input of a new allocation request.
type AllocationSubmission struct {
	RequesterAuthorityID string `json:"requesterAuthorityId" validate:"required"`
	TargetAuthorityID    string `json:"targetAuthorityId" validate:"required"`
	ResourceType         string `json:"resourceType" validate:"required,oneof=food water medical shelter"`
	Quantity             int64  `json:"quantity" validate:"required,min=1"`
	Priority             string `json:"priority" validate:"omitempty,oneof=low medium high critical"`
	Reason               string `json:"reason" validate:"required,max=1000"`
	Notes                string `json:"notes" validate:"max=2000"`
}

// AllocationFilter narrows allocation listings. Empty fields match everything.
type AllocationFilter struct {
	TargetAuthorityID    AuthorityID
	RequesterAuthorityID AuthorityID
	Status               AllocationStatus
}
