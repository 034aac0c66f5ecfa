package models

import (
	"fmt"
	"strings"
	"time"
)

// EmergencyType - закрытый перечень типов ЧС
type EmergencyType string

const (
	EmergencyMedical  EmergencyType = "medical"
	EmergencyFire     EmergencyType = "fire"
	EmergencyFlood    EmergencyType = "flood"
	EmergencyAccident EmergencyType = "accident"
	EmergencySecurity EmergencyType = "security"
	EmergencyOther    EmergencyType = "other"
)

// ParseEmergencyType converts user input into an EmergencyType.
func ParseEmergencyType(raw string) (EmergencyType, error) {
	switch t := EmergencyType(strings.ToLower(strings.TrimSpace(raw))); t {
	case EmergencyMedical, EmergencyFire, EmergencyFlood, EmergencyAccident, EmergencySecurity, EmergencyOther:
		return t, nil
	}
	return "", fmt.Errorf("unknown emergency type %q", raw)
}

// IsCritical reports whether the type ranks in the life-threatening group.
func (t EmergencyType) IsCritical() bool {
	switch t {
	case EmergencyFire, EmergencyMedical, EmergencyFlood:
		return true
	case EmergencyAccident, EmergencySecurity, EmergencyOther:
		return false
	}
	return false
}

const (
	// CriticalBaseScore лежит выше любого реального числа людей,
	// поэтому критическая группа всегда выше некритической.
	CriticalBaseScore int64 = 1 << 40
	// MaxTriageScore - верхняя граница ручной оценки; любая расчётная оценка ниже.
	MaxTriageScore = 2 * CriticalBaseScore
)

// TriageScore ranks every critical type above every non-critical one;
// within the same group more people means a higher score.
func TriageScore(t EmergencyType, peopleCount int) int64 {
	people := int64(peopleCount)
	if people < 0 {
		people = 0
	}
	if people >= CriticalBaseScore {
		people = CriticalBaseScore - 1
	}
	if t.IsCritical() {
		return CriticalBaseScore + people
	}
	return people
}

// SOSStatus - состояние SOS-запроса
type SOSStatus string

const (
	SOSSubmitted SOSStatus = "submitted"
	SOSTriaged   SOSStatus = "triaged"
	SOSAssigned  SOSStatus = "assigned"
	SOSResolved  SOSStatus = "resolved"
	SOSCancelled SOSStatus = "cancelled"
)

// ParseSOSStatus validates a status filter value.
func ParseSOSStatus(raw string) (SOSStatus, error) {
	switch s := SOSStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case SOSSubmitted, SOSTriaged, SOSAssigned, SOSResolved, SOSCancelled:
		return s, nil
	}
	return "", fmt.Errorf("unknown sos status %q", raw)
}

// CanTransition reports whether the SOS graph allows from -> to.
func (s SOSStatus) CanTransition(to SOSStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if to == SOSCancelled {
		return true
	}
	switch s {
	case SOSSubmitted:
		return to == SOSTriaged
	case SOSTriaged:
		return to == SOSAssigned
	case SOSAssigned:
		return to == SOSResolved
	}
	return false
}

// IsTerminal reports whether the request is closed.
func (s SOSStatus) IsTerminal() bool {
	return s == SOSResolved || s == SOSCancelled
}

// ActiveSOSStatuses lists every non-terminal status.
func ActiveSOSStatuses() []SOSStatus {
	return []SOSStatus{SOSSubmitted, SOSTriaged, SOSAssigned}
}

// Location - координаты и необязательный адрес
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// SOSRequest - экстренный запрос гражданина
type SOSRequest struct {
	ID                int64         `json:"id"`
	TrackingID        string        `json:"trackingId"`
	FullName          string        `json:"fullName"`
	CNIC              string        `json:"cnic"`
	Phone             string        `json:"phone"`
	Location          Location      `json:"location"`
	PeopleCount       int           `json:"peopleCount"`
	EmergencyType     EmergencyType `json:"emergencyType"`
	Description       string        `json:"description"`
	ProvinceID        int           `json:"provinceId"`
	DistrictID        int           `json:"districtId"`
	Status            SOSStatus     `json:"status"`
	PriorityScore     int64         `json:"priorityScore"`
	UrgencyOverridden bool          `json:"urgencyOverridden"`
	AssignedTeamID    string        `json:"assignedTeamId,omitempty"`
	CancelReason      string        `json:"cancelReason,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
	TriagedAt         *time.Time    `json:"triagedAt,omitempty"`
	AssignedAt        *time.Time    `json:"assignedAt,omitempty"`
	ResolvedAt        *time.Time    `json:"resolvedAt,omitempty"`
	CancelledAt       *time.Time    `json:"cancelledAt,omitempty"`
}

// SOSSubmission is the civilian payload. Tags carry the exact public validation contract.
type SOSSubmission struct {
	Name          string   `json:"name" validate:"required,min=2,max=150"`
	Phone         string   `json:"phone" validate:"required,pk_phone"`
	CNIC          string   `json:"cnic" validate:"required,cnic"`
	LocationLat   *float64 `json:"locationLat" validate:"required,gte=-90,lte=90"`
	LocationLng   *float64 `json:"locationLng" validate:"required,gte=-180,lte=180"`
	Location      string   `json:"location" validate:"max=255"`
	PeopleCount   int      `json:"peopleCount" validate:"required,min=1"`
	EmergencyType string   `json:"emergencyType" validate:"required,oneof=medical fire flood accident security other"`
	Description   string   `json:"description" validate:"required,min=5"`
	ProvinceID    int      `json:"provinceId" validate:"required,gt=0"`
	DistrictID    int      `json:"districtId" validate:"required,gt=0"`
}

// SOSFilter narrows SOS listings. Zero values match everything.
type SOSFilter struct {
	ProvinceID int
	DistrictID int
	Status     SOSStatus
	ActiveOnly bool
}
