package models

import "time"

// MissingPersonStatus - состояние дела о пропавшем человеке
type MissingPersonStatus string

const (
	MissingPersonReported MissingPersonStatus = "reported"
	MissingPersonFound    MissingPersonStatus = "found"
	MissingPersonClosed   MissingPersonStatus = "closed"
)

// CanTransition reports whether the missing-person graph allows from -> to.
func (s MissingPersonStatus) CanTransition(to MissingPersonStatus) bool {
	return s == MissingPersonReported && (to == MissingPersonFound || to == MissingPersonClosed)
}

// IsTerminal reports whether the case is closed.
func (s MissingPersonStatus) IsTerminal() bool {
	return s == MissingPersonFound || s == MissingPersonClosed
}

// MissingPersonCase - дело о пропавшем человеке
type MissingPersonCase struct {
	ID               int64               `json:"id"`
	TrackingID       string              `json:"trackingId"`
	FullName         string              `json:"fullName"`
	Age              *int                `json:"age,omitempty"`
	Gender           string              `json:"gender,omitempty"`
	LastSeenLocation string              `json:"lastSeenLocation,omitempty"`
	LastSeen         *Location           `json:"lastSeen,omitempty"`
	Description      string              `json:"description"`
	ReporterName     string              `json:"reporterName"`
	ReporterPhone    string              `json:"reporterPhone"`
	ReporterCNIC     string              `json:"reporterCnic"`
	ProvinceID       int                 `json:"provinceId"`
	DistrictID       int                 `json:"districtId"`
	Status           MissingPersonStatus `json:"status"`
	CloseReason      string              `json:"closeReason,omitempty"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
	FoundAt          *time.Time          `json:"foundAt,omitempty"`
	ClosedAt         *time.Time          `json:"closedAt,omitempty"`
}

// MissingPersonReport is the public report payload.
type MissingPersonReport struct {
	FullName         string   `json:"fullName" validate:"required,min=2,max=150"`
	Age              *int     `json:"age" validate:"omitempty,gte=0,lte=120"`
	Gender           string   `json:"gender" validate:"omitempty,oneof=male female other"`
	LastSeenLocation string   `json:"lastSeenLocation" validate:"max=255"`
	LastSeenLat      *float64 `json:"lastSeenLat" validate:"omitempty,gte=-90,lte=90"`
	LastSeenLng      *float64 `json:"lastSeenLng" validate:"omitempty,gte=-180,lte=180"`
	Description      string   `json:"description" validate:"required,min=5"`
	ReporterName     string   `json:"reporterName" validate:"required,min=2,max=150"`
	ReporterPhone    string   `json:"reporterPhone" validate:"required,pk_phone"`
	ReporterCNIC     string   `json:"reporterCnic" validate:"required,cnic"`
	ProvinceID       int      `json:"provinceId" validate:"required,gt=0"`
	DistrictID       int      `json:"districtId" validate:"required,gt=0"`
}
