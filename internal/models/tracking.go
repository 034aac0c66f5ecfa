package models

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// CaseType - тип публичного дела
type CaseType string

const (
	CaseSOS           CaseType = "SOS"
	CaseMissingPerson CaseType = "MP"
)

// ParseCaseType accepts the prefix in any letter case.
func ParseCaseType(raw string) (CaseType, error) {
	switch ct := CaseType(strings.ToUpper(strings.TrimSpace(raw))); ct {
	case CaseSOS, CaseMissingPerson:
		return ct, nil
	}
	return "", fmt.Errorf("unknown case type %q", raw)
}

var trackingIDPattern = regexp.MustCompile(`^(?i)(SOS|MP)-(\d{4})-(\d{4,})$`)

// FormatTrackingID renders <PREFIX>-<YEAR>-<SEQ>, SEQ zero-padded to four digits.
func FormatTrackingID(caseType CaseType, year int, seq int64) string {
	return fmt.Sprintf("%s-%04d-%04d", caseType, year, seq)
}

// NormalizeTrackingID validates the format and upper-cases the prefix.
func NormalizeTrackingID(raw string) (string, error) {
	m := trackingIDPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", fmt.Errorf("malformed tracking id %q", raw)
	}
	return strings.ToUpper(m[1]) + "-" + m[2] + "-" + m[3], nil
}

// ParseTrackingID splits a tracking ID into its parts.
func ParseTrackingID(raw string) (CaseType, int, int64, error) {
	m := trackingIDPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return "", 0, 0, fmt.Errorf("malformed tracking id %q", raw)
	}
	year, _ := strconv.Atoi(m[2])
	seq, err := strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("malformed tracking sequence %q: %w", raw, err)
	}
	return CaseType(strings.ToUpper(m[1])), year, seq, nil
}

// TrackingRecord - неизменяемая связь публичного ID с внутренним делом
type TrackingRecord struct {
	TrackingID string    `json:"trackingId"`
	CaseType   CaseType  `json:"caseType"`
	InternalID int64     `json:"internalId"`
	CNIC       string    `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CaseSummary is the public answer to a tracking lookup.
type CaseSummary struct {
	TrackingID    string    `json:"trackingId"`
	CaseType      CaseType  `json:"caseType"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submittedAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	Summary       string    `json:"summary"`
}
