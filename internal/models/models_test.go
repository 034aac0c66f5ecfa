package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocationStatus_OnlyForward(t *testing.T) {
	all := []AllocationStatus{AllocationPending, AllocationApproved, AllocationRejected, AllocationFulfilled, AllocationCancelled}
	allowed := map[[2]AllocationStatus]bool{
		{AllocationPending, AllocationApproved}:   true,
		{AllocationPending, AllocationRejected}:   true,
		{AllocationPending, AllocationCancelled}:  true,
		{AllocationApproved, AllocationFulfilled}: true,
		{AllocationApproved, AllocationCancelled}: true,
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]AllocationStatus{from, to}], from.CanTransition(to), "%s -> %s", from, to)
		}
	}
	assert.False(t, AllocationPending.CanTransition(AllocationFulfilled))
}

func TestSOSStatus_Graph(t *testing.T) {
	assert.True(t, SOSSubmitted.CanTransition(SOSTriaged))
	assert.False(t, SOSSubmitted.CanTransition(SOSAssigned))
	assert.True(t, SOSTriaged.CanTransition(SOSAssigned))
	assert.True(t, SOSAssigned.CanTransition(SOSResolved))
	assert.True(t, SOSAssigned.CanTransition(SOSCancelled))
	assert.False(t, SOSResolved.CanTransition(SOSCancelled))
	assert.False(t, SOSCancelled.CanTransition(SOSTriaged))
}

func TestTriageScore(t *testing.T) {
	tests := []struct {
		name         string
		higherType   EmergencyType
		higherPeople int
		lowerType    EmergencyType
		lowerPeople  int
	}{
		{"critical beats regular", EmergencyFlood, 1, EmergencyAccident, 500},
		{"critical beats huge regular group", EmergencyMedical, 1, EmergencyOther, 10_000_000},
		{"more people same type", EmergencyFire, 10, EmergencyFire, 3},
		{"no cap past 99", EmergencyFlood, 100, EmergencyFlood, 99},
		{"thousands of people", EmergencyFlood, 5000, EmergencyFlood, 100},
		{"very large flood", EmergencyFlood, 100_000, EmergencyFlood, 5000},
		{"regular group grows too", EmergencySecurity, 2000, EmergencySecurity, 1999},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Greater(t, TriageScore(tt.higherType, tt.higherPeople), TriageScore(tt.lowerType, tt.lowerPeople))
		})
	}

	assert.Less(t, TriageScore(EmergencyFire, 1_000_000_000), MaxTriageScore)
}

func TestTrackingID_FormatAndNormalize(t *testing.T) {
	assert.Equal(t, "SOS-2026-0007", FormatTrackingID(CaseSOS, 2026, 7))
	assert.Equal(t, "MP-2026-12345", FormatTrackingID(CaseMissingPerson, 2026, 12345))

	id, err := NormalizeTrackingID(" sos-2026-0007 ")
	require.NoError(t, err)
	assert.Equal(t, "SOS-2026-0007", id)

	ct, year, seq, err := ParseTrackingID("Mp-2025-0042")
	require.NoError(t, err)
	assert.Equal(t, CaseMissingPerson, ct)
	assert.Equal(t, 2025, year)
	assert.Equal(t, int64(42), seq)

	for _, bad := range []string{"", "SOS-26-0001", "XX-2026-0001", "SOS-2026-01"} {
		_, err := NormalizeTrackingID(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseAuthorityID(t *testing.T) {
	tier, p, d, err := ParseAuthorityID("district:1:5")
	require.NoError(t, err)
	assert.Equal(t, TierDistrict, tier)
	assert.Equal(t, 1, p)
	assert.Equal(t, 5, d)

	_, _, _, err = ParseAuthorityID("pdma:x")
	assert.Error(t, err)
}

func TestValidationError(t *testing.T) {
	verr := &ValidationError{}
	assert.NoError(t, verr.OrNil())

	verr.Add("cnic", "cnic", "must be exactly 13 digits")
	verr.Add("phone", "pk_phone", "must be a Pakistani mobile number")

	err := verr.OrNil()
	require.Error(t, err)
	var target *ValidationError
	require.True(t, errors.As(err, &target))
	assert.True(t, target.HasField("cnic"))
	assert.Contains(t, err.Error(), "phone")
}

func TestTransitionError_IsInvalidTransition(t *testing.T) {
	err := error(&TransitionError{Entity: "sos", From: "submitted", To: "assigned"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, size         int
		wantPage, wantSize int
	}{
		{1, 20, 1, 20},
		{0, 0, 1, DefaultPageSize},
		{-3, 100, 1, 100},
		{4, 101, 4, DefaultPageSize},
		{2, 1, 2, 1},
	}
	for _, tt := range tests {
		page, size := NormalizePage(tt.page, tt.size)
		assert.Equal(t, tt.wantPage, page)
		assert.Equal(t, tt.wantSize, size)
	}
}
