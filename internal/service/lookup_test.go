package service

import (
	"context"
	"testing"

	"github.com/shenikar/relief_coordination_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseLookup_ByTrackingID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req, err := env.sos.Submit(ctx, aliKhan())
	require.NoError(t, err)
	_, err = env.sos.Triage(ctx, req.ID, nil)
	require.NoError(t, err)

	summary, err := env.lookup.ByTrackingID(ctx, req.TrackingID)
	require.NoError(t, err)
	assert.Equal(t, req.TrackingID, summary.TrackingID)
	assert.Equal(t, models.CaseSOS, summary.CaseType)
	assert.Equal(t, "triaged", summary.Status)
	assert.Equal(t, req.CreatedAt, summary.SubmittedAt)
	assert.False(t, summary.LastUpdatedAt.Before(summary.SubmittedAt))
	assert.Contains(t, summary.Summary, "flood emergency, 3 people affected")
	assert.Contains(t, summary.Summary, "Rawalpindi")

	_, err = env.lookup.ByTrackingID(ctx, "SOS-1999-0001")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCaseLookup_ByCNICCoversBothCaseTypes(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	sosReq, err := env.sos.Submit(ctx, aliKhan())
	require.NoError(t, err)

	report := zainabReport()
	report.ReporterCNIC = aliKhan().CNIC
	mpCase, err := env.missing.Report(ctx, report)
	require.NoError(t, err)

	summaries, err := env.lookup.ByCNIC(ctx, aliKhan().CNIC)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	ids := []string{summaries[0].TrackingID, summaries[1].TrackingID}
	assert.ElementsMatch(t, []string{sosReq.TrackingID, mpCase.TrackingID}, ids)
	for _, s := range summaries {
		if s.CaseType == models.CaseMissingPerson {
			assert.Equal(t, "reported", s.Status)
			assert.Contains(t, s.Summary, "Zainab Bibi")
		}
	}

	_, err = env.lookup.ByCNIC(ctx, "12345")
	assert.Equal(t, []string{"cnic"}, violationFields(t, err))
}
