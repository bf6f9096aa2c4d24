package services

import (
	"context"
	"testing"
	"time"

	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/govwatcher/govwatcher/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisServiceGetAbsent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAnalysisService(client)

	a, err := svc.GetByFingerprint(context.Background(), "deadbeefdeadbeefdeadbeef")
	require.NoError(t, err)
	assert.Nil(t, a)
}

func TestAnalysisServiceSaveRoundtrip(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAnalysisService(client)
	ctx := context.Background()

	in := testStoredAnalysis("aaaa0000bbbb1111cccc2222", "testchain-1", 10)
	in.Details = map[string]interface{}{
		"policy_alignment": "aligned with stated criteria",
	}
	require.NoError(t, svc.Save(ctx, in))

	out, err := svc.GetByFingerprint(ctx, in.Fingerprint)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.Provider, out.Provider)
	assert.Equal(t, in.Recommendation, out.Recommendation)
	assert.InDelta(t, in.Confidence, out.Confidence, 1e-9)
	assert.Equal(t, in.Reasoning, out.Reasoning)
	assert.Equal(t, in.RiskAssessment, out.RiskAssessment)
	assert.Equal(t, "aligned with stated criteria", out.Details["policy_alignment"])
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
	assert.True(t, in.ExpiresAt.Equal(out.ExpiresAt))
}

func TestAnalysisServiceSaveReplacesFingerprint(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAnalysisService(client)
	ctx := context.Background()

	first := testStoredAnalysis("aaaa0000bbbb1111cccc2222", "testchain-1", 10)
	require.NoError(t, svc.Save(ctx, first))

	second := testStoredAnalysis("aaaa0000bbbb1111cccc2222", "testchain-1", 10)
	second.Recommendation = models.RecommendReject
	second.Reasoning = "Reconsidered after expiry"
	require.NoError(t, svc.Save(ctx, second))

	out, err := svc.GetByFingerprint(ctx, first.Fingerprint)
	require.NoError(t, err)
	assert.Equal(t, models.RecommendReject, out.Recommendation)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n, "one row per fingerprint")
}

func TestAnalysisServiceSaveValidation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAnalysisService(client)
	ctx := context.Background()

	missing := testStoredAnalysis("", "testchain-1", 10)
	err := svc.Save(ctx, missing)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	bad := testStoredAnalysis("aaaa0000bbbb1111cccc2222", "testchain-1", 10)
	bad.Recommendation = "maybe"
	err = svc.Save(ctx, bad)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestAnalysisServicePurgeOlderThan(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewAnalysisService(client)
	ctx := context.Background()

	old := testStoredAnalysis("aaaa0000bbbb1111cccc2222", "testchain-1", 10)
	old.CreatedAt = time.Now().UTC().Add(-40 * 24 * time.Hour)
	require.NoError(t, svc.Save(ctx, old))

	fresh := testStoredAnalysis("dddd3333eeee4444ffff5555", "testchain-1", 11)
	require.NoError(t, svc.Save(ctx, fresh))

	purged, err := svc.PurgeOlderThan(ctx, time.Now().UTC().Add(-30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	remaining, err := svc.GetByFingerprint(ctx, fresh.Fingerprint)
	require.NoError(t, err)
	assert.NotNil(t, remaining)
}
