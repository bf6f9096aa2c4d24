package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/govwatcher/govwatcher/pkg/analysis"
	"github.com/govwatcher/govwatcher/pkg/config"
	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/govwatcher/govwatcher/pkg/services"
	"github.com/govwatcher/govwatcher/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedAnalysis(fingerprint string, age time.Duration) *models.Analysis {
	created := time.Now().UTC().Add(-age)
	return &models.Analysis{
		Fingerprint:    fingerprint,
		ChainID:        "testchain-1",
		ProposalID:     1,
		Provider:       "anthropic",
		Recommendation: models.RecommendApprove,
		Confidence:     0.8,
		Reasoning:      "r",
		RiskAssessment: models.RiskLow,
		CreatedAt:      created,
		ExpiresAt:      created.Add(24 * time.Hour),
	}
}

func TestRetentionSweepPurges(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	analysisService := services.NewAnalysisService(client)
	deliveryService := services.NewDeliveryService(client)
	cache := analysis.NewCache(analysisService, nil)

	require.NoError(t, analysisService.Save(ctx, storedAnalysis("aaaa0000bbbb1111cccc2222", 40*24*time.Hour)))
	require.NoError(t, analysisService.Save(ctx, storedAnalysis("dddd3333eeee4444ffff5555", time.Hour)))

	old := time.Now().UTC().AddDate(0, 0, -100)
	require.NoError(t, deliveryService.Create(ctx, "testchain-1", 1, "sub-1", "m1", old))
	require.NoError(t, deliveryService.Create(ctx, "testchain-1", 2, "sub-1", "m2", time.Now().UTC()))

	svc := NewService(&config.RetentionConfig{
		AnalysisRetentionDays: 30,
		MarkRetentionDays:     90,
	}, cache, deliveryService)
	svc.runAll(ctx)

	n, err := analysisService.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	remaining, err := analysisService.GetByFingerprint(ctx, "dddd3333eeee4444ffff5555")
	require.NoError(t, err)
	assert.NotNil(t, remaining)

	marks, err := deliveryService.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, marks)
}

func TestRetentionSweepKeepsMarksByDefault(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	analysisService := services.NewAnalysisService(client)
	deliveryService := services.NewDeliveryService(client)
	cache := analysis.NewCache(analysisService, nil)

	old := time.Now().UTC().AddDate(0, 0, -365)
	require.NoError(t, deliveryService.Create(ctx, "testchain-1", 1, "sub-1", "m1", old))

	svc := NewService(config.DefaultRetentionConfig(), cache, deliveryService)
	svc.runAll(ctx)

	// Mark retention is opt-in; a zero setting never re-opens a triple
	marks, err := deliveryService.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, marks)
}

func TestServiceStartStop(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)

	analysisService := services.NewAnalysisService(client)
	deliveryService := services.NewDeliveryService(client)
	cache := analysis.NewCache(analysisService, nil)

	svc := NewService(config.DefaultRetentionConfig(), cache, deliveryService)
	svc.Start(context.Background())
	svc.Stop()
}
