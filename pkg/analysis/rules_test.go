package analysis

import (
	"context"
	"testing"

	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRulesProvider(t *testing.T) {
	provider := NewRulesProvider("rules")
	ctx := context.Background()

	analyze := func(title, description string, tolerance models.RiskLevel) *Result {
		result, err := provider.Analyze(ctx, models.Proposal{
			ChainID:     "cosmoshub-4",
			ProposalID:  1,
			Title:       title,
			Description: description,
			Status:      models.StatusVoting,
		}, "Cosmos Hub", models.Policy{RiskTolerance: tolerance})
		require.NoError(t, err)
		return result
	}

	t.Run("positive indicators approve", func(t *testing.T) {
		result := analyze("Security improvement for the slashing module", "", models.RiskMedium)
		assert.Equal(t, models.RecommendApprove, result.Recommendation)
		assert.InDelta(t, 0.60, result.Confidence, 1e-9)
	})

	t.Run("negative indicators reject under low tolerance", func(t *testing.T) {
		result := analyze("Increase the base fee", "", models.RiskLow)
		assert.Equal(t, models.RecommendReject, result.Recommendation)
		assert.InDelta(t, 0.65, result.Confidence, 1e-9)
	})

	t.Run("risky change approved under high tolerance", func(t *testing.T) {
		result := analyze("Chain migration to new runtime", "", models.RiskHigh)
		assert.Equal(t, models.RecommendApprove, result.Recommendation)
		assert.InDelta(t, 0.55, result.Confidence, 1e-9)
	})

	t.Run("defaults to abstain", func(t *testing.T) {
		result := analyze("Adopt a community code of conduct", "", models.RiskMedium)
		assert.Equal(t, models.RecommendAbstain, result.Recommendation)
		assert.InDelta(t, 0.40, result.Confidence, 1e-9)
	})

	t.Run("mixed positive and negative falls through", func(t *testing.T) {
		// "security fix" is positive but "fee increase" blocks the approve path
		result := analyze("Security fix funded by a fee increase", "", models.RiskMedium)
		assert.Equal(t, models.RecommendAbstain, result.Recommendation)
	})

	t.Run("always medium risk and flags manual review", func(t *testing.T) {
		result := analyze("Increase the base fee", "", models.RiskLow)
		assert.Equal(t, models.RiskMedium, result.RiskAssessment)
		assert.Contains(t, result.Reasoning, "Manual review recommended")
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		a := analyze("Parameter change for inflation", "", models.RiskHigh)
		b := analyze("Parameter change for inflation", "", models.RiskHigh)
		assert.Equal(t, a, b)
	})
}
