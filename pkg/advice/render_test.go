package advice

import (
	"strings"
	"testing"
	"time"

	"github.com/govwatcher/govwatcher/pkg/analysis"
	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/stretchr/testify/assert"
)

func testAnalysis() *models.Analysis {
	return &models.Analysis{
		Fingerprint:    "abc123",
		ChainID:        "testchain-1",
		ProposalID:     7,
		Provider:       "anthropic",
		Recommendation: models.RecommendApprove,
		Confidence:     0.82,
		Reasoning:      "The upgrade is well tested and widely supported.",
		RiskAssessment: models.RiskLow,
	}
}

func testPolicy(tolerance models.RiskLevel) models.Policy {
	return models.Policy{RiskTolerance: tolerance}
}

func TestRenderMapsRecommendationToDecision(t *testing.T) {
	tests := []struct {
		recommendation models.Recommendation
		decision       models.Decision
	}{
		{models.RecommendApprove, models.DecisionYes},
		{models.RecommendReject, models.DecisionNo},
		{models.RecommendAbstain, models.DecisionAbstain},
	}
	sub := models.Subscriber{ID: "sub-1", Policy: testPolicy(models.RiskMedium)}

	for _, tt := range tests {
		a := testAnalysis()
		a.Recommendation = tt.recommendation

		adv := Render(a, sub, time.Now())
		assert.Equal(t, tt.decision, adv.Decision)
		assert.Equal(t, "testchain-1", adv.ChainID)
		assert.Equal(t, int64(7), adv.ProposalID)
		assert.Equal(t, "sub-1", adv.SubscriberID)
		assert.InDelta(t, 0.82, adv.Confidence, 1e-9)
	}
}

func TestRenderRiskWithinTolerance(t *testing.T) {
	a := testAnalysis()
	a.RiskAssessment = models.RiskLow
	sub := models.Subscriber{ID: "sub-1", Policy: testPolicy(models.RiskMedium)}

	adv := Render(a, sub, time.Now())
	assert.True(t, strings.HasPrefix(adv.Rationale,
		"Assessed risk LOW is within your MEDIUM risk tolerance."))
	assert.Contains(t, adv.Rationale, a.Reasoning)
}

func TestRenderRiskExceedsTolerance(t *testing.T) {
	a := testAnalysis()
	a.RiskAssessment = models.RiskHigh
	sub := models.Subscriber{ID: "sub-1", Policy: testPolicy(models.RiskLow)}

	adv := Render(a, sub, time.Now())
	assert.Contains(t, adv.Rationale,
		"Assessed risk HIGH exceeds your LOW risk tolerance; weigh this recommendation accordingly.")
}

func TestRenderEqualRiskIsWithinTolerance(t *testing.T) {
	a := testAnalysis()
	a.RiskAssessment = models.RiskMedium
	sub := models.Subscriber{ID: "sub-1", Policy: testPolicy(models.RiskMedium)}

	adv := Render(a, sub, time.Now())
	assert.Contains(t, adv.Rationale, "is within your MEDIUM risk tolerance")
}

func TestRenderFallbackAnalysisSkipsAlignmentLine(t *testing.T) {
	a := testAnalysis()
	a.Provider = analysis.FallbackProvider
	a.Recommendation = models.RecommendAbstain
	a.Confidence = 0
	a.Reasoning = "no provider available"
	a.RiskAssessment = models.RiskHigh
	sub := models.Subscriber{ID: "sub-1", Policy: testPolicy(models.RiskLow)}

	adv := Render(a, sub, time.Now())
	assert.Equal(t, "no provider available", adv.Rationale,
		"degraded advice leads with the degradation notice")
}

func TestRenderDeterministicExceptCreatedAt(t *testing.T) {
	a := testAnalysis()
	sub := models.Subscriber{ID: "sub-1", Policy: testPolicy(models.RiskMedium)}

	first := Render(a, sub, time.Unix(100, 0))
	second := Render(a, sub, time.Unix(200, 0))

	assert.Equal(t, time.Unix(100, 0), first.CreatedAt)
	assert.Equal(t, time.Unix(200, 0), second.CreatedAt)
	first.CreatedAt = second.CreatedAt
	assert.Equal(t, first, second)
}
