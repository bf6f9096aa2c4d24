package analysis

import (
	"testing"

	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResult(t *testing.T) {
	t.Run("parses a complete response", func(t *testing.T) {
		raw := `{
			"recommendation": "APPROVE",
			"confidence": 85,
			"reasoning": "Well-scoped parameter change with community support.",
			"risk_assessment": "LOW",
			"policy_alignment": 90,
			"key_considerations": ["audited", "reversible"]
		}`

		result, err := ParseResult(raw)
		require.NoError(t, err)
		assert.Equal(t, models.RecommendApprove, result.Recommendation)
		assert.InDelta(t, 0.85, result.Confidence, 1e-9)
		assert.Equal(t, models.RiskLow, result.RiskAssessment)
		assert.Equal(t, 90.0, result.Details["policy_alignment"])
		assert.Equal(t, []string{"audited", "reversible"}, result.Details["key_considerations"])
	})

	t.Run("strips markdown code fences", func(t *testing.T) {
		raw := "```json\n{\"recommendation\": \"REJECT\", \"confidence\": 70, \"reasoning\": \"fee increase\", \"risk_assessment\": \"MEDIUM\"}\n```"

		result, err := ParseResult(raw)
		require.NoError(t, err)
		assert.Equal(t, models.RecommendReject, result.Recommendation)
		assert.InDelta(t, 0.70, result.Confidence, 1e-9)
	})

	t.Run("accepts lowercase vocabulary", func(t *testing.T) {
		raw := `{"recommendation": "abstain", "confidence": 40, "reasoning": "unclear scope", "risk_assessment": "high"}`

		result, err := ParseResult(raw)
		require.NoError(t, err)
		assert.Equal(t, models.RecommendAbstain, result.Recommendation)
		assert.Equal(t, models.RiskHigh, result.RiskAssessment)
	})

	t.Run("omits details when no optional fields present", func(t *testing.T) {
		raw := `{"recommendation": "APPROVE", "confidence": 50, "reasoning": "ok", "risk_assessment": "LOW"}`

		result, err := ParseResult(raw)
		require.NoError(t, err)
		assert.Nil(t, result.Details)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		tests := []struct {
			name string
			raw  string
		}{
			{"not JSON", "the proposal looks fine to me"},
			{"missing recommendation", `{"confidence": 50, "reasoning": "x", "risk_assessment": "LOW"}`},
			{"unknown recommendation", `{"recommendation": "MAYBE", "confidence": 50, "reasoning": "x", "risk_assessment": "LOW"}`},
			{"missing confidence", `{"recommendation": "APPROVE", "reasoning": "x", "risk_assessment": "LOW"}`},
			{"confidence out of range", `{"recommendation": "APPROVE", "confidence": 140, "reasoning": "x", "risk_assessment": "LOW"}`},
			{"negative confidence", `{"recommendation": "APPROVE", "confidence": -5, "reasoning": "x", "risk_assessment": "LOW"}`},
			{"missing reasoning", `{"recommendation": "APPROVE", "confidence": 50, "risk_assessment": "LOW"}`},
			{"blank reasoning", `{"recommendation": "APPROVE", "confidence": 50, "reasoning": "  ", "risk_assessment": "LOW"}`},
			{"missing risk", `{"recommendation": "APPROVE", "confidence": 50, "reasoning": "x"}`},
			{"unknown risk", `{"recommendation": "APPROVE", "confidence": 50, "reasoning": "x", "risk_assessment": "EXTREME"}`},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := ParseResult(tt.raw)
				assert.Error(t, err)
			})
		}
	})
}
