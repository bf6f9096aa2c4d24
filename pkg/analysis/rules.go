package analysis

import (
	"context"
	"strings"

	"github.com/govwatcher/govwatcher/pkg/models"
)

// Keyword sets for the deterministic rule provider.
var (
	riskKeywords     = []string{"upgrade", "parameter", "change", "migration", "fork"}
	positiveKeywords = []string{"security", "fix", "improvement", "optimization"}
	negativeKeywords = []string{"increase", "fee", "tax", "inflation", "dilution"}
)

// rulesProvider is the deterministic last resort in the provider chain.
// Pure keyword matching, never fails, needs no network.
type rulesProvider struct {
	name string
}

// NewRulesProvider creates the rule-based provider.
func NewRulesProvider(name string) Provider {
	return &rulesProvider{name: name}
}

func (p *rulesProvider) Name() string {
	return p.name
}

func (p *rulesProvider) Analyze(_ context.Context, proposal models.Proposal, _ string, policy models.Policy) (*Result, error) {
	haystack := strings.ToLower(proposal.Title) + " " + strings.ToLower(proposal.Description)

	hasRisk := containsAny(haystack, riskKeywords)
	hasPositive := containsAny(haystack, positiveKeywords)
	hasNegative := containsAny(haystack, negativeKeywords)

	recommendation := models.RecommendAbstain
	confidence := 0.40
	reasoning := "Rule-based analysis due to AI unavailability. "

	switch {
	case hasPositive && !hasNegative:
		recommendation = models.RecommendApprove
		confidence = 0.60
		reasoning += "Proposal contains positive indicators. "
	case hasNegative && policy.RiskTolerance == models.RiskLow:
		recommendation = models.RecommendReject
		confidence = 0.65
		reasoning += "Proposal contains risk indicators incompatible with low risk tolerance. "
	case hasRisk && policy.RiskTolerance == models.RiskHigh:
		recommendation = models.RecommendApprove
		confidence = 0.55
		reasoning += "Proposal involves changes but organization has high risk tolerance. "
	}

	reasoning += "Manual review recommended for comprehensive analysis."

	return &Result{
		Recommendation: recommendation,
		Confidence:     confidence,
		Reasoning:      reasoning,
		RiskAssessment: models.RiskMedium,
	}, nil
}

func containsAny(haystack string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(haystack, keyword) {
			return true
		}
	}
	return false
}
