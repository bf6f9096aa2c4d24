// Package advice materializes cached analyses into per-subscriber advice.
package advice

import (
	"fmt"
	"strings"
	"time"

	"github.com/govwatcher/govwatcher/pkg/analysis"
	"github.com/govwatcher/govwatcher/pkg/models"
)

// Render composes the advice for one (analysis, subscriber) pair.
// Deterministic: regenerating from the same inputs produces identical
// fields except CreatedAt.
func Render(a *models.Analysis, sub models.Subscriber, now time.Time) models.Advice {
	return models.Advice{
		ChainID:      a.ChainID,
		ProposalID:   a.ProposalID,
		SubscriberID: sub.ID,
		Decision:     models.DecisionFor(a.Recommendation),
		Rationale:    rationale(a, sub.Policy),
		Confidence:   a.Confidence,
		CreatedAt:    now,
	}
}

// rationale prefixes the analysis reasoning with a one-line
// policy-alignment statement. The fallback analysis carries no preface so
// its rationale starts with the degradation notice itself.
func rationale(a *models.Analysis, policy models.Policy) string {
	if a.Provider == analysis.FallbackProvider {
		return a.Reasoning
	}
	return alignmentLine(policy.RiskTolerance, a.RiskAssessment) + "\n" + a.Reasoning
}

// alignmentLine states how the assessed risk relates to the subscriber's
// declared tolerance.
func alignmentLine(tolerance, risk models.RiskLevel) string {
	if riskRank(risk) <= riskRank(tolerance) {
		return fmt.Sprintf("Assessed risk %s is within your %s risk tolerance.",
			strings.ToUpper(string(risk)), strings.ToUpper(string(tolerance)))
	}
	return fmt.Sprintf("Assessed risk %s exceeds your %s risk tolerance; weigh this recommendation accordingly.",
		strings.ToUpper(string(risk)), strings.ToUpper(string(tolerance)))
}

func riskRank(r models.RiskLevel) int {
	switch r {
	case models.RiskLow:
		return 0
	case models.RiskMedium:
		return 1
	default:
		return 2
	}
}
