package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/govwatcher/govwatcher/pkg/metrics"
	"github.com/govwatcher/govwatcher/pkg/models"
)

// FallbackProvider tags the deterministic analysis produced when every
// configured provider fails.
const FallbackProvider = "fallback"

// fallbackReasoning is the reasoning text of the all-providers-failed
// analysis. Delivered advice starts with this line, so subscribers can
// tell an informed abstain from a degraded one.
const fallbackReasoning = "no provider available"

// Analyzer runs the ordered provider chain for one proposal and degrades
// to a deterministic fallback when every provider fails.
type Analyzer struct {
	providers   []Provider
	callTimeout time.Duration
	metrics     *metrics.Registry
	logger      *slog.Logger
}

// NewAnalyzer creates an analyzer over the ordered provider chain.
// callTimeout bounds each individual provider call.
func NewAnalyzer(providers []Provider, callTimeout time.Duration, reg *metrics.Registry) *Analyzer {
	return &Analyzer{
		providers:   providers,
		callTimeout: callTimeout,
		metrics:     reg,
		logger:      slog.With("component", "analyzer"),
	}
}

// Analyze produces an Analysis for the proposal under the given policy.
// Providers are tried in order; any failure moves to the next. The method
// never returns an error: total failure yields the ABSTAIN fallback with
// zero confidence so downstream stages always have something to deliver.
func (a *Analyzer) Analyze(ctx context.Context, proposal models.Proposal, chainName string, policy models.Policy) *models.Analysis {
	for _, provider := range a.providers {
		if ctx.Err() != nil {
			break
		}

		callCtx, cancel := context.WithTimeout(ctx, a.callTimeout)
		result, err := provider.Analyze(callCtx, proposal, chainName, policy)
		cancel()

		if err != nil {
			a.logger.Warn("Provider failed, trying next",
				"provider", provider.Name(),
				"proposal", proposal.Key(),
				"permanent", IsPermanentProviderErr(err),
				"error", err)
			continue
		}

		a.metrics.IncAnalysis(provider.Name())
		return a.build(proposal, provider.Name(), result)
	}

	a.logger.Warn("All providers failed, producing fallback analysis",
		"proposal", proposal.Key())
	a.metrics.IncAnalysis(FallbackProvider)

	return a.build(proposal, FallbackProvider, &Result{
		Recommendation: models.RecommendAbstain,
		Confidence:     0.0,
		Reasoning:      fallbackReasoning,
		RiskAssessment: models.RiskHigh,
	})
}

// build attaches a validated result to the proposal's fingerprint with
// the status-aware TTL.
func (a *Analyzer) build(proposal models.Proposal, provider string, result *Result) *models.Analysis {
	now := time.Now().UTC()
	return &models.Analysis{
		Fingerprint:    Fingerprint(proposal),
		ChainID:        proposal.ChainID,
		ProposalID:     proposal.ProposalID,
		Provider:       provider,
		Recommendation: result.Recommendation,
		Confidence:     result.Confidence,
		Reasoning:      result.Reasoning,
		RiskAssessment: result.RiskAssessment,
		Details:        result.Details,
		CreatedAt:      now,
		ExpiresAt:      now.Add(TTLFor(proposal.Status)),
	}
}
