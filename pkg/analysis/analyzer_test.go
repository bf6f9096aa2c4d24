package analysis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name   string
	result *Result
	err    error
	calls  int
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) Analyze(_ context.Context, _ models.Proposal, _ string, _ models.Policy) (*Result, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.result, nil
}

func testProposal() models.Proposal {
	votingEnd := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	return models.Proposal{
		ChainID:     "cosmoshub-4",
		ProposalID:  7,
		Title:       "Enable fee market module",
		Description: "Adds EIP-1559 style fee handling.",
		Status:      models.StatusVoting,
		VotingEnd:   &votingEnd,
	}
}

func TestAnalyzerFallbackOrder(t *testing.T) {
	ctx := context.Background()
	policy := models.Policy{RiskTolerance: models.RiskMedium}
	approve := &Result{
		Recommendation: models.RecommendApprove,
		Confidence:     0.8,
		Reasoning:      "looks fine",
		RiskAssessment: models.RiskLow,
	}

	t.Run("first healthy provider wins", func(t *testing.T) {
		first := &stubProvider{name: "claude", result: approve}
		second := &stubProvider{name: "rules", result: approve}
		analyzer := NewAnalyzer([]Provider{first, second}, time.Second, nil)

		a := analyzer.Analyze(ctx, testProposal(), "Cosmos Hub", policy)
		assert.Equal(t, "claude", a.Provider)
		assert.Equal(t, 1, first.calls)
		assert.Equal(t, 0, second.calls)
	})

	t.Run("failure moves to the next provider", func(t *testing.T) {
		first := &stubProvider{name: "claude", err: errors.New("upstream 503")}
		second := &stubProvider{name: "gpt", err: ErrSchema}
		third := &stubProvider{name: "rules", result: approve}
		analyzer := NewAnalyzer([]Provider{first, second, third}, time.Second, nil)

		a := analyzer.Analyze(ctx, testProposal(), "Cosmos Hub", policy)
		assert.Equal(t, "rules", a.Provider)
		assert.Equal(t, models.RecommendApprove, a.Recommendation)
		assert.Equal(t, 1, first.calls)
		assert.Equal(t, 1, second.calls)
	})

	t.Run("total failure yields the fallback analysis", func(t *testing.T) {
		first := &stubProvider{name: "claude", err: errors.New("timeout")}
		second := &stubProvider{name: "rules", err: errors.New("unreachable")}
		analyzer := NewAnalyzer([]Provider{first, second}, time.Second, nil)

		a := analyzer.Analyze(ctx, testProposal(), "Cosmos Hub", policy)
		require.NotNil(t, a)
		assert.Equal(t, FallbackProvider, a.Provider)
		assert.Equal(t, models.RecommendAbstain, a.Recommendation)
		assert.Zero(t, a.Confidence)
		assert.Equal(t, "no provider available", a.Reasoning)
		assert.Equal(t, models.RiskHigh, a.RiskAssessment)
	})

	t.Run("empty provider chain yields the fallback analysis", func(t *testing.T) {
		analyzer := NewAnalyzer(nil, time.Second, nil)

		a := analyzer.Analyze(ctx, testProposal(), "Cosmos Hub", policy)
		assert.Equal(t, FallbackProvider, a.Provider)
		assert.Equal(t, models.RecommendAbstain, a.Recommendation)
	})
}

func TestAnalyzerBuildsAnalysisMetadata(t *testing.T) {
	p := testProposal()
	provider := &stubProvider{name: "claude", result: &Result{
		Recommendation: models.RecommendReject,
		Confidence:     0.7,
		Reasoning:      "fee increase without sunset clause",
		RiskAssessment: models.RiskMedium,
	}}
	analyzer := NewAnalyzer([]Provider{provider}, time.Second, nil)

	before := time.Now().UTC()
	a := analyzer.Analyze(context.Background(), p, "Cosmos Hub", models.Policy{})
	after := time.Now().UTC()

	assert.Equal(t, Fingerprint(p), a.Fingerprint)
	assert.Equal(t, p.ChainID, a.ChainID)
	assert.Equal(t, p.ProposalID, a.ProposalID)
	assert.True(t, !a.CreatedAt.Before(before) && !a.CreatedAt.After(after))
	assert.Equal(t, a.CreatedAt.Add(TTLFor(p.Status)), a.ExpiresAt)
}
