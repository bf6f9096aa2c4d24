package services

import (
	"time"

	"github.com/govwatcher/govwatcher/pkg/models"
)

func testProposal(chainID string, proposalID int64, status models.ProposalStatus) models.Proposal {
	submit := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	votingEnd := submit.Add(14 * 24 * time.Hour)
	return models.Proposal{
		ChainID:     chainID,
		ProposalID:  proposalID,
		Title:       "Test proposal",
		Description: "A proposal used in tests",
		Status:      status,
		Type:        "/cosmos.gov.v1beta1.TextProposal",
		Proposer:    "cosmos1qqqsyqcyq5rqwzqfpg9scrgwpugpzysnzvmztv",
		SubmitTime:  &submit,
		VotingEnd:   &votingEnd,
	}
}

func testStoredAnalysis(fingerprint string, chainID string, proposalID int64) *models.Analysis {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &models.Analysis{
		Fingerprint:    fingerprint,
		ChainID:        chainID,
		ProposalID:     proposalID,
		Provider:       "anthropic",
		Recommendation: models.RecommendApprove,
		Confidence:     0.8,
		Reasoning:      "Looks sound",
		RiskAssessment: models.RiskLow,
		CreatedAt:      now,
		ExpiresAt:      now.Add(24 * time.Hour),
	}
}
