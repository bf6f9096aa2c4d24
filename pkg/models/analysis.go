package models

import "time"

// Recommendation is the analyzer's vote on a proposal.
type Recommendation string

// Recommendation values. These are the analyzer vocabulary; delivered
// advice uses the separate Decision vocabulary (see advice.go).
const (
	RecommendApprove Recommendation = "approve"
	RecommendReject  Recommendation = "reject"
	RecommendAbstain Recommendation = "abstain"
)

// IsValid checks if the recommendation is a known value.
func (r Recommendation) IsValid() bool {
	return r == RecommendApprove || r == RecommendReject || r == RecommendAbstain
}

// RiskLevel grades analyzer risk assessments and subscriber tolerances.
type RiskLevel string

// Risk levels.
const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// IsValid checks if the risk level is a known value.
func (r RiskLevel) IsValid() bool {
	return r == RiskLow || r == RiskMedium || r == RiskHigh
}

// Analysis is the AI-generated opinion attached to one fingerprint.
// Exactly one Analysis exists per fingerprint at any time.
type Analysis struct {
	Fingerprint    string
	ChainID        string
	ProposalID     int64
	Provider       string
	Recommendation Recommendation
	Confidence     float64 // [0, 1]
	Reasoning      string
	RiskAssessment RiskLevel
	Details        map[string]interface{}
	CreatedAt      time.Time
	ExpiresAt      time.Time
}

// Expired reports whether the analysis is past its status-aware TTL.
func (a Analysis) Expired(now time.Time) bool {
	return !a.ExpiresAt.After(now)
}
