package models

import "time"

// Decision is the delivered-advice vocabulary. It is deliberately distinct
// from Recommendation: analyses say APPROVE/REJECT/ABSTAIN, subscribers
// are told YES/NO/ABSTAIN.
type Decision string

// Decision values.
const (
	DecisionYes     Decision = "YES"
	DecisionNo      Decision = "NO"
	DecisionAbstain Decision = "ABSTAIN"
)

// DecisionFor maps a recommendation to the delivered decision.
func DecisionFor(r Recommendation) Decision {
	switch r {
	case RecommendApprove:
		return DecisionYes
	case RecommendReject:
		return DecisionNo
	default:
		return DecisionAbstain
	}
}

// Advice is the per-subscriber materialization of an Analysis for one
// proposal. Transient: produced by the fan-out, consumed by the delivery
// gate, then discarded.
type Advice struct {
	ChainID      string
	ProposalID   int64
	SubscriberID string
	Decision     Decision
	Rationale    string
	Confidence   float64
	CreatedAt    time.Time
}
