// Package models defines the domain types shared across pipeline stages.
package models

import (
	"fmt"
	"time"
)

// ProposalStatus is the lifecycle state of a governance proposal.
type ProposalStatus string

// Proposal status values, ordered DEPOSIT < VOTING < terminal.
const (
	StatusDeposit  ProposalStatus = "deposit"
	StatusVoting   ProposalStatus = "voting"
	StatusPassed   ProposalStatus = "passed"
	StatusRejected ProposalStatus = "rejected"
	StatusFailed   ProposalStatus = "failed"
)

// IsValid checks if the proposal status is a known value.
func (s ProposalStatus) IsValid() bool {
	switch s {
	case StatusDeposit, StatusVoting, StatusPassed, StatusRejected, StatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status ends polling for this proposal.
func (s ProposalStatus) IsTerminal() bool {
	return s == StatusPassed || s == StatusRejected || s == StatusFailed
}

// Rank orders statuses along the forward-only transition order.
// DEPOSIT < VOTING < PASSED/REJECTED/FAILED; the three terminal states
// share a rank.
func (s ProposalStatus) Rank() int {
	switch s {
	case StatusDeposit:
		return 0
	case StatusVoting:
		return 1
	case StatusPassed, StatusRejected, StatusFailed:
		return 2
	default:
		return -1
	}
}

// Proposal is the observed state of one governance proposal on one chain.
// Keyed by (ChainID, ProposalID).
type Proposal struct {
	ChainID     string
	ProposalID  int64
	Title       string
	Description string
	Status      ProposalStatus
	Type        string
	Proposer    string
	SubmitTime  *time.Time
	VotingStart *time.Time
	VotingEnd   *time.Time
}

// Key returns the composite identity <chainID>/<proposalID>.
func (p Proposal) Key() string {
	return fmt.Sprintf("%s/%d", p.ChainID, p.ProposalID)
}

// ProposalSummary is the listing form returned by ListActive: identity and
// status only, without the full body.
type ProposalSummary struct {
	ChainID    string
	ProposalID int64
	Status     ProposalStatus
}

// ChangeKind distinguishes watcher events.
type ChangeKind string

// Watcher event kinds.
const (
	ChangeNew     ChangeKind = "new"
	ChangeUpdated ChangeKind = "changed"
)

// ChangeEvent is emitted by the watcher when a proposal is first observed
// or any analyzable field differs from the stored row.
type ChangeEvent struct {
	Kind       ChangeKind
	Proposal   Proposal
	OldStatus  ProposalStatus // zero value for ChangeNew
	ObservedAt time.Time
}
