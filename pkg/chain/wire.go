package chain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/govwatcher/govwatcher/pkg/models"
)

// Field limits applied before anything downstream sees a proposal.
// LLM prompts and notification bodies both depend on these bounds.
const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
)

// proposalsResponse is the /cosmos/gov/v1beta1/proposals wire shape.
type proposalsResponse struct {
	Proposals  []rawProposal `json:"proposals"`
	Pagination struct {
		NextKey string `json:"next_key"`
		Total   string `json:"total"`
	} `json:"pagination"`
}

// proposalResponse is the /cosmos/gov/v1beta1/proposals/{id} wire shape.
type proposalResponse struct {
	Proposal rawProposal `json:"proposal"`
}

// rawProposal is one proposal as the gov module's REST API serves it.
// proposal_id arrives as a decimal string, timestamps as RFC3339.
type rawProposal struct {
	ProposalID      string      `json:"proposal_id"`
	Content         *rawContent `json:"content"`
	Status          string      `json:"status"`
	SubmitTime      string      `json:"submit_time"`
	VotingStartTime string      `json:"voting_start_time"`
	VotingEndTime   string      `json:"voting_end_time"`
	Proposer        string      `json:"proposer"`
}

// rawContent is the nested proposal content envelope.
type rawContent struct {
	Type        string `json:"@type"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// statusFromWire maps the gov module's PROPOSAL_STATUS_* constants onto
// the internal vocabulary.
func statusFromWire(wire string) (models.ProposalStatus, error) {
	switch wire {
	case "PROPOSAL_STATUS_DEPOSIT_PERIOD":
		return models.StatusDeposit, nil
	case "PROPOSAL_STATUS_VOTING_PERIOD":
		return models.StatusVoting, nil
	case "PROPOSAL_STATUS_PASSED":
		return models.StatusPassed, nil
	case "PROPOSAL_STATUS_REJECTED":
		return models.StatusRejected, nil
	case "PROPOSAL_STATUS_FAILED":
		return models.StatusFailed, nil
	default:
		return "", fmt.Errorf("unknown proposal status %q", wire)
	}
}

// parseProposal converts one wire proposal into the domain type, applying
// field limits and tolerant timestamp parsing. Proposals with an
// unparseable ID or status are rejected; missing timestamps are not.
func parseProposal(chainID string, raw rawProposal) (models.Proposal, error) {
	id, err := strconv.ParseInt(raw.ProposalID, 10, 64)
	if err != nil {
		return models.Proposal{}, fmt.Errorf("parse proposal_id %q: %w", raw.ProposalID, err)
	}

	status, err := statusFromWire(raw.Status)
	if err != nil {
		return models.Proposal{}, err
	}

	title := fmt.Sprintf("Proposal #%d", id)
	description := "No description available"
	contentType := ""
	if raw.Content != nil {
		contentType = raw.Content.Type
		if raw.Content.Title != "" {
			title = raw.Content.Title
		} else if raw.Content.Type != "" {
			title = raw.Content.Type
		}
		if raw.Content.Description != "" {
			description = raw.Content.Description
		}
	}

	return models.Proposal{
		ChainID:     chainID,
		ProposalID:  id,
		Title:       truncate(strings.TrimSpace(title), maxTitleLen),
		Description: truncate(strings.TrimSpace(description), maxDescriptionLen),
		Status:      status,
		Type:        contentType,
		Proposer:    raw.Proposer,
		SubmitTime:  parseTimestamp(raw.SubmitTime),
		VotingStart: parseTimestamp(raw.VotingStartTime),
		VotingEnd:   parseTimestamp(raw.VotingEndTime),
	}, nil
}

// parseTimestamp parses an RFC3339 timestamp, returning nil for absent or
// zero values. Some chains report unset voting times as 0001-01-01.
func parseTimestamp(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil || t.IsZero() || t.Year() <= 1 {
		return nil
	}
	return &t
}

// truncate cuts s to at most limit bytes, backing off to the previous
// rune boundary so the result stays valid UTF-8.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
