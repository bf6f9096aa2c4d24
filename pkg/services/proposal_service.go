package services

import (
	"context"
	"fmt"
	"time"

	"github.com/govwatcher/govwatcher/ent"
	"github.com/govwatcher/govwatcher/ent/proposal"
	"github.com/govwatcher/govwatcher/pkg/models"
)

// ProposalService persists observed proposal state, one row per
// (chain, proposal) pair.
type ProposalService struct {
	client *ent.Client
}

// NewProposalService creates a new ProposalService
func NewProposalService(client *ent.Client) *ProposalService {
	return &ProposalService{client: client}
}

// Get returns the stored proposal, or (nil, nil) when unknown.
func (s *ProposalService) Get(ctx context.Context, chainID string, proposalID int64) (*models.Proposal, error) {
	row, err := s.client.Proposal.Query().
		Where(
			proposal.ChainID(chainID),
			proposal.ProposalID(proposalID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query proposal %s/%d: %w", chainID, proposalID, err)
	}
	return proposalToModel(row), nil
}

// Upsert stores the observed proposal, creating the row on first
// observation and updating it afterwards.
func (s *ProposalService) Upsert(ctx context.Context, p models.Proposal) error {
	if p.ChainID == "" {
		return NewValidationError("chain_id", "required")
	}
	if !p.Status.IsValid() {
		return NewValidationError("status", fmt.Sprintf("unknown value %q", p.Status))
	}

	existing, err := s.client.Proposal.Query().
		Where(
			proposal.ChainID(p.ChainID),
			proposal.ProposalID(p.ProposalID),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query proposal %s: %w", p.Key(), err)
	}

	if existing == nil {
		create := s.client.Proposal.Create().
			SetID(p.Key()).
			SetChainID(p.ChainID).
			SetProposalID(p.ProposalID).
			SetTitle(p.Title).
			SetDescription(p.Description).
			SetStatus(proposal.Status(p.Status)).
			SetProposalType(p.Type).
			SetProposer(p.Proposer).
			SetNillableSubmitTime(p.SubmitTime).
			SetNillableVotingStart(p.VotingStart).
			SetNillableVotingEnd(p.VotingEnd)

		if err := create.Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				// Lost a create race; fall through to the update path
				return s.Upsert(ctx, p)
			}
			return fmt.Errorf("failed to create proposal %s: %w", p.Key(), err)
		}
		return nil
	}

	update := existing.Update().
		SetTitle(p.Title).
		SetDescription(p.Description).
		SetStatus(proposal.Status(p.Status)).
		SetProposalType(p.Type).
		SetProposer(p.Proposer).
		SetNillableSubmitTime(p.SubmitTime).
		SetNillableVotingStart(p.VotingStart).
		SetNillableVotingEnd(p.VotingEnd)

	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update proposal %s: %w", p.Key(), err)
	}
	return nil
}

// ListByChain returns all stored proposals for a chain, newest first.
func (s *ProposalService) ListByChain(ctx context.Context, chainID string) ([]models.Proposal, error) {
	rows, err := s.client.Proposal.Query().
		Where(proposal.ChainID(chainID)).
		Order(ent.Desc(proposal.FieldProposalID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals for %s: %w", chainID, err)
	}

	out := make([]models.Proposal, 0, len(rows))
	for _, row := range rows {
		out = append(out, *proposalToModel(row))
	}
	return out, nil
}

// CountByStatus returns the per-status row counts for a chain.
func (s *ProposalService) CountByStatus(ctx context.Context, chainID string) (map[string]int, error) {
	counts := make(map[string]int)
	for _, status := range []proposal.Status{
		proposal.StatusDeposit,
		proposal.StatusVoting,
		proposal.StatusPassed,
		proposal.StatusRejected,
		proposal.StatusFailed,
	} {
		n, err := s.client.Proposal.Query().
			Where(
				proposal.ChainID(chainID),
				proposal.StatusEQ(status),
			).
			Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count %s proposals for %s: %w", status, chainID, err)
		}
		if n > 0 {
			counts[string(status)] = n
		}
	}
	return counts, nil
}

func proposalToModel(row *ent.Proposal) *models.Proposal {
	return &models.Proposal{
		ChainID:     row.ChainID,
		ProposalID:  row.ProposalID,
		Title:       row.Title,
		Description: row.Description,
		Status:      models.ProposalStatus(row.Status),
		Type:        row.ProposalType,
		Proposer:    row.Proposer,
		SubmitTime:  cloneTime(row.SubmitTime),
		VotingStart: cloneTime(row.VotingStart),
		VotingEnd:   cloneTime(row.VotingEnd),
	}
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
