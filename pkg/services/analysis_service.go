package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govwatcher/govwatcher/ent"
	"github.com/govwatcher/govwatcher/ent/analysis"
	"github.com/govwatcher/govwatcher/pkg/models"
)

// AnalysisService persists analyses keyed by fingerprint. It backs the
// analysis cache, so reads see exactly what the last completed
// computation stored.
type AnalysisService struct {
	client *ent.Client
}

// NewAnalysisService creates a new AnalysisService
func NewAnalysisService(client *ent.Client) *AnalysisService {
	return &AnalysisService{client: client}
}

// GetByFingerprint returns the stored analysis, or (nil, nil) when
// absent.
func (s *AnalysisService) GetByFingerprint(ctx context.Context, fingerprint string) (*models.Analysis, error) {
	row, err := s.client.Analysis.Query().
		Where(analysis.Fingerprint(fingerprint)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query analysis %s: %w", fingerprint, err)
	}
	return analysisToModel(row), nil
}

// Save stores the analysis, replacing any previous row for the same
// fingerprint so the unique index always points at the freshest result.
func (s *AnalysisService) Save(ctx context.Context, a *models.Analysis) error {
	if a.Fingerprint == "" {
		return NewValidationError("fingerprint", "required")
	}
	if !a.Recommendation.IsValid() {
		return NewValidationError("recommendation", fmt.Sprintf("unknown value %q", a.Recommendation))
	}
	if !a.RiskAssessment.IsValid() {
		return NewValidationError("risk_assessment", fmt.Sprintf("unknown value %q", a.RiskAssessment))
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Analysis.Delete().
		Where(analysis.Fingerprint(a.Fingerprint)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear stale analysis %s: %w", a.Fingerprint, err)
	}

	create := tx.Analysis.Create().
		SetID(uuid.New().String()).
		SetFingerprint(a.Fingerprint).
		SetChainID(a.ChainID).
		SetProposalID(a.ProposalID).
		SetProvider(a.Provider).
		SetRecommendation(analysis.Recommendation(a.Recommendation)).
		SetConfidence(a.Confidence).
		SetReasoning(a.Reasoning).
		SetRiskAssessment(analysis.RiskAssessment(a.RiskAssessment)).
		SetCreatedAt(a.CreatedAt).
		SetExpiresAt(a.ExpiresAt)
	if a.Details != nil {
		create.SetDetails(a.Details)
	}

	if err := create.Exec(ctx); err != nil {
		return fmt.Errorf("failed to store analysis %s: %w", a.Fingerprint, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit analysis %s: %w", a.Fingerprint, err)
	}
	return nil
}

// PurgeOlderThan removes analyses created before the cutoff regardless of
// status and returns how many were deleted.
func (s *AnalysisService) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Analysis.Delete().
		Where(analysis.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge analyses before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return n, nil
}

// Count returns the number of stored analyses.
func (s *AnalysisService) Count(ctx context.Context) (int, error) {
	n, err := s.client.Analysis.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count analyses: %w", err)
	}
	return n, nil
}

func analysisToModel(row *ent.Analysis) *models.Analysis {
	return &models.Analysis{
		Fingerprint:    row.Fingerprint,
		ChainID:        row.ChainID,
		ProposalID:     row.ProposalID,
		Provider:       row.Provider,
		Recommendation: models.Recommendation(row.Recommendation),
		Confidence:     row.Confidence,
		Reasoning:      row.Reasoning,
		RiskAssessment: models.RiskLevel(row.RiskAssessment),
		Details:        row.Details,
		CreatedAt:      row.CreatedAt,
		ExpiresAt:      row.ExpiresAt,
	}
}
