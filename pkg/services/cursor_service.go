package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/govwatcher/govwatcher/ent"
	"github.com/govwatcher/govwatcher/ent/chaincursor"
	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/govwatcher/govwatcher/pkg/watcher"
)

// CursorService persists per-chain watch watermarks.
type CursorService struct {
	client *ent.Client
}

// NewCursorService creates a new CursorService
func NewCursorService(client *ent.Client) *CursorService {
	return &CursorService{client: client}
}

// Get returns the chain's cursor, or (nil, nil) when none exists yet. An
// unreadable record is reported as corrupt; the chain's watch task halts
// on it rather than re-observing from zero.
func (s *CursorService) Get(ctx context.Context, chainID string) (*models.Cursor, error) {
	row, err := s.client.ChainCursor.Get(ctx, chainID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		if isCorruptScan(err) {
			return nil, fmt.Errorf("%w: chain %s: %v", watcher.ErrCursorCorrupt, chainID, err)
		}
		return nil, fmt.Errorf("failed to load cursor for %s: %w", chainID, err)
	}

	if row.HighestSeen < 0 {
		return nil, fmt.Errorf("%w: chain %s: negative highest_seen %d", watcher.ErrCursorCorrupt, chainID, row.HighestSeen)
	}
	for _, id := range row.Tracked {
		if id < 0 {
			return nil, fmt.Errorf("%w: chain %s: negative tracked id %d", watcher.ErrCursorCorrupt, chainID, id)
		}
	}

	return &models.Cursor{
		ChainID:     row.ID,
		HighestSeen: row.HighestSeen,
		Tracked:     append([]int64(nil), row.Tracked...),
	}, nil
}

// Save upserts the cursor in one statement so a crash mid-write never
// leaves a partial watermark.
func (s *CursorService) Save(ctx context.Context, c models.Cursor) error {
	if c.ChainID == "" {
		return NewValidationError("chain_id", "required")
	}
	if c.HighestSeen < 0 {
		return NewValidationError("highest_seen", "must be non-negative")
	}

	err := s.client.ChainCursor.Create().
		SetID(c.ChainID).
		SetHighestSeen(c.HighestSeen).
		SetTracked(c.Tracked).
		OnConflictColumns(chaincursor.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save cursor for %s: %w", c.ChainID, err)
	}
	return nil
}

// isCorruptScan distinguishes an undecodable stored record from an
// ordinary query failure.
func isCorruptScan(err error) bool {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &syntaxErr) || errors.As(err, &typeErr)
}
