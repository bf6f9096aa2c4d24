package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govwatcher/govwatcher/ent"
	"github.com/govwatcher/govwatcher/ent/deliverymark"
	"github.com/govwatcher/govwatcher/pkg/delivery"
)

// DeliveryService persists delivery marks. The unique index on
// (chain_id, proposal_id, subscriber_id) is the compare-and-insert
// primitive the delivery gate relies on for at-most-once semantics.
type DeliveryService struct {
	client *ent.Client
}

// NewDeliveryService creates a new DeliveryService
func NewDeliveryService(client *ent.Client) *DeliveryService {
	return &DeliveryService{client: client}
}

// Exists reports whether a mark exists for the triple.
func (s *DeliveryService) Exists(ctx context.Context, chainID string, proposalID int64, subscriberID string) (bool, error) {
	found, err := s.client.DeliveryMark.Query().
		Where(
			deliverymark.ChainID(chainID),
			deliverymark.ProposalID(proposalID),
			deliverymark.SubscriberID(subscriberID),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query delivery mark %s/%d/%s: %w", chainID, proposalID, subscriberID, err)
	}
	return found, nil
}

// Create inserts a mark for the triple. A second insert for the same
// triple fails with delivery.ErrAlreadyMarked instead of overwriting.
func (s *DeliveryService) Create(ctx context.Context, chainID string, proposalID int64, subscriberID, messageID string, sentAt time.Time) error {
	err := s.client.DeliveryMark.Create().
		SetID(uuid.New().String()).
		SetChainID(chainID).
		SetProposalID(proposalID).
		SetSubscriberID(subscriberID).
		SetMessageID(messageID).
		SetSentAt(sentAt).
		Exec(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return delivery.ErrAlreadyMarked
		}
		return fmt.Errorf("failed to create delivery mark %s/%d/%s: %w", chainID, proposalID, subscriberID, err)
	}
	return nil
}

// Count returns the number of stored delivery marks.
func (s *DeliveryService) Count(ctx context.Context) (int, error) {
	n, err := s.client.DeliveryMark.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count delivery marks: %w", err)
	}
	return n, nil
}

// PurgeOlderThan removes marks sent before the cutoff. Used by the
// retention sweep; marks inside the retention window are never touched,
// since losing one would re-open a delivered triple.
func (s *DeliveryService) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.DeliveryMark.Delete().
		Where(deliverymark.SentAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge delivery marks before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return n, nil
}
