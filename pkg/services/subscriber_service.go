package services

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/govwatcher/govwatcher/ent"
	"github.com/govwatcher/govwatcher/ent/subscriber"
	"github.com/govwatcher/govwatcher/pkg/models"
)

// SubscriberService reads the subscriber directory. Rows are written by
// the external subscription manager; this service never mutates them.
type SubscriberService struct {
	client *ent.Client
}

// NewSubscriberService creates a new SubscriberService
func NewSubscriberService(client *ent.Client) *SubscriberService {
	return &SubscriberService{client: client}
}

// ListSubscribersFor returns the subscribers eligible for the chain at
// the given instant. The chain membership check runs in process since
// chains is a JSON column.
func (s *SubscriberService) ListSubscribersFor(ctx context.Context, chainID string, now time.Time) ([]models.Subscriber, error) {
	rows, err := s.client.Subscriber.Query().
		Where(
			subscriber.Active(true),
			subscriber.ActiveUntilGT(now),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query subscribers for %s: %w", chainID, err)
	}

	out := make([]models.Subscriber, 0, len(rows))
	for _, row := range rows {
		if !slices.Contains(row.Chains, chainID) {
			continue
		}
		out = append(out, subscriberToModel(row))
	}
	return out, nil
}

// Get returns one subscriber by ID.
func (s *SubscriberService) Get(ctx context.Context, subscriberID string) (*models.Subscriber, error) {
	row, err := s.client.Subscriber.Get(ctx, subscriberID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get subscriber %s: %w", subscriberID, err)
	}
	sub := subscriberToModel(row)
	return &sub, nil
}

// CountActive returns the number of currently eligible subscribers.
func (s *SubscriberService) CountActive(ctx context.Context, now time.Time) (int, error) {
	n, err := s.client.Subscriber.Query().
		Where(
			subscriber.Active(true),
			subscriber.ActiveUntilGT(now),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active subscribers: %w", err)
	}
	return n, nil
}

func subscriberToModel(row *ent.Subscriber) models.Subscriber {
	return models.Subscriber{
		ID:      row.ID,
		Address: row.Address,
		Chains:  append([]string(nil), row.Chains...),
		Policy: models.Policy{
			RiskTolerance:   models.RiskLevel(row.RiskTolerance),
			CriteriaWeights: row.CriteriaWeights,
			Blurbs:          append([]string(nil), row.PolicyBlurbs...),
		},
		Active:      row.Active,
		ActiveUntil: row.ActiveUntil,
	}
}
