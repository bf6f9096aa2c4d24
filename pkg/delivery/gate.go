// Package delivery enforces at-most-once notification per
// (chain, proposal, subscriber) across restarts and retries.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/govwatcher/govwatcher/pkg/metrics"
	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/govwatcher/govwatcher/pkg/notify"
)

// ErrAlreadyMarked is returned by MarkStore.Create when the triple
// already has a mark. Implementations map their duplicate-key error onto
// this sentinel.
var ErrAlreadyMarked = errors.New("delivery mark already exists")

// MarkStore is the durable idempotency record store. Create must be a
// compare-and-insert: it fails with ErrAlreadyMarked instead of
// overwriting.
type MarkStore interface {
	Exists(ctx context.Context, chainID string, proposalID int64, subscriberID string) (bool, error)
	Create(ctx context.Context, chainID string, proposalID int64, subscriberID, messageID string, sentAt time.Time) error
}

// Outcome summarizes one Deliver call.
type Outcome string

// Deliver outcomes.
const (
	OutcomeDelivered Outcome = "delivered"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomePaused    Outcome = "paused"
	OutcomeFailed    Outcome = "failed"
)

// Send retry schedule for transient notifier errors: three retries after
// the initial attempt, so four sends total. The 1s-4s-16s wait ladder
// needs all three retries to reach its 16s ceiling; counting the first
// attempt as a retry would cap the wait at 4s.
const (
	sendRetries     = 3
	sendBackoffBase = 1 * time.Second
	sendBackoffMax  = 16 * time.Second

	// Mark persistence after an accepted send retries indefinitely; this
	// caps the delay between attempts.
	markBackoffMax = 30 * time.Second
)

// Gate serializes deliveries per key and persists marks so a triple is
// never notified twice.
type Gate struct {
	marks       MarkStore
	notifier    notify.Notifier
	sendTimeout time.Duration
	locks       *keyedMutex
	paused      atomic.Bool
	metrics     *metrics.Registry
	logger      *slog.Logger

	// backoffBase is sendBackoffBase in production; tests shrink it
	backoffBase time.Duration
}

// NewGate creates a delivery gate.
func NewGate(marks MarkStore, notifier notify.Notifier, sendTimeout time.Duration, reg *metrics.Registry) *Gate {
	return &Gate{
		marks:       marks,
		notifier:    notifier,
		sendTimeout: sendTimeout,
		locks:       newKeyedMutex(),
		metrics:     reg,
		logger:      slog.With("component", "delivery_gate"),
		backoffBase: sendBackoffBase,
	}
}

// SetPaused toggles the process-wide delivery pause flag.
func (g *Gate) SetPaused(paused bool) {
	g.paused.Store(paused)
	g.logger.Info("Delivery pause flag changed", "paused", paused)
}

// Paused reports the pause flag.
func (g *Gate) Paused() bool {
	return g.paused.Load()
}

// Deliver sends one advice to one subscriber unless a mark already exists
// for the (chain, proposal, subscriber) triple. Transient notifier errors
// are retried with backoff inside the call; a permanent error is counted
// and dropped without a mark, so a future manual pass may retry it.
func (g *Gate) Deliver(ctx context.Context, adv models.Advice, sub models.Subscriber, subject, body string) (Outcome, error) {
	if g.paused.Load() {
		return OutcomePaused, nil
	}

	key := fmt.Sprintf("%s/%d/%s", adv.ChainID, adv.ProposalID, adv.SubscriberID)

	// Lock-free probe first; most duplicates are caught here
	exists, err := g.marks.Exists(ctx, adv.ChainID, adv.ProposalID, adv.SubscriberID)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("probe delivery mark %s: %w", key, err)
	}
	if exists {
		g.metrics.IncDuplicateDropped()
		return OutcomeDuplicate, nil
	}

	g.locks.Lock(key)
	defer g.locks.Unlock(key)

	// Double-check under the lock
	exists, err = g.marks.Exists(ctx, adv.ChainID, adv.ProposalID, adv.SubscriberID)
	if err != nil {
		return OutcomeFailed, fmt.Errorf("re-probe delivery mark %s: %w", key, err)
	}
	if exists {
		g.metrics.IncDuplicateDropped()
		return OutcomeDuplicate, nil
	}

	messageID, err := g.send(ctx, sub.Address, subject, body)
	if err != nil {
		kind := "permanent"
		if notify.IsTransient(err) {
			kind = "transient"
		}
		g.metrics.IncDeliveryFailure(kind)
		g.logger.Error("Notifier send failed",
			"key", key,
			"kind", kind,
			"error", err)
		return OutcomeFailed, err
	}

	// The notifier accepted; an accepted-but-unmarked state would produce
	// a duplicate on the next pass, so persistence retries until it lands
	// and shutdown does not abort it.
	g.persistMark(context.WithoutCancel(ctx), key, adv, messageID)

	g.metrics.IncDelivery()
	return OutcomeDelivered, nil
}

// send calls the notifier, retrying transient failures on the 1s to 16s
// schedule.
func (g *Gate) send(ctx context.Context, address, subject, body string) (string, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.backoffBase
	b.MaxInterval = sendBackoffMax
	b.Multiplier = 4
	b.MaxElapsedTime = 0
	b.Reset()

	var lastErr error
	for attempt := 0; attempt <= sendRetries; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, g.sendTimeout)
		messageID, err := g.notifier.Send(sendCtx, address, subject, body)
		cancel()

		if err == nil {
			return messageID, nil
		}
		lastErr = err

		if !notify.IsTransient(err) || attempt == sendRetries {
			break
		}

		select {
		case <-time.After(b.NextBackOff()):
		case <-ctx.Done():
			return "", fmt.Errorf("%w: %v", notify.ErrTransient, ctx.Err())
		}
	}
	return "", lastErr
}

// persistMark stores the delivery mark, retrying indefinitely. A mark
// that already exists means another writer won a cross-process race after
// our send; the triple is marked either way, which is what matters.
func (g *Gate) persistMark(ctx context.Context, key string, adv models.Advice, messageID string) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = g.backoffBase
	b.MaxInterval = markBackoffMax
	b.MaxElapsedTime = 0
	b.Reset()

	for {
		err := g.marks.Create(ctx, adv.ChainID, adv.ProposalID, adv.SubscriberID, messageID, time.Now().UTC())
		if err == nil || errors.Is(err, ErrAlreadyMarked) {
			return
		}

		wait := b.NextBackOff()
		g.logger.Error("Failed to persist delivery mark, retrying",
			"key", key,
			"wait", wait,
			"error", err)
		time.Sleep(wait)
	}
}
