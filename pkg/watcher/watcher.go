// Package watcher drives chain observation: it polls each configured
// chain, diffs observed proposals against stored state, and emits change
// events for downstream analysis and delivery.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/govwatcher/govwatcher/pkg/chain"
	"github.com/govwatcher/govwatcher/pkg/metrics"
	"github.com/govwatcher/govwatcher/pkg/models"
)

// ErrCursorCorrupt marks an unreadable cursor record. It is fatal for the
// chain's watch task; the task halts until the cursor is repaired.
var ErrCursorCorrupt = errors.New("chain cursor corrupt")

// ChainClient is the read surface the watcher needs from a chain.
type ChainClient interface {
	ListActive(ctx context.Context) ([]models.ProposalSummary, error)
	Fetch(ctx context.Context, proposalID int64) (*models.Proposal, error)
}

// ProposalStore persists observed proposal state. Get returns (nil, nil)
// for unknown proposals.
type ProposalStore interface {
	Get(ctx context.Context, chainID string, proposalID int64) (*models.Proposal, error)
	Upsert(ctx context.Context, p models.Proposal) error
}

// CursorStore persists per-chain watermarks. Get returns (nil, nil) when
// no cursor exists yet; an unreadable record is reported as
// ErrCursorCorrupt.
type CursorStore interface {
	Get(ctx context.Context, chainID string) (*models.Cursor, error)
	Save(ctx context.Context, c models.Cursor) error
}

// Watcher polls one chain. Tick is safe to call concurrently; runs for
// the same chain are serialized.
type Watcher struct {
	chainID   string
	chainName string
	client    ChainClient
	proposals ProposalStore
	cursors   CursorStore
	emit      func(models.ChangeEvent) bool
	metrics   *metrics.Registry
	logger    *slog.Logger

	mu sync.Mutex
}

// New creates a watcher for one chain. Events are handed to emit
// synchronously during the tick, in observation order; emit reports
// whether it accepted the event. A rejected event leaves the proposal
// unpersisted and unconfirmed so the next tick re-diffs and re-emits it.
func New(chainID, chainName string, client ChainClient, proposals ProposalStore, cursors CursorStore, emit func(models.ChangeEvent) bool, reg *metrics.Registry) *Watcher {
	return &Watcher{
		chainID:   chainID,
		chainName: chainName,
		client:    client,
		proposals: proposals,
		cursors:   cursors,
		emit:      emit,
		metrics:   reg,
		logger:    slog.With("component", "watcher", "chain_id", chainID),
	}
}

// ChainID returns the chain this watcher polls.
func (w *Watcher) ChainID() string {
	return w.chainID
}

// ChainName returns the display name of the watched chain.
func (w *Watcher) ChainName() string {
	return w.chainName
}

// Tick runs one observation pass: list active proposals, re-fetch
// previously tracked ones, diff against stored state, emit events, and
// advance the cursor. A pass that fails entirely leaves the cursor
// unchanged; a partial pass persists what it confirmed.
func (w *Watcher) Tick(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.metrics.IncTick()
	start := time.Now()

	cursor, err := w.cursors.Get(ctx, w.chainID)
	if err != nil {
		if errors.Is(err, ErrCursorCorrupt) {
			return fmt.Errorf("cursor for %s: %w", w.chainID, err)
		}
		return fmt.Errorf("load cursor for %s: %w", w.chainID, err)
	}
	if cursor == nil {
		cursor = &models.Cursor{ChainID: w.chainID}
	}

	observed, err := w.observe(ctx, cursor)
	if err != nil {
		return err
	}
	if len(observed) == 0 {
		w.logger.Debug("Tick observed no proposals", "duration", time.Since(start))
		return nil
	}

	confirmed := w.diffAndPersist(ctx, observed)
	if len(confirmed) == 0 {
		// Every observation was rejected or failed to persist; treat the
		// tick as failed so the cursor stays put.
		return fmt.Errorf("tick for %s confirmed no proposals", w.chainID)
	}

	next := nextCursor(*cursor, confirmed, observed)
	if err := w.cursors.Save(ctx, next); err != nil {
		return fmt.Errorf("save cursor for %s: %w", w.chainID, err)
	}

	w.logger.Info("Tick complete",
		"observed", len(observed),
		"confirmed", len(confirmed),
		"highest_seen", next.HighestSeen,
		"tracked", len(next.Tracked),
		"duration", time.Since(start))
	return nil
}

// observe collects the full proposals for this tick: everything on the
// active list plus everything tracked by the previous cursor, fetched
// individually so status changes on proposals that just left the active
// list are still caught.
func (w *Watcher) observe(ctx context.Context, cursor *models.Cursor) (map[int64]models.Proposal, error) {
	summaries, err := w.client.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active proposals for %s: %w", w.chainID, err)
	}

	fetchSet := make(map[int64]struct{}, len(summaries)+len(cursor.Tracked))
	for _, s := range summaries {
		fetchSet[s.ProposalID] = struct{}{}
	}
	for _, id := range cursor.Tracked {
		fetchSet[id] = struct{}{}
	}

	observed := make(map[int64]models.Proposal, len(fetchSet))
	var fetched, failed int
	for id := range fetchSet {
		p, err := w.client.Fetch(ctx, id)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			// Skip this proposal; the next tick retries it
			failed++
			w.logger.Warn("Failed to fetch proposal",
				"proposal_id", id,
				"permanent", chain.IsPermanent(err),
				"error", err)
			continue
		}
		fetched++
		merge(observed, *p)
	}

	// A fully failed fetch pass with a non-empty fetch set means the
	// chain was unreachable; fail the tick so nothing advances.
	if len(fetchSet) > 0 && fetched == 0 {
		return nil, fmt.Errorf("all %d fetches failed for %s", failed, w.chainID)
	}
	return observed, nil
}

// merge records an observation, resolving same-tick conflicts in favor of
// the status later in the DEPOSIT < VOTING < terminal order.
func merge(observed map[int64]models.Proposal, p models.Proposal) {
	if prev, ok := observed[p.ProposalID]; ok && prev.Status.Rank() >= p.Status.Rank() {
		return
	}
	observed[p.ProposalID] = p
}

// diffAndPersist compares each observation against the stored row, emits
// events, and upserts. It returns the proposals that were confirmed this
// tick (persisted or verified unchanged); only those advance the cursor.
func (w *Watcher) diffAndPersist(ctx context.Context, observed map[int64]models.Proposal) []models.Proposal {
	now := time.Now().UTC()
	confirmed := make([]models.Proposal, 0, len(observed))

	for _, p := range observed {
		stored, err := w.proposals.Get(ctx, w.chainID, p.ProposalID)
		if err != nil {
			w.logger.Warn("Failed to load stored proposal",
				"proposal_id", p.ProposalID,
				"error", err)
			continue
		}

		if stored != nil && p.Status.Rank() < stored.Status.Rank() {
			// Backward transitions do not happen on chain; a provider
			// re-reporting an older status is a stale read
			w.logger.Warn("Ignoring backward status transition",
				"proposal_id", p.ProposalID,
				"stored_status", stored.Status,
				"observed_status", p.Status)
			continue
		}

		var accepted bool
		switch {
		case stored == nil:
			accepted = w.emitEvent(models.ChangeEvent{
				Kind:       models.ChangeNew,
				Proposal:   p,
				ObservedAt: now,
			})
			if accepted && p.Status.IsTerminal() {
				// First sighting already terminal: follow the NEW with a
				// synthetic change so downstream stages see the
				// transition uniformly
				accepted = w.emitEvent(models.ChangeEvent{
					Kind:       models.ChangeUpdated,
					Proposal:   p,
					OldStatus:  p.Status,
					ObservedAt: now,
				})
			}
		case changed(*stored, p):
			accepted = w.emitEvent(models.ChangeEvent{
				Kind:       models.ChangeUpdated,
				Proposal:   p,
				OldStatus:  stored.Status,
				ObservedAt: now,
			})
		default:
			confirmed = append(confirmed, p)
			continue
		}

		if !accepted {
			// Persisting now would make the next diff see no change and
			// never re-emit; leave the row and cursor alone instead
			w.logger.Warn("Change event not accepted, deferring proposal",
				"proposal_id", p.ProposalID,
				"status", p.Status)
			continue
		}

		if err := w.proposals.Upsert(ctx, p); err != nil {
			w.logger.Error("Failed to persist proposal",
				"proposal_id", p.ProposalID,
				"error", err)
			continue
		}
		confirmed = append(confirmed, p)
	}
	return confirmed
}

func (w *Watcher) emitEvent(ev models.ChangeEvent) bool {
	w.metrics.IncEvent(string(ev.Kind))
	w.logger.Info("Change event",
		"kind", ev.Kind,
		"proposal_id", ev.Proposal.ProposalID,
		"status", ev.Proposal.Status,
		"old_status", ev.OldStatus)
	if w.emit == nil {
		return true
	}
	return w.emit(ev)
}

// changed reports whether any analyzable field differs between the stored
// and observed proposal.
func changed(stored, p models.Proposal) bool {
	return stored.Status != p.Status ||
		stored.Title != p.Title ||
		stored.Description != p.Description ||
		!timesEqual(stored.VotingEnd, p.VotingEnd)
}

func timesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// nextCursor advances the watermark from this tick's confirmed
// observations. HighestSeen never decreases; tracked holds the sorted
// non-terminal IDs. Previously tracked IDs that could not be observed
// this tick stay tracked so the next tick retries them.
func nextCursor(old models.Cursor, confirmed []models.Proposal, observed map[int64]models.Proposal) models.Cursor {
	next := models.Cursor{
		ChainID:     old.ChainID,
		HighestSeen: old.HighestSeen,
	}
	tracked := make(map[int64]struct{})
	for _, p := range confirmed {
		if p.ProposalID > next.HighestSeen {
			next.HighestSeen = p.ProposalID
		}
		if !p.Status.IsTerminal() {
			tracked[p.ProposalID] = struct{}{}
		}
	}
	for _, id := range old.Tracked {
		if _, ok := observed[id]; !ok {
			tracked[id] = struct{}{}
		}
	}
	next.Tracked = make([]int64, 0, len(tracked))
	for id := range tracked {
		next.Tracked = append(next.Tracked, id)
	}
	sort.Slice(next.Tracked, func(i, j int) bool { return next.Tracked[i] < next.Tracked[j] })
	return next
}
