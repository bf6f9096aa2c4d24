package watcher

import (
	"context"
	"errors"
	"testing"

	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChain serves canned listings and proposals.
type fakeChain struct {
	active    []models.ProposalSummary
	proposals map[int64]models.Proposal
	listErr   error
	fetchErr  map[int64]error
}

func (f *fakeChain) ListActive(context.Context) ([]models.ProposalSummary, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.active, nil
}

func (f *fakeChain) Fetch(_ context.Context, proposalID int64) (*models.Proposal, error) {
	if err, ok := f.fetchErr[proposalID]; ok {
		return nil, err
	}
	p, ok := f.proposals[proposalID]
	if !ok {
		return nil, errors.New("not found")
	}
	return &p, nil
}

type fakeProposalStore struct {
	byKey map[string]models.Proposal
}

func newFakeProposalStore() *fakeProposalStore {
	return &fakeProposalStore{byKey: make(map[string]models.Proposal)}
}

func (s *fakeProposalStore) Get(_ context.Context, chainID string, proposalID int64) (*models.Proposal, error) {
	p, ok := s.byKey[models.Proposal{ChainID: chainID, ProposalID: proposalID}.Key()]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s *fakeProposalStore) Upsert(_ context.Context, p models.Proposal) error {
	s.byKey[p.Key()] = p
	return nil
}

type fakeCursorStore struct {
	cursor  *models.Cursor
	getErr  error
	saveErr error
	saves   int
}

func (s *fakeCursorStore) Get(context.Context, string) (*models.Cursor, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if s.cursor == nil {
		return nil, nil
	}
	copied := *s.cursor
	return &copied, nil
}

func (s *fakeCursorStore) Save(_ context.Context, c models.Cursor) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	s.cursor = &c
	return nil
}

type harness struct {
	chain   *fakeChain
	props   *fakeProposalStore
	cursors *fakeCursorStore
	events  []models.ChangeEvent
	reject  bool
	watcher *Watcher
}

func newHarness() *harness {
	h := &harness{
		chain:   &fakeChain{proposals: make(map[int64]models.Proposal), fetchErr: make(map[int64]error)},
		props:   newFakeProposalStore(),
		cursors: &fakeCursorStore{},
	}
	h.watcher = New("testchain-1", "Test Chain", h.chain, h.props, h.cursors,
		func(ev models.ChangeEvent) bool {
			if h.reject {
				return false
			}
			h.events = append(h.events, ev)
			return true
		}, nil)
	return h
}

func (h *harness) serve(p models.Proposal) {
	h.chain.proposals[p.ProposalID] = p
	if !p.Status.IsTerminal() {
		found := false
		for i, s := range h.chain.active {
			if s.ProposalID == p.ProposalID {
				h.chain.active[i].Status = p.Status
				found = true
			}
		}
		if !found {
			h.chain.active = append(h.chain.active, models.ProposalSummary{
				ChainID:    "testchain-1",
				ProposalID: p.ProposalID,
				Status:     p.Status,
			})
		}
	} else {
		// Terminal proposals drop off the active list
		active := h.chain.active[:0]
		for _, s := range h.chain.active {
			if s.ProposalID != p.ProposalID {
				active = append(active, s)
			}
		}
		h.chain.active = active
	}
}

func proposal(id int64, status models.ProposalStatus) models.Proposal {
	return models.Proposal{
		ChainID:     "testchain-1",
		ProposalID:  id,
		Title:       "Test proposal",
		Description: "body",
		Status:      status,
	}
}

func TestWatcherFirstSighting(t *testing.T) {
	h := newHarness()
	h.serve(proposal(10, models.StatusVoting))

	require.NoError(t, h.watcher.Tick(context.Background()))

	require.Len(t, h.events, 1)
	assert.Equal(t, models.ChangeNew, h.events[0].Kind)
	assert.Equal(t, int64(10), h.events[0].Proposal.ProposalID)

	require.NotNil(t, h.cursors.cursor)
	assert.Equal(t, int64(10), h.cursors.cursor.HighestSeen)
	assert.Equal(t, []int64{10}, h.cursors.cursor.Tracked)
}

func TestWatcherRetickWithNoChange(t *testing.T) {
	h := newHarness()
	h.serve(proposal(10, models.StatusVoting))
	require.NoError(t, h.watcher.Tick(context.Background()))
	h.events = nil
	before := *h.cursors.cursor

	require.NoError(t, h.watcher.Tick(context.Background()))

	assert.Empty(t, h.events, "unchanged proposal must not re-emit")
	assert.Equal(t, before.HighestSeen, h.cursors.cursor.HighestSeen)
	assert.Equal(t, before.Tracked, h.cursors.cursor.Tracked)
}

func TestWatcherStatusChange(t *testing.T) {
	h := newHarness()
	h.serve(proposal(10, models.StatusDeposit))
	require.NoError(t, h.watcher.Tick(context.Background()))
	h.events = nil

	h.serve(proposal(10, models.StatusVoting))
	require.NoError(t, h.watcher.Tick(context.Background()))

	require.Len(t, h.events, 1)
	assert.Equal(t, models.ChangeUpdated, h.events[0].Kind)
	assert.Equal(t, models.StatusDeposit, h.events[0].OldStatus)
	assert.Equal(t, models.StatusVoting, h.events[0].Proposal.Status)
}

func TestWatcherTrackedProposalGoesTerminal(t *testing.T) {
	h := newHarness()
	h.serve(proposal(10, models.StatusVoting))
	require.NoError(t, h.watcher.Tick(context.Background()))
	h.events = nil

	// The proposal leaves the active list; only the tracked set finds it
	h.serve(proposal(10, models.StatusPassed))
	require.NoError(t, h.watcher.Tick(context.Background()))

	require.Len(t, h.events, 1)
	assert.Equal(t, models.ChangeUpdated, h.events[0].Kind)
	assert.Equal(t, models.StatusPassed, h.events[0].Proposal.Status)
	assert.Empty(t, h.cursors.cursor.Tracked, "terminal proposal leaves the tracked set")
	assert.Equal(t, int64(10), h.cursors.cursor.HighestSeen)
}

func TestWatcherTerminalFirstSighting(t *testing.T) {
	h := newHarness()
	p := proposal(10, models.StatusRejected)
	h.chain.proposals[10] = p
	h.cursors.cursor = &models.Cursor{ChainID: "testchain-1", Tracked: []int64{10}}

	require.NoError(t, h.watcher.Tick(context.Background()))

	// NEW followed by a synthetic CHANGED
	require.Len(t, h.events, 2)
	assert.Equal(t, models.ChangeNew, h.events[0].Kind)
	assert.Equal(t, models.ChangeUpdated, h.events[1].Kind)
	assert.Empty(t, h.cursors.cursor.Tracked)
}

func TestWatcherIgnoresBackwardTransition(t *testing.T) {
	h := newHarness()
	h.serve(proposal(10, models.StatusPassed))
	h.props.byKey["testchain-1/10"] = proposal(10, models.StatusPassed)
	h.cursors.cursor = &models.Cursor{ChainID: "testchain-1", HighestSeen: 10}

	// Stale endpoint re-reports the settled proposal as voting
	h.chain.active = []models.ProposalSummary{{ChainID: "testchain-1", ProposalID: 10, Status: models.StatusVoting}}
	h.chain.proposals[10] = proposal(10, models.StatusVoting)

	err := h.watcher.Tick(context.Background())
	assert.Error(t, err, "tick with nothing confirmed fails so the cursor stays put")
	assert.Empty(t, h.events)
	assert.Equal(t, models.StatusPassed, h.props.byKey["testchain-1/10"].Status)
}

func TestWatcherTitleChangeEmitsEvent(t *testing.T) {
	h := newHarness()
	h.serve(proposal(10, models.StatusVoting))
	require.NoError(t, h.watcher.Tick(context.Background()))
	h.events = nil

	changed := proposal(10, models.StatusVoting)
	changed.Title = "Amended title"
	h.serve(changed)
	require.NoError(t, h.watcher.Tick(context.Background()))

	require.Len(t, h.events, 1)
	assert.Equal(t, models.ChangeUpdated, h.events[0].Kind)
	assert.Equal(t, models.StatusVoting, h.events[0].OldStatus)
}

func TestWatcherRejectedEventDefersProposal(t *testing.T) {
	h := newHarness()
	h.serve(proposal(10, models.StatusVoting))

	// Downstream refuses the event; the proposal must stay unpersisted so
	// the next tick diffs it again instead of seeing it as unchanged
	h.reject = true
	err := h.watcher.Tick(context.Background())
	assert.Error(t, err, "tick with nothing confirmed fails")
	assert.Empty(t, h.props.byKey, "rejected event must not persist the proposal")
	assert.Nil(t, h.cursors.cursor, "cursor must not advance past a rejected event")

	h.reject = false
	require.NoError(t, h.watcher.Tick(context.Background()))
	require.Len(t, h.events, 1)
	assert.Equal(t, models.ChangeNew, h.events[0].Kind)
	assert.Contains(t, h.props.byKey, "testchain-1/10")
}

func TestWatcherRejectedEventDoesNotBlockOthers(t *testing.T) {
	h := newHarness()
	h.serve(proposal(10, models.StatusVoting))
	require.NoError(t, h.watcher.Tick(context.Background()))
	h.events = nil

	// Proposal 11 is new but rejected downstream; 10 is unchanged and
	// still confirms, so the tick succeeds and only 11 is deferred
	h.serve(proposal(11, models.StatusVoting))
	h.reject = true
	require.NoError(t, h.watcher.Tick(context.Background()))
	assert.NotContains(t, h.props.byKey, "testchain-1/11")
	assert.Equal(t, int64(10), h.cursors.cursor.HighestSeen)

	h.reject = false
	require.NoError(t, h.watcher.Tick(context.Background()))
	require.Len(t, h.events, 1)
	assert.Equal(t, int64(11), h.events[0].Proposal.ProposalID)
	assert.Equal(t, int64(11), h.cursors.cursor.HighestSeen)
}

func TestWatcherCursorMonotonic(t *testing.T) {
	h := newHarness()
	h.serve(proposal(10, models.StatusVoting))
	h.serve(proposal(12, models.StatusVoting))
	require.NoError(t, h.watcher.Tick(context.Background()))
	assert.Equal(t, int64(12), h.cursors.cursor.HighestSeen)

	// Proposal 12 fetch fails next tick; highestSeen must not regress
	h.chain.fetchErr[12] = errors.New("endpoint flake")
	require.NoError(t, h.watcher.Tick(context.Background()))
	assert.Equal(t, int64(12), h.cursors.cursor.HighestSeen)
	assert.Contains(t, h.cursors.cursor.Tracked, int64(12), "unobserved tracked proposal stays tracked")
}

func TestWatcherFailedTickLeavesCursorUnchanged(t *testing.T) {
	h := newHarness()
	h.serve(proposal(10, models.StatusVoting))
	require.NoError(t, h.watcher.Tick(context.Background()))
	saves := h.cursors.saves

	h.chain.listErr = errors.New("all endpoints down")
	assert.Error(t, h.watcher.Tick(context.Background()))
	assert.Equal(t, saves, h.cursors.saves, "failed tick must not write the cursor")
}

func TestWatcherCorruptCursorIsFatal(t *testing.T) {
	h := newHarness()
	h.cursors.getErr = ErrCursorCorrupt

	err := h.watcher.Tick(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCursorCorrupt)
}

func TestWatcherSameTickConflictPicksLaterStatus(t *testing.T) {
	observed := map[int64]models.Proposal{}
	merge(observed, proposal(10, models.StatusVoting))
	merge(observed, proposal(10, models.StatusDeposit))
	assert.Equal(t, models.StatusVoting, observed[10].Status)

	merge(observed, proposal(10, models.StatusPassed))
	assert.Equal(t, models.StatusPassed, observed[10].Status)
}

func TestNextCursor(t *testing.T) {
	old := models.Cursor{ChainID: "testchain-1", HighestSeen: 20, Tracked: []int64{15, 18}}
	confirmed := []models.Proposal{
		proposal(15, models.StatusPassed),
		proposal(21, models.StatusVoting),
	}
	observed := map[int64]models.Proposal{
		15: confirmed[0],
		21: confirmed[1],
	}

	next := nextCursor(old, confirmed, observed)
	assert.Equal(t, int64(21), next.HighestSeen)
	// 15 went terminal, 21 is new, 18 was unobserved and stays
	assert.Equal(t, []int64{18, 21}, next.Tracked)
}
