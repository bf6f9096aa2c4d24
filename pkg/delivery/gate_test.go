package delivery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/govwatcher/govwatcher/pkg/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memMarkStore is an in-memory MarkStore with the same compare-and-insert
// semantics as the database-backed one.
type memMarkStore struct {
	mu    sync.Mutex
	marks map[string]string
}

func newMemMarkStore() *memMarkStore {
	return &memMarkStore{marks: make(map[string]string)}
}

func markKey(chainID string, proposalID int64, subscriberID string) string {
	return fmt.Sprintf("%s/%d/%s", chainID, proposalID, subscriberID)
}

func (s *memMarkStore) Exists(_ context.Context, chainID string, proposalID int64, subscriberID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.marks[markKey(chainID, proposalID, subscriberID)]
	return ok, nil
}

func (s *memMarkStore) Create(_ context.Context, chainID string, proposalID int64, subscriberID, messageID string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := markKey(chainID, proposalID, subscriberID)
	if _, ok := s.marks[key]; ok {
		return ErrAlreadyMarked
	}
	s.marks[key] = messageID
	return nil
}

// scriptedNotifier returns queued errors before succeeding.
type scriptedNotifier struct {
	mu    sync.Mutex
	errs  []error
	sends atomic.Int32
}

func (n *scriptedNotifier) Send(context.Context, string, string, string) (string, error) {
	count := n.sends.Add(1)
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.errs) > 0 {
		err := n.errs[0]
		n.errs = n.errs[1:]
		return "", err
	}
	return fmt.Sprintf("msg-%d", count), nil
}

func testAdvice() models.Advice {
	return models.Advice{
		ChainID:      "testchain-1",
		ProposalID:   10,
		SubscriberID: "sub-1",
		Decision:     models.DecisionYes,
		Rationale:    "fine",
		Confidence:   0.8,
		CreatedAt:    time.Now().UTC(),
	}
}

func testSubscriber() models.Subscriber {
	return models.Subscriber{
		ID:      "sub-1",
		Address: "#governance",
	}
}

func newTestGate(marks MarkStore, notifier notify.Notifier) *Gate {
	gate := NewGate(marks, notifier, time.Second, nil)
	gate.backoffBase = time.Millisecond
	return gate
}

func TestGateDeliversOnce(t *testing.T) {
	ctx := context.Background()
	store := newMemMarkStore()
	notifier := &scriptedNotifier{}
	gate := newTestGate(store, notifier)

	outcome, err := gate.Deliver(ctx, testAdvice(), testSubscriber(), "subject", "body")
	require.NoError(t, err)
	assert.Equal(t, OutcomeDelivered, outcome)
	assert.Equal(t, int32(1), notifier.sends.Load())

	outcome, err = gate.Deliver(ctx, testAdvice(), testSubscriber(), "subject", "body")
	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, outcome)
	assert.Equal(t, int32(1), notifier.sends.Load(), "a marked triple is never re-sent")
}

func TestGateSurvivesRestartReplay(t *testing.T) {
	ctx := context.Background()
	store := newMemMarkStore()
	notifier := &scriptedNotifier{}

	gate := newTestGate(store, notifier)
	_, err := gate.Deliver(ctx, testAdvice(), testSubscriber(), "subject", "body")
	require.NoError(t, err)

	// A fresh gate over the same durable marks replays the same advice
	replayGate := newTestGate(store, &scriptedNotifier{})
	outcome, err := replayGate.Deliver(ctx, testAdvice(), testSubscriber(), "subject", "body")
	require.NoError(t, err)
	assert.Equal(t, OutcomeDuplicate, outcome)
}

func TestGateRetriesTransientSendErrors(t *testing.T) {
	ctx := context.Background()
	store := newMemMarkStore()
	notifier := &scriptedNotifier{errs: []error{
		fmt.Errorf("%w: flaky network", notify.ErrTransient),
	}}
	gate := newTestGate(store, notifier)

	outcome, err := gate.Deliver(ctx, testAdvice(), testSubscriber(), "subject", "body")
	require.NoError(t, err)
	assert.Equal(t, OutcomeDelivered, outcome)
	assert.Equal(t, int32(2), notifier.sends.Load())
}

func TestGateGivesUpAfterTransientRetries(t *testing.T) {
	ctx := context.Background()
	store := newMemMarkStore()
	transient := fmt.Errorf("%w: still down", notify.ErrTransient)
	notifier := &scriptedNotifier{errs: []error{transient, transient, transient, transient, transient}}
	gate := newTestGate(store, notifier)

	outcome, err := gate.Deliver(ctx, testAdvice(), testSubscriber(), "subject", "body")
	require.Error(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
	// Initial attempt plus three retries
	assert.Equal(t, int32(4), notifier.sends.Load())

	exists, err := store.Exists(ctx, "testchain-1", 10, "sub-1")
	require.NoError(t, err)
	assert.False(t, exists, "failed send must not leave a mark")
}

func TestGatePermanentErrorNotRetried(t *testing.T) {
	ctx := context.Background()
	store := newMemMarkStore()
	notifier := &scriptedNotifier{errs: []error{
		fmt.Errorf("%w: channel_not_found", notify.ErrPermanent),
	}}
	gate := newTestGate(store, notifier)

	outcome, err := gate.Deliver(ctx, testAdvice(), testSubscriber(), "subject", "body")
	require.Error(t, err)
	assert.Equal(t, OutcomeFailed, outcome)
	assert.Equal(t, int32(1), notifier.sends.Load())

	exists, _ := store.Exists(ctx, "testchain-1", 10, "sub-1")
	assert.False(t, exists)
}

func TestGatePaused(t *testing.T) {
	ctx := context.Background()
	notifier := &scriptedNotifier{}
	gate := newTestGate(newMemMarkStore(), notifier)

	gate.SetPaused(true)
	assert.True(t, gate.Paused())

	outcome, err := gate.Deliver(ctx, testAdvice(), testSubscriber(), "subject", "body")
	require.NoError(t, err)
	assert.Equal(t, OutcomePaused, outcome)
	assert.Zero(t, notifier.sends.Load())

	gate.SetPaused(false)
	outcome, err = gate.Deliver(ctx, testAdvice(), testSubscriber(), "subject", "body")
	require.NoError(t, err)
	assert.Equal(t, OutcomeDelivered, outcome)
}

func TestGateConcurrentSameTripleSendsOnce(t *testing.T) {
	ctx := context.Background()
	store := newMemMarkStore()
	notifier := &scriptedNotifier{}
	gate := newTestGate(store, notifier)

	const callers = 8
	var wg sync.WaitGroup
	var delivered, duplicate atomic.Int32
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcome, err := gate.Deliver(ctx, testAdvice(), testSubscriber(), "subject", "body")
			if err != nil {
				return
			}
			switch outcome {
			case OutcomeDelivered:
				delivered.Add(1)
			case OutcomeDuplicate:
				duplicate.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), notifier.sends.Load(), "one send across all racers")
	assert.Equal(t, int32(1), delivered.Load())
	assert.Equal(t, int32(callers-1), duplicate.Load())
}

func TestGateDistinctTriplesDeliverIndependently(t *testing.T) {
	ctx := context.Background()
	notifier := &scriptedNotifier{}
	gate := newTestGate(newMemMarkStore(), notifier)

	for _, subID := range []string{"sub-1", "sub-2", "sub-3"} {
		adv := testAdvice()
		adv.SubscriberID = subID
		sub := testSubscriber()
		sub.ID = subID

		outcome, err := gate.Deliver(ctx, adv, sub, "subject", "body")
		require.NoError(t, err)
		assert.Equal(t, OutcomeDelivered, outcome)
	}
	assert.Equal(t, int32(3), notifier.sends.Load())
}

func TestKeyedMutex(t *testing.T) {
	km := newKeyedMutex()

	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("k")
			counter++
			km.Unlock("k")
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	km.mu.Lock()
	assert.Empty(t, km.locks, "idle keys are dropped")
	km.mu.Unlock()
}

func TestMarkStoreDuplicateCreate(t *testing.T) {
	store := newMemMarkStore()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, "c", 1, "s", "m1", time.Now()))
	err := store.Create(ctx, "c", 1, "s", "m2", time.Now())
	assert.True(t, errors.Is(err, ErrAlreadyMarked))
}
