package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/govwatcher/govwatcher/pkg/config"
	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/govwatcher/govwatcher/pkg/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchedulerConfig() *config.SchedulerConfig {
	cfg := config.DefaultSchedulerConfig()
	cfg.AnalysisQueueSize = 2
	cfg.DeliveryQueueSize = 2
	return cfg
}

// newIdleScheduler builds a scheduler that is never started; enqueue
// paths can be exercised without running workers.
func newIdleScheduler(cfg *config.SchedulerConfig) *Scheduler {
	s := New(cfg, "", nil, nil, nil, nil, nil)
	s.AddWatcher(watcher.New("testchain-1", "Test Chain", nil, nil, nil, nil, nil))
	return s
}

func changeEvent(proposalID int64, title string) models.ChangeEvent {
	return models.ChangeEvent{
		Kind: models.ChangeNew,
		Proposal: models.Proposal{
			ChainID:    "testchain-1",
			ProposalID: proposalID,
			Title:      title,
			Status:     models.StatusVoting,
		},
	}
}

func TestJitteredIntervalBounds(t *testing.T) {
	cfg := testSchedulerConfig()
	cfg.TickInterval = time.Hour
	cfg.TickJitter = 6 * time.Minute
	s := newIdleScheduler(cfg)

	for i := 0; i < 200; i++ {
		interval := s.jitteredInterval()
		assert.GreaterOrEqual(t, interval, cfg.TickInterval-cfg.TickJitter)
		assert.Less(t, interval, cfg.TickInterval+cfg.TickJitter)
	}
}

func TestJitteredIntervalWithoutJitter(t *testing.T) {
	cfg := testSchedulerConfig()
	cfg.TickInterval = time.Hour
	cfg.TickJitter = 0
	s := newIdleScheduler(cfg)

	assert.Equal(t, time.Hour, s.jitteredInterval())
}

func TestHandleEventEnqueues(t *testing.T) {
	s := newIdleScheduler(testSchedulerConfig())

	assert.True(t, s.HandleEvent(changeEvent(1, "Proposal one")))
	assert.Equal(t, 1, len(s.analysisCh))

	task := <-s.analysisCh
	assert.Equal(t, "Test Chain", task.chainName)
	assert.Equal(t, int64(1), task.proposal.ProposalID)
	assert.NotEmpty(t, task.fingerprint)
}

func TestHandleEventDedupesInflightFingerprints(t *testing.T) {
	s := newIdleScheduler(testSchedulerConfig())

	ev := changeEvent(1, "Proposal one")
	assert.True(t, s.HandleEvent(ev))
	assert.True(t, s.HandleEvent(ev), "in-flight content counts as accepted")

	assert.Equal(t, 1, len(s.analysisCh), "identical content must enqueue once")

	// A content change produces a new fingerprint and a new task
	assert.True(t, s.HandleEvent(changeEvent(1, "Proposal one, amended")))
	assert.Equal(t, 2, len(s.analysisCh))
}

func TestHandleEventQueueFullDropsAndReleases(t *testing.T) {
	cfg := testSchedulerConfig()
	cfg.AnalysisQueueSize = 1
	s := newIdleScheduler(cfg)

	assert.True(t, s.HandleEvent(changeEvent(1, "first")))
	assert.False(t, s.HandleEvent(changeEvent(2, "second")), "full queue defers the event")
	assert.Equal(t, 1, len(s.analysisCh))

	// The deferred fingerprint was released, so the next tick's re-emit
	// can enqueue it
	<-s.analysisCh
	assert.True(t, s.HandleEvent(changeEvent(2, "second")))
	assert.Equal(t, 1, len(s.analysisCh))
}

func TestHandleEventUnknownChainIgnored(t *testing.T) {
	s := newIdleScheduler(testSchedulerConfig())

	ev := changeEvent(1, "Proposal one")
	ev.Proposal.ChainID = "otherchain-9"
	assert.False(t, s.HandleEvent(ev))
	assert.Zero(t, len(s.analysisCh))
}

func TestForceTickUnknownChain(t *testing.T) {
	s := newIdleScheduler(testSchedulerConfig())

	err := s.ForceTick(context.Background(), "otherchain-9")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownChain)
}

func TestWaitTimeout(t *testing.T) {
	var wg sync.WaitGroup
	assert.True(t, waitTimeout(&wg, 10*time.Millisecond), "empty group finishes immediately")

	wg.Add(1)
	assert.False(t, waitTimeout(&wg, 10*time.Millisecond))
	wg.Done()
	assert.True(t, waitTimeout(&wg, 10*time.Millisecond))
}
