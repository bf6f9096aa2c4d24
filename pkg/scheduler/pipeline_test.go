package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/govwatcher/govwatcher/pkg/analysis"
	"github.com/govwatcher/govwatcher/pkg/config"
	"github.com/govwatcher/govwatcher/pkg/delivery"
	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/govwatcher/govwatcher/pkg/subscriber"
	"github.com/govwatcher/govwatcher/pkg/watcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// In-memory stand-ins for the persistence and transport edges so one
// change event can be followed through every pipeline stage.

type pipeAnalysisStore struct {
	mu   sync.Mutex
	byFP map[string]*models.Analysis
}

func (s *pipeAnalysisStore) GetByFingerprint(_ context.Context, fp string) (*models.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.byFP[fp]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (s *pipeAnalysisStore) Save(_ context.Context, a *models.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *a
	s.byFP[a.Fingerprint] = &copied
	return nil
}

func (s *pipeAnalysisStore) PurgeOlderThan(context.Context, time.Time) (int, error) {
	return 0, nil
}

type pipeDirectory struct {
	subscribers []models.Subscriber
}

func (d *pipeDirectory) ListSubscribersFor(context.Context, string, time.Time) ([]models.Subscriber, error) {
	return d.subscribers, nil
}

type pipeMarkStore struct {
	mu    sync.Mutex
	marks map[string]struct{}
}

func pipeMarkKey(chainID string, proposalID int64, subscriberID string) string {
	return fmt.Sprintf("%s/%d/%s", chainID, proposalID, subscriberID)
}

func (s *pipeMarkStore) Exists(_ context.Context, chainID string, proposalID int64, subscriberID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.marks[pipeMarkKey(chainID, proposalID, subscriberID)]
	return ok, nil
}

func (s *pipeMarkStore) Create(_ context.Context, chainID string, proposalID int64, subscriberID, _ string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := pipeMarkKey(chainID, proposalID, subscriberID)
	if _, ok := s.marks[key]; ok {
		return delivery.ErrAlreadyMarked
	}
	s.marks[key] = struct{}{}
	return nil
}

type pipeNotifier struct {
	mu       sync.Mutex
	sends    atomic.Int32
	subjects []string
	bodies   []string
}

func (n *pipeNotifier) Send(_ context.Context, _, subject, body string) (string, error) {
	count := n.sends.Add(1)
	n.mu.Lock()
	n.subjects = append(n.subjects, subject)
	n.bodies = append(n.bodies, body)
	n.mu.Unlock()
	return fmt.Sprintf("msg-%d", count), nil
}

type pipeProvider struct {
	calls atomic.Int32
}

func (p *pipeProvider) Name() string { return "stub" }

func (p *pipeProvider) Analyze(context.Context, models.Proposal, string, models.Policy) (*analysis.Result, error) {
	p.calls.Add(1)
	return &analysis.Result{
		Recommendation: models.RecommendApprove,
		Confidence:     0.9,
		Reasoning:      "Well supported upgrade",
		RiskAssessment: models.RiskLow,
	}, nil
}

// peakGauge tracks the highest number of concurrent holders.
type peakGauge struct {
	mu        sync.Mutex
	cur, peak int
}

func (g *peakGauge) enter() {
	g.mu.Lock()
	g.cur++
	if g.cur > g.peak {
		g.peak = g.cur
	}
	g.mu.Unlock()
}

func (g *peakGauge) exit() {
	g.mu.Lock()
	g.cur--
	g.mu.Unlock()
}

type slowProvider struct {
	gauge peakGauge
	delay time.Duration
}

func (p *slowProvider) Name() string { return "slow" }

func (p *slowProvider) Analyze(context.Context, models.Proposal, string, models.Policy) (*analysis.Result, error) {
	p.gauge.enter()
	defer p.gauge.exit()
	time.Sleep(p.delay)
	return &analysis.Result{
		Recommendation: models.RecommendApprove,
		Confidence:     0.8,
		Reasoning:      "Routine parameter change",
		RiskAssessment: models.RiskLow,
	}, nil
}

type slowNotifier struct {
	gauge peakGauge
	delay time.Duration
	sends atomic.Int32
}

func (n *slowNotifier) Send(context.Context, string, string, string) (string, error) {
	n.gauge.enter()
	defer n.gauge.exit()
	time.Sleep(n.delay)
	return fmt.Sprintf("msg-%d", n.sends.Add(1)), nil
}

func TestSchedulerConcurrencyCaps(t *testing.T) {
	const (
		proposals       = 10
		subscriberCount = 10
		maxAnalyses     = 2
		maxSends        = 3
	)

	cfg := config.DefaultSchedulerConfig()
	cfg.MaxConcurrentAnalyses = maxAnalyses
	cfg.MaxConcurrentSends = maxSends
	cfg.AnalysisQueueSize = 64
	cfg.DeliveryQueueSize = 512
	cfg.AnalysisDrainTimeout = 5 * time.Second
	cfg.DeliveryDrainTimeout = 5 * time.Second

	provider := &slowProvider{delay: 20 * time.Millisecond}
	analyzer := analysis.NewAnalyzer([]analysis.Provider{provider}, time.Second, nil)
	cache := analysis.NewCache(&pipeAnalysisStore{byFP: make(map[string]*models.Analysis)}, nil)

	subs := make([]models.Subscriber, 0, subscriberCount)
	for i := 0; i < subscriberCount; i++ {
		subs = append(subs, models.Subscriber{
			ID: fmt.Sprintf("sub-%d", i), Address: fmt.Sprintf("#gov-%d", i),
			Chains: []string{"testchain-1"},
			Active: true, ActiveUntil: time.Now().Add(time.Hour),
			Policy: models.Policy{RiskTolerance: models.RiskMedium},
		})
	}
	matcher := subscriber.NewMatcher(&pipeDirectory{subscribers: subs}, time.Minute)

	notifier := &slowNotifier{delay: 5 * time.Millisecond}
	gate := delivery.NewGate(&pipeMarkStore{marks: make(map[string]struct{})}, notifier, time.Second, nil)

	s := New(cfg, "", matcher, cache, analyzer, gate, nil)
	s.AddWatcher(watcher.New("testchain-1", "Test Chain", nil, nil, nil, nil, nil))
	s.Start(context.Background())

	for i := 0; i < proposals; i++ {
		require.True(t, s.HandleEvent(models.ChangeEvent{
			Kind: models.ChangeNew,
			Proposal: models.Proposal{
				ChainID:    "testchain-1",
				ProposalID: int64(100 + i),
				Title:      fmt.Sprintf("Proposal %d", i),
				Status:     models.StatusVoting,
			},
		}))
	}

	require.Eventually(t, func() bool {
		return notifier.sends.Load() == proposals*subscriberCount
	}, 10*time.Second, 10*time.Millisecond, "every advice must be delivered")

	s.Stop()

	assert.LessOrEqual(t, provider.gauge.peak, maxAnalyses, "in-flight analyses must honor the cap")
	assert.LessOrEqual(t, notifier.gauge.peak, maxSends, "in-flight sends must honor the cap")
	assert.Greater(t, provider.gauge.peak, 0)
	assert.Greater(t, notifier.gauge.peak, 0)
}

func TestSchedulerPipelineEndToEnd(t *testing.T) {
	cfg := config.DefaultSchedulerConfig()

	provider := &pipeProvider{}
	analyzer := analysis.NewAnalyzer([]analysis.Provider{provider}, time.Second, nil)
	cache := analysis.NewCache(&pipeAnalysisStore{byFP: make(map[string]*models.Analysis)}, nil)

	subs := []models.Subscriber{
		{
			ID: "sub-1", Address: "#gov-one", Chains: []string{"testchain-1"},
			Active: true, ActiveUntil: time.Now().Add(time.Hour),
			Policy: models.Policy{RiskTolerance: models.RiskMedium},
		},
		{
			ID: "sub-2", Address: "#gov-two", Chains: []string{"testchain-1"},
			Active: true, ActiveUntil: time.Now().Add(time.Hour),
			Policy: models.Policy{RiskTolerance: models.RiskLow},
		},
	}
	matcher := subscriber.NewMatcher(&pipeDirectory{subscribers: subs}, time.Minute)

	notifier := &pipeNotifier{}
	gate := delivery.NewGate(&pipeMarkStore{marks: make(map[string]struct{})}, notifier, time.Second, nil)

	s := New(cfg, "https://govwatcher.example.com", matcher, cache, analyzer, gate, nil)
	s.AddWatcher(watcher.New("testchain-1", "Test Chain", nil, nil, nil, nil, nil))
	s.Start(context.Background())

	s.HandleEvent(models.ChangeEvent{
		Kind: models.ChangeNew,
		Proposal: models.Proposal{
			ChainID:    "testchain-1",
			ProposalID: 7,
			Title:      "Upgrade v9",
			Status:     models.StatusVoting,
		},
	})

	require.Eventually(t, func() bool {
		return notifier.sends.Load() == 2
	}, 5*time.Second, 10*time.Millisecond, "one delivery per matched subscriber")

	s.Stop()

	assert.Equal(t, int32(1), provider.calls.Load(), "one analysis serves both subscribers")
	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	for _, subject := range notifier.subjects {
		assert.Equal(t, "[Test Chain] Proposal #7: Upgrade v9", subject)
	}
	for _, body := range notifier.bodies {
		assert.Contains(t, body, "RECOMMENDATION: YES")
		assert.Contains(t, body, "Visit https://govwatcher.example.com")
	}
}

func TestSchedulerPipelineDuplicateEventDeliversOnce(t *testing.T) {
	cfg := config.DefaultSchedulerConfig()

	analyzer := analysis.NewAnalyzer([]analysis.Provider{&pipeProvider{}}, time.Second, nil)
	cache := analysis.NewCache(&pipeAnalysisStore{byFP: make(map[string]*models.Analysis)}, nil)
	matcher := subscriber.NewMatcher(&pipeDirectory{subscribers: []models.Subscriber{{
		ID: "sub-1", Address: "#gov", Chains: []string{"testchain-1"},
		Active: true, ActiveUntil: time.Now().Add(time.Hour),
		Policy: models.Policy{RiskTolerance: models.RiskMedium},
	}}}, time.Minute)
	notifier := &pipeNotifier{}
	gate := delivery.NewGate(&pipeMarkStore{marks: make(map[string]struct{})}, notifier, time.Second, nil)

	s := New(cfg, "", matcher, cache, analyzer, gate, nil)
	s.AddWatcher(watcher.New("testchain-1", "Test Chain", nil, nil, nil, nil, nil))
	s.Start(context.Background())

	ev := models.ChangeEvent{
		Kind: models.ChangeUpdated,
		Proposal: models.Proposal{
			ChainID:    "testchain-1",
			ProposalID: 7,
			Title:      "Upgrade v9",
			Status:     models.StatusVoting,
		},
	}

	// The same content observed on consecutive ticks must not re-notify
	s.HandleEvent(ev)
	require.Eventually(t, func() bool {
		return notifier.sends.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)

	s.HandleEvent(ev)
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	assert.Equal(t, int32(1), notifier.sends.Load())
}
