// Package scheduler owns the pipeline's periodic work: per-chain watch
// ticks, the analysis and delivery queues, and concurrency caps for LLM
// calls and notifier sends.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/govwatcher/govwatcher/pkg/advice"
	"github.com/govwatcher/govwatcher/pkg/analysis"
	"github.com/govwatcher/govwatcher/pkg/config"
	"github.com/govwatcher/govwatcher/pkg/delivery"
	"github.com/govwatcher/govwatcher/pkg/metrics"
	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/govwatcher/govwatcher/pkg/notify"
	"github.com/govwatcher/govwatcher/pkg/subscriber"
	"github.com/govwatcher/govwatcher/pkg/watcher"
	"golang.org/x/sync/semaphore"
)

const (
	analysisWorkers = 4
	deliveryWorkers = 8
)

// ErrUnknownChain is returned by ForceTick for chains the scheduler does
// not run.
var ErrUnknownChain = errors.New("unknown chain")

type analysisTask struct {
	chainName   string
	fingerprint string
	proposal    models.Proposal
}

type deliveryTask struct {
	adv     models.Advice
	sub     models.Subscriber
	subject string
	body    string
}

// Scheduler wires the pipeline stages together and drives them.
type Scheduler struct {
	cfg        *config.SchedulerConfig
	serviceURL string

	watchers map[string]*watcher.Watcher
	matcher  *subscriber.Matcher
	cache    *analysis.Cache
	analyzer *analysis.Analyzer
	gate     *delivery.Gate

	analysisCh chan analysisTask
	deliveryCh chan deliveryTask
	llmSem     *semaphore.Weighted
	sendSem    *semaphore.Weighted

	// Fingerprints queued or in flight; enqueue of a duplicate is a no-op
	inflightMu sync.Mutex
	inflight   map[string]struct{}

	metrics *metrics.Registry
	logger  *slog.Logger

	// Tick loops stop first on shutdown; queue workers keep a live
	// context until their drain window closes
	tickCtx    context.Context
	tickCancel context.CancelFunc
	workCtx    context.Context
	workCancel context.CancelFunc
	tickWG     sync.WaitGroup
	analysisWG sync.WaitGroup
	deliveryWG sync.WaitGroup
}

// New creates a scheduler. Watchers must have been constructed with
// HandleEvent as their emit callback.
func New(cfg *config.SchedulerConfig, serviceURL string, matcher *subscriber.Matcher, cache *analysis.Cache, analyzer *analysis.Analyzer, gate *delivery.Gate, reg *metrics.Registry) *Scheduler {
	return &Scheduler{
		cfg:        cfg,
		serviceURL: serviceURL,
		watchers:   make(map[string]*watcher.Watcher),
		matcher:    matcher,
		cache:      cache,
		analyzer:   analyzer,
		gate:       gate,
		analysisCh: make(chan analysisTask, cfg.AnalysisQueueSize),
		deliveryCh: make(chan deliveryTask, cfg.DeliveryQueueSize),
		llmSem:     semaphore.NewWeighted(cfg.MaxConcurrentAnalyses),
		sendSem:    semaphore.NewWeighted(cfg.MaxConcurrentSends),
		inflight:   make(map[string]struct{}),
		metrics:    reg,
		logger:     slog.With("component", "scheduler"),
	}
}

// AddWatcher registers a chain watcher. Must be called before Start.
func (s *Scheduler) AddWatcher(w *watcher.Watcher) {
	s.watchers[w.ChainID()] = w
}

// Start launches the per-chain tick loops and the queue workers.
func (s *Scheduler) Start(ctx context.Context) {
	s.tickCtx, s.tickCancel = context.WithCancel(ctx)
	s.workCtx, s.workCancel = context.WithCancel(context.WithoutCancel(ctx))

	for i := 0; i < analysisWorkers; i++ {
		s.analysisWG.Add(1)
		go s.analysisWorker()
	}
	for i := 0; i < deliveryWorkers; i++ {
		s.deliveryWG.Add(1)
		go s.deliveryWorker()
	}

	for _, w := range s.watchers {
		s.tickWG.Add(1)
		go s.tickLoop(w)
	}

	s.logger.Info("Scheduler started",
		"chains", len(s.watchers),
		"tick_interval", s.cfg.TickInterval,
		"tick_jitter", s.cfg.TickJitter)
}

// Stop drains the pipeline in stage order: tick loops first, then the
// analysis queue, then the delivery queue, each within its configured
// drain timeout.
func (s *Scheduler) Stop() {
	s.logger.Info("Scheduler stopping")
	s.tickCancel()
	s.tickWG.Wait()

	close(s.analysisCh)
	if !waitTimeout(&s.analysisWG, s.cfg.AnalysisDrainTimeout) {
		s.logger.Warn("Analysis queue did not drain in time",
			"timeout", s.cfg.AnalysisDrainTimeout)
		s.workCancel()
	}
	// Analysis workers enqueue delivery tasks; the delivery channel must
	// not close while any of them is still running
	s.analysisWG.Wait()

	close(s.deliveryCh)
	if !waitTimeout(&s.deliveryWG, s.cfg.DeliveryDrainTimeout) {
		s.logger.Warn("Delivery queue did not drain in time",
			"timeout", s.cfg.DeliveryDrainTimeout)
	}

	s.workCancel()
	s.logger.Info("Scheduler stopped")
}

// ForceTick runs one watch tick for the chain immediately, outside the
// periodic schedule.
func (s *Scheduler) ForceTick(ctx context.Context, chainID string) error {
	w, ok := s.watchers[chainID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChain, chainID)
	}
	return w.Tick(ctx)
}

// HandleEvent receives watcher change events and feeds the analysis
// queue. Safe for concurrent use. It reports whether the event is
// queued or already in flight; on a full queue it returns false so the
// watcher defers the proposal and the next tick re-emits it.
func (s *Scheduler) HandleEvent(ev models.ChangeEvent) bool {
	w, ok := s.watchers[ev.Proposal.ChainID]
	if !ok {
		return false
	}

	fingerprint := analysis.Fingerprint(ev.Proposal)

	s.inflightMu.Lock()
	if _, dup := s.inflight[fingerprint]; dup {
		s.inflightMu.Unlock()
		return true
	}
	s.inflight[fingerprint] = struct{}{}
	s.inflightMu.Unlock()

	task := analysisTask{
		chainName:   w.ChainName(),
		fingerprint: fingerprint,
		proposal:    ev.Proposal,
	}
	select {
	case s.analysisCh <- task:
		return true
	default:
		s.release(fingerprint)
		s.logger.Warn("Analysis queue full, deferring event",
			"chain_id", ev.Proposal.ChainID,
			"proposal_id", ev.Proposal.ProposalID,
			"kind", ev.Kind)
		return false
	}
}

// tickLoop runs one chain's jittered periodic ticks until the scheduler
// stops. A corrupt cursor halts the loop; all other tick failures are
// retried on the next interval.
func (s *Scheduler) tickLoop(w *watcher.Watcher) {
	defer s.tickWG.Done()
	logger := s.logger.With("chain_id", w.ChainID())

	timer := time.NewTimer(s.jitteredInterval())
	defer timer.Stop()

	for {
		select {
		case <-s.tickCtx.Done():
			return
		case <-timer.C:
		}

		if err := w.Tick(s.tickCtx); err != nil {
			if errors.Is(err, watcher.ErrCursorCorrupt) {
				logger.Error("Cursor corrupt, halting chain until restart", "error", err)
				return
			}
			if s.tickCtx.Err() != nil {
				return
			}
			logger.Error("Tick failed, retrying next interval", "error", err)
		}

		timer.Reset(s.jitteredInterval())
	}
}

// jitteredInterval spreads ticks across TickInterval +/- TickJitter.
func (s *Scheduler) jitteredInterval() time.Duration {
	if s.cfg.TickJitter <= 0 {
		return s.cfg.TickInterval
	}
	offset := time.Duration(rand.Int64N(int64(2*s.cfg.TickJitter))) - s.cfg.TickJitter
	return s.cfg.TickInterval + offset
}

func (s *Scheduler) analysisWorker() {
	defer s.analysisWG.Done()
	for task := range s.analysisCh {
		s.runAnalysis(task)
	}
}

// runAnalysis resolves one change event end to end: match subscribers,
// compute or reuse the analysis, and fan advice out to the delivery
// queue.
func (s *Scheduler) runAnalysis(task analysisTask) {
	defer s.release(task.fingerprint)

	ctx := s.workCtx
	now := time.Now().UTC()
	p := task.proposal

	subscribers, err := s.matcher.Match(ctx, p.ChainID, now)
	if err != nil {
		s.logger.Error("Subscriber match failed",
			"chain_id", p.ChainID,
			"proposal_id", p.ProposalID,
			"error", err)
		return
	}
	if len(subscribers) == 0 {
		return
	}

	// The analysis is content-addressed per proposal, so one policy shapes
	// the prompt; the first matched subscriber's is used
	result, err := s.cache.GetOrCompute(ctx, task.fingerprint, func(ctx context.Context) (*models.Analysis, error) {
		if err := s.llmSem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		defer s.llmSem.Release(1)
		return s.analyzer.Analyze(ctx, p, task.chainName, subscribers[0].Policy), nil
	})
	if err != nil {
		s.logger.Error("Analysis failed",
			"chain_id", p.ChainID,
			"proposal_id", p.ProposalID,
			"fingerprint", task.fingerprint,
			"error", err)
		return
	}

	subject := notify.Subject(task.chainName, p.ProposalID, p.Title)
	for _, sub := range subscribers {
		adv := advice.Render(result, sub, now)
		task := deliveryTask{
			adv:     adv,
			sub:     sub,
			subject: subject,
			body:    notify.Body(adv, task.chainName, p.Title, s.serviceURL),
		}
		// The proposal is already persisted by this point, so a dropped
		// advice would never be retried; block until the delivery queue
		// has room or the scheduler shuts down
		select {
		case s.deliveryCh <- task:
		case <-s.workCtx.Done():
			s.logger.Warn("Shutdown before advice could be queued",
				"chain_id", adv.ChainID,
				"proposal_id", adv.ProposalID,
				"subscriber_id", adv.SubscriberID)
			return
		}
	}
}

func (s *Scheduler) deliveryWorker() {
	defer s.deliveryWG.Done()
	for task := range s.deliveryCh {
		s.runDelivery(task)
	}
}

func (s *Scheduler) runDelivery(task deliveryTask) {
	ctx := s.workCtx
	if err := s.sendSem.Acquire(ctx, 1); err != nil {
		return
	}
	defer s.sendSem.Release(1)

	outcome, err := s.gate.Deliver(ctx, task.adv, task.sub, task.subject, task.body)
	if err != nil {
		s.logger.Error("Delivery failed",
			"chain_id", task.adv.ChainID,
			"proposal_id", task.adv.ProposalID,
			"subscriber_id", task.adv.SubscriberID,
			"outcome", outcome,
			"error", err)
		return
	}
	s.logger.Debug("Delivery resolved",
		"chain_id", task.adv.ChainID,
		"proposal_id", task.adv.ProposalID,
		"subscriber_id", task.adv.SubscriberID,
		"outcome", outcome)
}

func (s *Scheduler) release(fingerprint string) {
	s.inflightMu.Lock()
	delete(s.inflight, fingerprint)
	s.inflightMu.Unlock()
}

// waitTimeout waits for the group up to the timeout and reports whether
// it finished.
func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}
