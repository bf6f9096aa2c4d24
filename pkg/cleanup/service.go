// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/govwatcher/govwatcher/pkg/analysis"
	"github.com/govwatcher/govwatcher/pkg/config"
	"github.com/govwatcher/govwatcher/pkg/services"
)

// sweepInterval is the background sweep cadence. The purge cutoffs are
// day-granular, so running more often than hourly buys nothing.
const sweepInterval = time.Hour

// Service periodically enforces retention policies:
//   - Purges analyses past the maximum retention age regardless of status
//   - Optionally purges old delivery marks when mark retention is set
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config          *config.RetentionConfig
	cache           *analysis.Cache
	deliveryService *services.DeliveryService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, cache *analysis.Cache, deliveryService *services.DeliveryService) *Service {
	return &Service{
		config:          cfg,
		cache:           cache,
		deliveryService: deliveryService,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"analysis_retention_days", s.config.AnalysisRetentionDays,
		"mark_retention_days", s.config.MarkRetentionDays,
		"interval", sweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeAnalyses(ctx)
	s.purgeDeliveryMarks(ctx)
}

func (s *Service) purgeAnalyses(_ context.Context) {
	maxAge := time.Duration(s.config.AnalysisRetentionDays) * 24 * time.Hour
	count, err := s.cache.Purge(context.Background(), maxAge)
	if err != nil {
		slog.Error("Retention: analysis purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old analyses", "count", count)
	}
}

func (s *Service) purgeDeliveryMarks(_ context.Context) {
	if s.config.MarkRetentionDays <= 0 {
		return
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -s.config.MarkRetentionDays)
	count, err := s.deliveryService.PurgeOlderThan(context.Background(), cutoff)
	if err != nil {
		slog.Error("Retention: delivery mark purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: purged old delivery marks", "count", count)
	}
}
