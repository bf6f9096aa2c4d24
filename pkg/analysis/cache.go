package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/govwatcher/govwatcher/pkg/metrics"
	"github.com/govwatcher/govwatcher/pkg/models"
	"golang.org/x/sync/singleflight"
)

// persistTimeout bounds one cache persistence write.
const persistTimeout = 5 * time.Second

// Store is the durable backing of the analysis cache. Get returns
// (nil, nil) when no analysis exists for the fingerprint.
type Store interface {
	GetByFingerprint(ctx context.Context, fingerprint string) (*models.Analysis, error)
	Save(ctx context.Context, a *models.Analysis) error
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// Cache maps fingerprints to analyses with single-flight computation.
// Concurrent GetOrCompute calls for the same fingerprint observe exactly
// one in-flight computation; an LLM call for a given fingerprint is never
// issued twice concurrently.
type Cache struct {
	store   Store
	group   singleflight.Group
	metrics *metrics.Registry
	logger  *slog.Logger
}

// NewCache creates a cache over the given store.
func NewCache(store Store, reg *metrics.Registry) *Cache {
	return &Cache{
		store:   store,
		metrics: reg,
		logger:  slog.With("component", "analysis_cache"),
	}
}

// GetOrCompute returns the cached analysis for the fingerprint, computing
// and persisting it when absent or expired. A failed compute propagates
// its error to every waiter and stores nothing, so the next call retries.
func (c *Cache) GetOrCompute(ctx context.Context, fingerprint string, compute func(context.Context) (*models.Analysis, error)) (*models.Analysis, error) {
	// Fast path outside the flight group
	if cached, err := c.probe(ctx, fingerprint); err != nil {
		return nil, err
	} else if cached != nil {
		c.metrics.IncCacheHit()
		return cached, nil
	}

	result, err, shared := c.group.Do(fingerprint, func() (interface{}, error) {
		// Re-probe: a concurrent flight may have stored the result between
		// the fast path and winning the flight slot
		if cached, err := c.probe(ctx, fingerprint); err != nil {
			return nil, err
		} else if cached != nil {
			return cached, nil
		}

		c.metrics.IncCacheMiss()

		a, err := compute(ctx)
		if err != nil {
			return nil, err
		}

		saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
		defer cancel()
		if err := c.store.Save(saveCtx, a); err != nil {
			return nil, fmt.Errorf("persist analysis %s: %w", fingerprint, err)
		}

		return a, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		c.metrics.IncCacheHit()
	}
	return result.(*models.Analysis), nil
}

// Purge removes analyses older than the hard retention bound. Run by the
// hourly sweep.
func (c *Cache) Purge(ctx context.Context, maxAge time.Duration) (int, error) {
	if maxAge <= 0 {
		maxAge = MaxAge
	}
	cutoff := time.Now().UTC().Add(-maxAge)
	n, err := c.store.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge analyses: %w", err)
	}
	if n > 0 {
		c.logger.Info("Purged expired analyses", "count", n, "cutoff", cutoff)
	}
	return n, nil
}

// probe returns a non-expired cached analysis or nil.
func (c *Cache) probe(ctx context.Context, fingerprint string) (*models.Analysis, error) {
	cached, err := c.store.GetByFingerprint(ctx, fingerprint)
	if err != nil {
		return nil, fmt.Errorf("probe analysis cache: %w", err)
	}
	if cached == nil || cached.Expired(time.Now().UTC()) {
		return nil, nil
	}
	return cached, nil
}
