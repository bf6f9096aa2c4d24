package analysis

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for cache tests.
type memStore struct {
	mu       sync.Mutex
	byFP     map[string]*models.Analysis
	getErr   error
	saveErr  error
	saves    int
	getCalls int
}

func newMemStore() *memStore {
	return &memStore{byFP: make(map[string]*models.Analysis)}
}

func (s *memStore) GetByFingerprint(_ context.Context, fingerprint string) (*models.Analysis, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	if s.getErr != nil {
		return nil, s.getErr
	}
	a, ok := s.byFP[fingerprint]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (s *memStore) Save(_ context.Context, a *models.Analysis) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.saves++
	copied := *a
	s.byFP[a.Fingerprint] = &copied
	return nil
}

func (s *memStore) PurgeOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for fp, a := range s.byFP {
		if a.CreatedAt.Before(cutoff) {
			delete(s.byFP, fp)
			n++
		}
	}
	return n, nil
}

func storedAnalysis(fp string, expiresAt time.Time) *models.Analysis {
	return &models.Analysis{
		Fingerprint:    fp,
		ChainID:        "cosmoshub-4",
		ProposalID:     1,
		Provider:       "claude",
		Recommendation: models.RecommendApprove,
		Confidence:     0.8,
		Reasoning:      "ok",
		RiskAssessment: models.RiskLow,
		CreatedAt:      time.Now().UTC().Add(-time.Hour),
		ExpiresAt:      expiresAt,
	}
}

func TestCacheGetOrCompute(t *testing.T) {
	ctx := context.Background()

	t.Run("returns cached analysis without computing", func(t *testing.T) {
		store := newMemStore()
		cached := storedAnalysis("fp-hit", time.Now().UTC().Add(time.Hour))
		require.NoError(t, store.Save(ctx, cached))
		cache := NewCache(store, nil)

		computed := false
		got, err := cache.GetOrCompute(ctx, "fp-hit", func(context.Context) (*models.Analysis, error) {
			computed = true
			return nil, errors.New("should not run")
		})
		require.NoError(t, err)
		assert.False(t, computed)
		assert.Equal(t, cached.Reasoning, got.Reasoning)
	})

	t.Run("computes and persists on miss", func(t *testing.T) {
		store := newMemStore()
		cache := NewCache(store, nil)
		fresh := storedAnalysis("fp-miss", time.Now().UTC().Add(time.Hour))

		got, err := cache.GetOrCompute(ctx, "fp-miss", func(context.Context) (*models.Analysis, error) {
			return fresh, nil
		})
		require.NoError(t, err)
		assert.Equal(t, fresh.Fingerprint, got.Fingerprint)

		stored, err := store.GetByFingerprint(ctx, "fp-miss")
		require.NoError(t, err)
		require.NotNil(t, stored)
	})

	t.Run("expired entry is recomputed", func(t *testing.T) {
		store := newMemStore()
		stale := storedAnalysis("fp-exp", time.Now().UTC().Add(-time.Minute))
		require.NoError(t, store.Save(ctx, stale))
		store.saves = 0
		cache := NewCache(store, nil)

		fresh := storedAnalysis("fp-exp", time.Now().UTC().Add(time.Hour))
		fresh.Reasoning = "recomputed"

		got, err := cache.GetOrCompute(ctx, "fp-exp", func(context.Context) (*models.Analysis, error) {
			return fresh, nil
		})
		require.NoError(t, err)
		assert.Equal(t, "recomputed", got.Reasoning)
		assert.Equal(t, 1, store.saves)
	})

	t.Run("compute error propagates and stores nothing", func(t *testing.T) {
		store := newMemStore()
		cache := NewCache(store, nil)
		boom := errors.New("provider exploded")

		_, err := cache.GetOrCompute(ctx, "fp-err", func(context.Context) (*models.Analysis, error) {
			return nil, boom
		})
		require.ErrorIs(t, err, boom)

		stored, err := store.GetByFingerprint(ctx, "fp-err")
		require.NoError(t, err)
		assert.Nil(t, stored)

		// The next call retries
		fresh := storedAnalysis("fp-err", time.Now().UTC().Add(time.Hour))
		got, err := cache.GetOrCompute(ctx, "fp-err", func(context.Context) (*models.Analysis, error) {
			return fresh, nil
		})
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("concurrent callers share one computation", func(t *testing.T) {
		store := newMemStore()
		cache := NewCache(store, nil)

		var computations atomic.Int32
		started := make(chan struct{})
		release := make(chan struct{})

		const callers = 16
		var wg sync.WaitGroup
		results := make([]*models.Analysis, callers)
		errs := make([]error, callers)

		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i], errs[i] = cache.GetOrCompute(ctx, "fp-flight", func(context.Context) (*models.Analysis, error) {
					if computations.Add(1) == 1 {
						close(started)
					}
					<-release
					return storedAnalysis("fp-flight", time.Now().UTC().Add(time.Hour)), nil
				})
			}(i)
		}

		<-started
		// Give the rest of the callers time to pile onto the flight
		time.Sleep(50 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), computations.Load(), "exactly one computation for the fingerprint")
		for i := 0; i < callers; i++ {
			require.NoError(t, errs[i])
			assert.Equal(t, "fp-flight", results[i].Fingerprint)
		}
		assert.Equal(t, 1, store.saves)
	})
}

func TestCachePurge(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()

	old := storedAnalysis("fp-old", time.Now().UTC().Add(terminalTTL))
	old.CreatedAt = time.Now().UTC().Add(-MaxAge - time.Hour)
	require.NoError(t, store.Save(ctx, old))

	recent := storedAnalysis("fp-recent", time.Now().UTC().Add(time.Hour))
	require.NoError(t, store.Save(ctx, recent))

	cache := NewCache(store, nil)
	n, err := cache.Purge(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	kept, err := store.GetByFingerprint(ctx, "fp-recent")
	require.NoError(t, err)
	assert.NotNil(t, kept)
}
