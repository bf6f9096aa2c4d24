// Package subscriber resolves which subscribers should hear about a
// proposal, with a short staleness window over the external directory.
package subscriber

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/govwatcher/govwatcher/pkg/models"
)

// Directory is the external subscription manager's read surface.
type Directory interface {
	// ListSubscribersFor returns subscribers whose watched set contains
	// chainID and who are active at now.
	ListSubscribersFor(ctx context.Context, chainID string, now time.Time) ([]models.Subscriber, error)
}

// cacheEntry holds one chain's subscriber list with a timestamp for TTL
// expiration.
type cacheEntry struct {
	subscribers []models.Subscriber
	fetchedAt   time.Time
}

// Matcher answers "who is interested in this chain" with reads cached up
// to the configured TTL. Stale up to that window is acceptable; expired
// entries are cleaned up lazily on Match, no background goroutine.
type Matcher struct {
	directory Directory
	ttl       time.Duration

	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

// NewMatcher creates a matcher over the directory with the given
// staleness window.
func NewMatcher(directory Directory, ttl time.Duration) *Matcher {
	return &Matcher{
		directory: directory,
		ttl:       ttl,
		entries:   make(map[string]*cacheEntry),
	}
}

// Match returns the subscribers eligible for notifications about the
// given chain at now. Eligibility is re-checked against now even on
// cached reads so a subscription lapsing inside the window is honored.
func (m *Matcher) Match(ctx context.Context, chainID string, now time.Time) ([]models.Subscriber, error) {
	if cached, ok := m.get(chainID); ok {
		return filterEligible(cached, chainID, now), nil
	}

	subscribers, err := m.directory.ListSubscribersFor(ctx, chainID, now)
	if err != nil {
		return nil, fmt.Errorf("list subscribers for %s: %w", chainID, err)
	}

	m.set(chainID, subscribers)
	return filterEligible(subscribers, chainID, now), nil
}

// Invalidate drops the cached entry for one chain.
func (m *Matcher) Invalidate(chainID string) {
	m.mu.Lock()
	delete(m.entries, chainID)
	m.mu.Unlock()
}

func (m *Matcher) get(chainID string) ([]models.Subscriber, bool) {
	m.mu.RLock()
	entry, ok := m.entries[chainID]
	m.mu.RUnlock()

	if !ok {
		return nil, false
	}

	if time.Since(entry.fetchedAt) > m.ttl {
		// Expired. Re-check under write lock: a concurrent set may have
		// replaced the entry with a fresh one.
		m.mu.Lock()
		if current, ok := m.entries[chainID]; ok && time.Since(current.fetchedAt) > m.ttl {
			delete(m.entries, chainID)
		}
		m.mu.Unlock()
		return nil, false
	}

	return entry.subscribers, true
}

func (m *Matcher) set(chainID string, subscribers []models.Subscriber) {
	m.mu.Lock()
	m.entries[chainID] = &cacheEntry{
		subscribers: subscribers,
		fetchedAt:   time.Now(),
	}
	m.mu.Unlock()
}

func filterEligible(subscribers []models.Subscriber, chainID string, now time.Time) []models.Subscriber {
	eligible := make([]models.Subscriber, 0, len(subscribers))
	for _, s := range subscribers {
		if s.Eligible(chainID, now) {
			eligible = append(eligible, s)
		}
	}
	return eligible
}
