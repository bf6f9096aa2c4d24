package subscriber

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	subscribers []models.Subscriber
	err         error
	calls       int
}

func (d *fakeDirectory) ListSubscribersFor(context.Context, string, time.Time) ([]models.Subscriber, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	return d.subscribers, nil
}

func activeSubscriber(id string, chains ...string) models.Subscriber {
	return models.Subscriber{
		ID:          id,
		Address:     id + "@example.com",
		Chains:      chains,
		Active:      true,
		ActiveUntil: time.Now().Add(24 * time.Hour),
		Policy:      models.Policy{RiskTolerance: models.RiskMedium},
	}
}

func TestMatcherCachesDirectoryReads(t *testing.T) {
	dir := &fakeDirectory{subscribers: []models.Subscriber{
		activeSubscriber("sub-1", "testchain-1"),
	}}
	m := NewMatcher(dir, time.Minute)
	ctx := context.Background()
	now := time.Now()

	matched, err := m.Match(ctx, "testchain-1", now)
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, 1, dir.calls)

	// Second read inside the window hits the cache
	_, err = m.Match(ctx, "testchain-1", now)
	require.NoError(t, err)
	assert.Equal(t, 1, dir.calls)
}

func TestMatcherExpiresAfterTTL(t *testing.T) {
	dir := &fakeDirectory{subscribers: []models.Subscriber{
		activeSubscriber("sub-1", "testchain-1"),
	}}
	m := NewMatcher(dir, 10*time.Millisecond)
	ctx := context.Background()

	_, err := m.Match(ctx, "testchain-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 1, dir.calls)

	time.Sleep(20 * time.Millisecond)

	_, err = m.Match(ctx, "testchain-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, dir.calls, "expired entry forces a directory re-read")
}

func TestMatcherInvalidate(t *testing.T) {
	dir := &fakeDirectory{}
	m := NewMatcher(dir, time.Minute)
	ctx := context.Background()

	_, err := m.Match(ctx, "testchain-1", time.Now())
	require.NoError(t, err)
	m.Invalidate("testchain-1")

	_, err = m.Match(ctx, "testchain-1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, dir.calls)
}

func TestMatcherRechecksEligibilityOnCachedReads(t *testing.T) {
	lapsing := activeSubscriber("sub-1", "testchain-1")
	lapsing.ActiveUntil = time.Now().Add(50 * time.Millisecond)
	dir := &fakeDirectory{subscribers: []models.Subscriber{lapsing}}
	m := NewMatcher(dir, time.Minute)
	ctx := context.Background()

	matched, err := m.Match(ctx, "testchain-1", time.Now())
	require.NoError(t, err)
	assert.Len(t, matched, 1)

	// Subscription lapses inside the cache window
	matched, err = m.Match(ctx, "testchain-1", time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, matched)
	assert.Equal(t, 1, dir.calls, "re-filter must not hit the directory")
}

func TestMatcherFiltersByChainAndActivity(t *testing.T) {
	inactive := activeSubscriber("sub-2", "testchain-1")
	inactive.Active = false
	otherChain := activeSubscriber("sub-3", "otherchain-9")

	dir := &fakeDirectory{subscribers: []models.Subscriber{
		activeSubscriber("sub-1", "testchain-1", "otherchain-9"),
		inactive,
		otherChain,
	}}
	m := NewMatcher(dir, time.Minute)

	matched, err := m.Match(context.Background(), "testchain-1", time.Now())
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "sub-1", matched[0].ID)
}

func TestMatcherDirectoryError(t *testing.T) {
	dir := &fakeDirectory{err: errors.New("directory down")}
	m := NewMatcher(dir, time.Minute)

	_, err := m.Match(context.Background(), "testchain-1", time.Now())
	assert.Error(t, err)
}
