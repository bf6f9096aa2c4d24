package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry(prometheus.NewRegistry())

	r.IncTick()
	r.IncTick()
	r.IncEvent("NEW")
	r.IncEvent("CHANGED")
	r.IncEvent("CHANGED")
	r.IncAnalysis("anthropic")
	r.IncCacheHit()
	r.IncCacheMiss()
	r.IncCacheMiss()
	r.IncDelivery()
	r.IncDuplicateDropped()
	r.IncDeliveryFailure("transient")
	r.IncDeliveryFailure("permanent")

	stats := r.Snapshot()
	assert.Equal(t, int64(2), stats.Ticks)
	assert.Equal(t, int64(3), stats.EventsEmitted)
	assert.Equal(t, int64(1), stats.AnalysesComputed)
	assert.Equal(t, int64(1), stats.CacheHits)
	assert.Equal(t, int64(2), stats.CacheMisses)
	assert.Equal(t, int64(1), stats.Deliveries)
	assert.Equal(t, int64(1), stats.DuplicatesDropped)
	assert.Equal(t, int64(2), stats.DeliveryFailures)
}

func TestRegistryExposesCollectors(t *testing.T) {
	promReg := prometheus.NewRegistry()
	r := NewRegistry(promReg)
	r.IncTick()
	r.IncEvent("NEW")

	families, err := promReg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["govwatcher_watcher_ticks_total"])
	assert.True(t, names["govwatcher_change_events_total"])
}

// A nil registry is a no-op everywhere so components can run unmetered
// in tests.
func TestNilRegistryIsSafe(t *testing.T) {
	var r *Registry

	r.IncTick()
	r.IncEvent("NEW")
	r.IncAnalysis("anthropic")
	r.IncCacheHit()
	r.IncCacheMiss()
	r.IncDelivery()
	r.IncDuplicateDropped()
	r.IncDeliveryFailure("transient")

	assert.Equal(t, Stats{}, r.Snapshot())
}
