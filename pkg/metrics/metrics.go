// Package metrics exposes pipeline counters both as Prometheus metrics
// and as a plain snapshot for the admin stats endpoint.
package metrics

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all pipeline counters. Prometheus collectors feed the
// /metrics endpoint; the atomic totals feed Stats().
type Registry struct {
	ticks             prometheus.Counter
	events            *prometheus.CounterVec
	analyses          *prometheus.CounterVec
	cacheHits         prometheus.Counter
	cacheMisses       prometheus.Counter
	deliveries        prometheus.Counter
	duplicatesDropped prometheus.Counter
	deliveryFailures  *prometheus.CounterVec

	totalTicks      atomic.Int64
	totalEvents     atomic.Int64
	totalAnalyses   atomic.Int64
	totalHits       atomic.Int64
	totalMisses     atomic.Int64
	totalDeliveries atomic.Int64
	totalDuplicates atomic.Int64
	totalFailures   atomic.Int64
}

// Stats is the counter snapshot returned by the admin surface.
type Stats struct {
	Ticks             int64 `json:"ticks"`
	EventsEmitted     int64 `json:"events_emitted"`
	AnalysesComputed  int64 `json:"analyses_computed"`
	CacheHits         int64 `json:"cache_hits"`
	CacheMisses       int64 `json:"cache_misses"`
	Deliveries        int64 `json:"deliveries"`
	DuplicatesDropped int64 `json:"duplicates_dropped"`
	DeliveryFailures  int64 `json:"delivery_failures"`
}

// NewRegistry creates and registers all counters with the given
// Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		ticks: factory.NewCounter(prometheus.CounterOpts{
			Name: "govwatcher_watcher_ticks_total",
			Help: "Completed watcher ticks across all chains.",
		}),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "govwatcher_change_events_total",
			Help: "Change events emitted by the watcher.",
		}, []string{"kind"}),
		analyses: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "govwatcher_analyses_total",
			Help: "Analyses computed, labeled by the provider that produced them.",
		}, []string{"provider"}),
		cacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "govwatcher_analysis_cache_hits_total",
			Help: "Analysis cache lookups served without a new computation.",
		}),
		cacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "govwatcher_analysis_cache_misses_total",
			Help: "Analysis cache lookups that triggered a computation.",
		}),
		deliveries: factory.NewCounter(prometheus.CounterOpts{
			Name: "govwatcher_deliveries_total",
			Help: "Notifications accepted by the notifier.",
		}),
		duplicatesDropped: factory.NewCounter(prometheus.CounterOpts{
			Name: "govwatcher_duplicate_deliveries_dropped_total",
			Help: "Delivery attempts suppressed by an existing delivery mark.",
		}),
		deliveryFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "govwatcher_delivery_failures_total",
			Help: "Delivery attempts that failed after retries.",
		}, []string{"kind"}),
	}
}

// IncTick records one completed watcher tick.
func (r *Registry) IncTick() {
	if r == nil {
		return
	}
	r.ticks.Inc()
	r.totalTicks.Add(1)
}

// IncEvent records one emitted change event.
func (r *Registry) IncEvent(kind string) {
	if r == nil {
		return
	}
	r.events.WithLabelValues(kind).Inc()
	r.totalEvents.Add(1)
}

// IncAnalysis records one computed analysis.
func (r *Registry) IncAnalysis(provider string) {
	if r == nil {
		return
	}
	r.analyses.WithLabelValues(provider).Inc()
	r.totalAnalyses.Add(1)
}

// IncCacheHit records one cache hit.
func (r *Registry) IncCacheHit() {
	if r == nil {
		return
	}
	r.cacheHits.Inc()
	r.totalHits.Add(1)
}

// IncCacheMiss records one cache miss.
func (r *Registry) IncCacheMiss() {
	if r == nil {
		return
	}
	r.cacheMisses.Inc()
	r.totalMisses.Add(1)
}

// IncDelivery records one accepted notification.
func (r *Registry) IncDelivery() {
	if r == nil {
		return
	}
	r.deliveries.Inc()
	r.totalDeliveries.Add(1)
}

// IncDuplicateDropped records one mark-suppressed delivery attempt.
func (r *Registry) IncDuplicateDropped() {
	if r == nil {
		return
	}
	r.duplicatesDropped.Inc()
	r.totalDuplicates.Add(1)
}

// IncDeliveryFailure records one delivery failure of the given kind
// (transient or permanent).
func (r *Registry) IncDeliveryFailure(kind string) {
	if r == nil {
		return
	}
	r.deliveryFailures.WithLabelValues(kind).Inc()
	r.totalFailures.Add(1)
}

// Snapshot returns the current counter values.
func (r *Registry) Snapshot() Stats {
	if r == nil {
		return Stats{}
	}
	return Stats{
		Ticks:             r.totalTicks.Load(),
		EventsEmitted:     r.totalEvents.Load(),
		AnalysesComputed:  r.totalAnalyses.Load(),
		CacheHits:         r.totalHits.Load(),
		CacheMisses:       r.totalMisses.Load(),
		Deliveries:        r.totalDeliveries.Load(),
		DuplicatesDropped: r.totalDuplicates.Load(),
		DeliveryFailures:  r.totalFailures.Load(),
	}
}
