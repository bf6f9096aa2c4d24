package config

import "time"

// SchedulerConfig controls tick cadence, queue depths, and concurrency caps.
type SchedulerConfig struct {
	// TickInterval is the base watcher interval per chain.
	TickInterval time.Duration `yaml:"tick_interval"`

	// TickJitter is the random jitter applied to TickInterval.
	// Actual interval: TickInterval ± TickJitter.
	TickJitter time.Duration `yaml:"tick_jitter"`

	// AnalysisQueueSize is the analysis work queue capacity. Enqueue of a
	// fingerprint already queued or in flight is a no-op.
	AnalysisQueueSize int `yaml:"analysis_queue_size"`

	// DeliveryQueueSize is the delivery work queue capacity.
	DeliveryQueueSize int `yaml:"delivery_queue_size"`

	// MaxConcurrentAnalyses caps in-flight LLM calls process-wide.
	MaxConcurrentAnalyses int64 `yaml:"max_concurrent_analyses"`

	// MaxConcurrentSends caps in-flight notifier sends process-wide.
	MaxConcurrentSends int64 `yaml:"max_concurrent_sends"`

	// AnalysisDrainTimeout bounds how long shutdown waits for the analysis
	// queue to drain before cancelling remaining work.
	AnalysisDrainTimeout time.Duration `yaml:"analysis_drain_timeout"`

	// DeliveryDrainTimeout bounds the delivery queue drain after the
	// analysis drain completes.
	DeliveryDrainTimeout time.Duration `yaml:"delivery_drain_timeout"`

	// SweepInterval is how often the cache retention sweep runs.
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// DefaultSchedulerConfig returns the built-in scheduler defaults.
func DefaultSchedulerConfig() *SchedulerConfig {
	return &SchedulerConfig{
		TickInterval:          1 * time.Hour,
		TickJitter:            6 * time.Minute, // ±10% of the nominal interval
		AnalysisQueueSize:     256,
		DeliveryQueueSize:     1024,
		MaxConcurrentAnalyses: 3,
		MaxConcurrentSends:    8,
		AnalysisDrainTimeout:  60 * time.Second,
		DeliveryDrainTimeout:  30 * time.Second,
		SweepInterval:         1 * time.Hour,
	}
}
