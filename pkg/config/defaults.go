package config

import "time"

// Defaults contains system-wide default configurations applied when
// specific components don't specify their own values.
type Defaults struct {
	// ProviderOrder is the static LLM fallback order, first entry tried
	// first. Names refer to the llm-providers.yaml registry.
	ProviderOrder []string `yaml:"provider_order,omitempty"`

	// AnalysisTimeout bounds one LLM call.
	AnalysisTimeout time.Duration `yaml:"analysis_timeout,omitempty"`

	// SendTimeout bounds one notifier send.
	SendTimeout time.Duration `yaml:"send_timeout,omitempty"`

	// DirectoryCacheTTL is the staleness window for subscriber directory
	// reads.
	DirectoryCacheTTL time.Duration `yaml:"directory_cache_ttl,omitempty"`
}

// Built-in fallbacks for Defaults fields left unset in YAML.
const (
	DefaultAnalysisTimeout   = 45 * time.Second
	DefaultSendTimeout       = 20 * time.Second
	DefaultDirectoryCacheTTL = 5 * time.Minute
)
