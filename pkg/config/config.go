package config

// Config is the umbrella configuration object returned by Initialize and
// used throughout the process. Effectively immutable after load; changes
// require a restart.
type Config struct {
	configDir string

	// System-wide defaults
	Defaults *Defaults

	// Scheduler cadence, queue depths, concurrency caps
	Scheduler *SchedulerConfig

	// Retention sweep settings
	Retention *RetentionConfig

	// Notifier transport settings
	Notify *NotifyConfig

	// Component registries
	ChainRegistry       *ChainRegistry
	LLMProviderRegistry *LLMProviderRegistry
}

// Stats contains statistics about loaded configuration
type Stats struct {
	Chains       int
	LLMProviders int
}

// Stats returns configuration statistics for logging/monitoring
func (c *Config) Stats() Stats {
	s := Stats{}
	if c.ChainRegistry != nil {
		s.Chains = c.ChainRegistry.Len()
	}
	if c.LLMProviderRegistry != nil {
		s.LLMProviders = c.LLMProviderRegistry.Len()
	}
	return s
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GetChain retrieves a chain configuration by ID.
// Convenience wrapper around ChainRegistry.Get().
func (c *Config) GetChain(chainID string) (*ChainConfig, error) {
	return c.ChainRegistry.Get(chainID)
}

// GetLLMProvider retrieves an LLM provider configuration by name.
// Convenience wrapper around LLMProviderRegistry.Get().
func (c *Config) GetLLMProvider(name string) (*LLMProviderConfig, error) {
	return c.LLMProviderRegistry.Get(name)
}

// NotifyConfig holds notification transport settings.
type NotifyConfig struct {
	// Transport selects the notifier implementation.
	Transport NotifierType `yaml:"transport"`

	// TokenEnv names the environment variable holding the Slack bot token.
	TokenEnv string `yaml:"token_env,omitempty"`

	// Channel is the Slack channel for slack transport.
	Channel string `yaml:"channel,omitempty"`

	// SMTPAddr is host:port for smtp transport.
	SMTPAddr string `yaml:"smtp_addr,omitempty"`

	// FromAddress is the sender address for smtp transport.
	FromAddress string `yaml:"from_address,omitempty"`

	// ServiceURL appears in notification footers.
	ServiceURL string `yaml:"service_url,omitempty"`
}
