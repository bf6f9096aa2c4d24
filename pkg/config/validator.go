package config

import (
	"fmt"
	"net/url"
	"os"
)

// ConfigValidator validates configuration comprehensively with clear error messages
type ConfigValidator struct {
	cfg *Config
}

// NewValidator creates a validator for the given configuration
func NewValidator(cfg *Config) *ConfigValidator {
	return &ConfigValidator{cfg: cfg}
}

// ValidateAll performs comprehensive validation (fail-fast - stops at first error)
func (v *ConfigValidator) ValidateAll() error {
	// Validate in order: LLM providers → chains → defaults → scheduler → notify
	// This ensures dependencies are validated before dependents

	if err := v.validateLLMProviders(); err != nil {
		return fmt.Errorf("LLM provider validation failed: %w", err)
	}

	if err := v.validateChains(); err != nil {
		return fmt.Errorf("chain validation failed: %w", err)
	}

	if err := v.validateDefaults(); err != nil {
		return fmt.Errorf("defaults validation failed: %w", err)
	}

	if err := v.validateScheduler(); err != nil {
		return fmt.Errorf("scheduler validation failed: %w", err)
	}

	if err := v.validateNotify(); err != nil {
		return fmt.Errorf("notify validation failed: %w", err)
	}

	return nil
}

func (v *ConfigValidator) validateChains() error {
	if v.cfg.ChainRegistry.Len() == 0 {
		return fmt.Errorf("%w: at least one chain required", ErrValidationFailed)
	}

	for chainID, chain := range v.cfg.ChainRegistry.GetAll() {
		if chain.Name == "" {
			return NewValidationError("chain", chainID, "name", fmt.Errorf("display name required"))
		}

		if len(chain.Endpoints) == 0 {
			return NewValidationError("chain", chainID, "endpoints", fmt.Errorf("at least one REST endpoint required"))
		}

		for i, endpoint := range chain.Endpoints {
			u, err := url.Parse(endpoint)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return NewValidationError("chain", chainID, fmt.Sprintf("endpoints[%d]", i), fmt.Errorf("invalid endpoint URL: %s", endpoint))
			}
		}
	}

	return nil
}

func (v *ConfigValidator) validateLLMProviders() error {
	for name, provider := range v.cfg.LLMProviderRegistry.GetAll() {
		// Validate provider type
		if !provider.Type.IsValid() {
			return NewValidationError("llm_provider", name, "type", fmt.Errorf("invalid provider type: %s", provider.Type))
		}

		// The rules provider is purely local and needs no model or API key
		if provider.Type == LLMProviderTypeRules {
			continue
		}

		// Validate model is not empty
		if provider.Model == "" {
			return NewValidationError("llm_provider", name, "model", fmt.Errorf("model required"))
		}

		// Validate API key environment variable is set (if specified)
		if provider.APIKeyEnv != "" {
			if value := os.Getenv(provider.APIKeyEnv); value == "" {
				return NewValidationError("llm_provider", name, "api_key_env", fmt.Errorf("environment variable %s is not set", provider.APIKeyEnv))
			}
		}

		// OpenAI-compatible providers need a base URL to aim at
		if provider.Type == LLMProviderTypeOpenAI && provider.BaseURL != "" {
			u, err := url.Parse(provider.BaseURL)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return NewValidationError("llm_provider", name, "base_url", fmt.Errorf("invalid base URL: %s", provider.BaseURL))
			}
		}

		// Validate temperature range
		if provider.Temperature < 0 || provider.Temperature > 2 {
			return NewValidationError("llm_provider", name, "temperature", fmt.Errorf("must be between 0 and 2"))
		}
	}

	return nil
}

func (v *ConfigValidator) validateDefaults() error {
	d := v.cfg.Defaults

	// Provider order entries must reference registered providers
	if len(d.ProviderOrder) == 0 {
		return NewValidationError("defaults", "defaults", "provider_order", fmt.Errorf("at least one provider required"))
	}

	seen := make(map[string]bool)
	for _, name := range d.ProviderOrder {
		if !v.cfg.LLMProviderRegistry.Has(name) {
			return NewValidationError("defaults", "defaults", "provider_order", fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name))
		}
		if seen[name] {
			return NewValidationError("defaults", "defaults", "provider_order", fmt.Errorf("duplicate provider: %s", name))
		}
		seen[name] = true
	}

	if d.AnalysisTimeout <= 0 {
		return NewValidationError("defaults", "defaults", "analysis_timeout", fmt.Errorf("must be positive"))
	}
	if d.SendTimeout <= 0 {
		return NewValidationError("defaults", "defaults", "send_timeout", fmt.Errorf("must be positive"))
	}
	if d.DirectoryCacheTTL <= 0 {
		return NewValidationError("defaults", "defaults", "directory_cache_ttl", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateScheduler() error {
	s := v.cfg.Scheduler

	if s.TickInterval <= 0 {
		return NewValidationError("scheduler", "scheduler", "tick_interval", fmt.Errorf("must be positive"))
	}
	if s.TickJitter < 0 || s.TickJitter >= s.TickInterval {
		return NewValidationError("scheduler", "scheduler", "tick_jitter", fmt.Errorf("must be non-negative and smaller than tick_interval"))
	}
	if s.AnalysisQueueSize < 1 {
		return NewValidationError("scheduler", "scheduler", "analysis_queue_size", fmt.Errorf("must be at least 1"))
	}
	if s.DeliveryQueueSize < 1 {
		return NewValidationError("scheduler", "scheduler", "delivery_queue_size", fmt.Errorf("must be at least 1"))
	}
	if s.MaxConcurrentAnalyses < 1 {
		return NewValidationError("scheduler", "scheduler", "max_concurrent_analyses", fmt.Errorf("must be at least 1"))
	}
	if s.MaxConcurrentSends < 1 {
		return NewValidationError("scheduler", "scheduler", "max_concurrent_sends", fmt.Errorf("must be at least 1"))
	}
	if s.SweepInterval <= 0 {
		return NewValidationError("scheduler", "scheduler", "sweep_interval", fmt.Errorf("must be positive"))
	}

	return nil
}

func (v *ConfigValidator) validateNotify() error {
	n := v.cfg.Notify

	if !n.Transport.IsValid() {
		return NewValidationError("notify", "notify", "transport", fmt.Errorf("invalid transport: %s", n.Transport))
	}

	switch n.Transport {
	case NotifierTypeSlack:
		if n.Channel == "" {
			return NewValidationError("notify", "notify", "channel", fmt.Errorf("channel required for slack transport"))
		}
	case NotifierTypeSMTP:
		if n.SMTPAddr == "" {
			return NewValidationError("notify", "notify", "smtp_addr", fmt.Errorf("smtp_addr required for smtp transport"))
		}
		if n.FromAddress == "" {
			return NewValidationError("notify", "notify", "from_address", fmt.Errorf("from_address required for smtp transport"))
		}
	}

	return nil
}
