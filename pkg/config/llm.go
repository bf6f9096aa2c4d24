package config

import (
	"fmt"
	"sync"
)

// LLMProviderConfig defines one LLM provider in the fallback chain
type LLMProviderConfig struct {
	// Provider type (required)
	Type LLMProviderType `yaml:"type"`

	// Model name (required for anthropic/openai, ignored for rules)
	Model string `yaml:"model,omitempty"`

	// Environment variable name for the API key
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// Optional custom endpoint/base URL (Groq, gateways)
	BaseURL string `yaml:"base_url,omitempty"`

	// Sampling temperature, fixed at configuration time so that repeated
	// calls for the same input are as deterministic as the provider allows
	Temperature float64 `yaml:"temperature,omitempty"`

	// Max completion tokens per analysis call
	MaxTokens int `yaml:"max_tokens,omitempty"`
}

// LLMProviderRegistry stores LLM provider configurations in memory with
// thread-safe access
type LLMProviderRegistry struct {
	providers map[string]*LLMProviderConfig
	mu        sync.RWMutex
}

// NewLLMProviderRegistry creates a new LLM provider registry
func NewLLMProviderRegistry(providers map[string]*LLMProviderConfig) *LLMProviderRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*LLMProviderConfig, len(providers))
	for k, v := range providers {
		copied[k] = v
	}
	return &LLMProviderRegistry{providers: copied}
}

// Get retrieves an LLM provider configuration by name (thread-safe)
func (r *LLMProviderRegistry) Get(name string) (*LLMProviderConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, exists := r.providers[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrLLMProviderNotFound, name)
	}
	return provider, nil
}

// Has checks if an LLM provider exists in the registry (thread-safe)
func (r *LLMProviderRegistry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.providers[name]
	return exists
}

// GetAll returns a copy of all provider configurations (thread-safe)
func (r *LLMProviderRegistry) GetAll() map[string]*LLMProviderConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copied := make(map[string]*LLMProviderConfig, len(r.providers))
	for k, v := range r.providers {
		copied[k] = v
	}
	return copied
}

// Len returns the number of LLM providers in the registry
func (r *LLMProviderRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.providers)
}
