package config

import (
	"fmt"
	"sort"
	"sync"
)

// ChainConfig describes one monitored Cosmos chain. Immutable within a
// process run; endpoint order is the round-robin start order.
type ChainConfig struct {
	// Human-readable name used in notification subjects (required)
	Name string `yaml:"name"`

	// Ordered REST endpoint URLs (required, at least one)
	Endpoints []string `yaml:"endpoints"`
}

// ChainRegistry stores chain configurations in memory with thread-safe access
type ChainRegistry struct {
	chains map[string]*ChainConfig
	mu     sync.RWMutex
}

// NewChainRegistry creates a new chain registry
func NewChainRegistry(chains map[string]*ChainConfig) *ChainRegistry {
	// Defensive copy to prevent external mutation
	copied := make(map[string]*ChainConfig, len(chains))
	for k, v := range chains {
		copied[k] = v
	}
	return &ChainRegistry{chains: copied}
}

// Get retrieves a chain configuration by chain ID (thread-safe)
func (r *ChainRegistry) Get(chainID string) (*ChainConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain, exists := r.chains[chainID]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrChainNotFound, chainID)
	}
	return chain, nil
}

// Has checks if a chain exists in the registry (thread-safe)
func (r *ChainRegistry) Has(chainID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.chains[chainID]
	return exists
}

// GetAll returns a copy of all chain configurations (thread-safe)
func (r *ChainRegistry) GetAll() map[string]*ChainConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()

	copied := make(map[string]*ChainConfig, len(r.chains))
	for k, v := range r.chains {
		copied[k] = v
	}
	return copied
}

// ChainIDs returns a sorted list of all configured chain IDs
func (r *ChainRegistry) ChainIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.chains))
	for id := range r.chains {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Len returns the number of chains in the registry
func (r *ChainRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.chains)
}
