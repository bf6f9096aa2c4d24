package api

import (
	"github.com/govwatcher/govwatcher/pkg/database"
	"github.com/govwatcher/govwatcher/pkg/metrics"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Database *database.HealthStatus `json:"database"`
	Checks   map[string]HealthCheck `json:"checks,omitempty"`
}

// HealthCheck is one named component check inside HealthResponse.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// StatsResponse is returned by GET /api/v1/stats.
type StatsResponse struct {
	Pipeline      metrics.Stats      `json:"pipeline"`
	Configuration ConfigurationStats `json:"configuration"`
	Paused        bool               `json:"deliveries_paused"`
}

// ConfigurationStats contains counts of loaded configuration items.
type ConfigurationStats struct {
	Chains       int `json:"chains"`
	LLMProviders int `json:"llm_providers"`
}

// PauseRequest is the body of POST /api/v1/admin/pause.
type PauseRequest struct {
	Paused bool `json:"paused"`
}

// PauseResponse is returned by POST /api/v1/admin/pause.
type PauseResponse struct {
	Paused  bool   `json:"paused"`
	Message string `json:"message"`
}

// TickResponse is returned by POST /api/v1/admin/tick/:chainID.
type TickResponse struct {
	ChainID string `json:"chain_id"`
	Message string `json:"message"`
}
