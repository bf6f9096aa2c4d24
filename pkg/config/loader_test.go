package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validGovwatcherYAML = `
chains:
  cosmoshub-4:
    name: "Cosmos Hub"
    endpoints:
      - "https://rest.cosmos.directory/cosmoshub"
      - "https://cosmoshub-api.example.com"
  osmosis-1:
    name: "Osmosis"
    endpoints:
      - "https://rest.cosmos.directory/osmosis"

defaults:
  provider_order:
    - rules

notify:
  transport: log
`

const validLLMProvidersYAML = `
llm_providers:
  rules:
    type: rules
`

func writeConfigDir(t *testing.T, govwatcher, llmProviders string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "govwatcher.yaml"), []byte(govwatcher), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "llm-providers.yaml"), []byte(llmProviders), 0644))
	return dir
}

func TestInitializeValidConfig(t *testing.T) {
	dir := writeConfigDir(t, validGovwatcherYAML, validLLMProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.ChainRegistry.Len())
	assert.Equal(t, 1, cfg.LLMProviderRegistry.Len())

	chain, err := cfg.GetChain("cosmoshub-4")
	require.NoError(t, err)
	assert.Equal(t, "Cosmos Hub", chain.Name)
	assert.Len(t, chain.Endpoints, 2)

	stats := cfg.Stats()
	assert.Equal(t, 2, stats.Chains)
	assert.Equal(t, 1, stats.LLMProviders)
}

func TestInitializeAppliesDefaults(t *testing.T) {
	dir := writeConfigDir(t, validGovwatcherYAML, validLLMProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, DefaultAnalysisTimeout, cfg.Defaults.AnalysisTimeout)
	assert.Equal(t, DefaultSendTimeout, cfg.Defaults.SendTimeout)
	assert.Equal(t, DefaultDirectoryCacheTTL, cfg.Defaults.DirectoryCacheTTL)

	assert.Equal(t, time.Hour, cfg.Scheduler.TickInterval)
	assert.Equal(t, 6*time.Minute, cfg.Scheduler.TickJitter)
	assert.Equal(t, 256, cfg.Scheduler.AnalysisQueueSize)

	assert.Equal(t, 30, cfg.Retention.AnalysisRetentionDays)
	assert.Equal(t, 0, cfg.Retention.MarkRetentionDays)

	assert.Equal(t, NotifierTypeLog, cfg.Notify.Transport)
	assert.Equal(t, "SLACK_BOT_TOKEN", cfg.Notify.TokenEnv)
}

func TestInitializeMergesSchedulerOverrides(t *testing.T) {
	yaml := validGovwatcherYAML + `
scheduler:
  tick_interval: 30m
  tick_jitter: 3m
  max_concurrent_analyses: 5
`
	dir := writeConfigDir(t, yaml, validLLMProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Scheduler.TickInterval)
	assert.Equal(t, 3*time.Minute, cfg.Scheduler.TickJitter)
	assert.Equal(t, int64(5), cfg.Scheduler.MaxConcurrentAnalyses)
	// Unset fields keep their built-in defaults
	assert.Equal(t, 1024, cfg.Scheduler.DeliveryQueueSize)
	assert.Equal(t, time.Hour, cfg.Scheduler.SweepInterval)
}

func TestInitializeMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeConfigDir(t, "chains: [not a map", validLLMProvidersYAML)

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("TEST_ENDPOINT_HOST", "rest.example.com")
	yaml := `
chains:
  testchain-1:
    name: "Test Chain"
    endpoints:
      - "https://{{.TEST_ENDPOINT_HOST}}/api"

defaults:
  provider_order:
    - rules
`
	dir := writeConfigDir(t, yaml, validLLMProvidersYAML)

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	chain, err := cfg.GetChain("testchain-1")
	require.NoError(t, err)
	assert.Equal(t, "https://rest.example.com/api", chain.Endpoints[0])
}

func TestExpandEnvLeavesDollarsAlone(t *testing.T) {
	out := ExpandEnv([]byte("password: pa$$word"))
	assert.Equal(t, "password: pa$$word", string(out))
}

func TestExpandEnvMissingVariable(t *testing.T) {
	out := ExpandEnv([]byte("value: {{.DEFINITELY_NOT_SET_ANYWHERE}}"))
	assert.Equal(t, "value: ", string(out))
}
