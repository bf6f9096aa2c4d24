package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// GovwatcherYAMLConfig represents the complete govwatcher.yaml file structure
type GovwatcherYAMLConfig struct {
	Chains    map[string]*ChainConfig `yaml:"chains"`
	Defaults  *Defaults               `yaml:"defaults"`
	Scheduler *SchedulerConfig        `yaml:"scheduler"`
	Retention *RetentionConfig        `yaml:"retention"`
	Notify    *NotifyConfig           `yaml:"notify"`
}

// LLMProvidersYAMLConfig represents the complete llm-providers.yaml file structure
type LLMProvidersYAMLConfig struct {
	LLMProviders map[string]*LLMProviderConfig `yaml:"llm_providers"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load YAML files from configDir
//  2. Expand environment variables
//  3. Parse YAML into structs
//  4. Build in-memory registries
//  5. Apply default values
//  6. Validate all configuration
//  7. Return Config ready for use
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	// 1. Load configuration files
	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Validate all configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	stats := cfg.Stats()
	log.Info("Configuration initialized successfully",
		"chains", stats.Chains,
		"llm_providers", stats.LLMProviders)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{
		configDir: configDir,
	}

	// 1. Load govwatcher.yaml (contains chains, defaults, scheduler, retention, notify)
	mainConfig, err := loader.loadGovwatcherYAML()
	if err != nil {
		return nil, NewLoadError("govwatcher.yaml", err)
	}

	// 2. Load llm-providers.yaml
	llmProviders, err := loader.loadLLMProvidersYAML()
	if err != nil {
		return nil, NewLoadError("llm-providers.yaml", err)
	}

	// 3. Build registries
	chainRegistry := NewChainRegistry(mainConfig.Chains)
	llmProviderRegistry := NewLLMProviderRegistry(llmProviders)

	// 4. Resolve defaults (YAML overrides built-in)
	defaults := mainConfig.Defaults
	if defaults == nil {
		defaults = &Defaults{}
	}
	if defaults.AnalysisTimeout == 0 {
		defaults.AnalysisTimeout = DefaultAnalysisTimeout
	}
	if defaults.SendTimeout == 0 {
		defaults.SendTimeout = DefaultSendTimeout
	}
	if defaults.DirectoryCacheTTL == 0 {
		defaults.DirectoryCacheTTL = DefaultDirectoryCacheTTL
	}

	// Resolve scheduler config (merge user YAML with built-in defaults)
	// Start with defaults, then merge user config on top to preserve unset defaults
	schedulerConfig := DefaultSchedulerConfig()
	if mainConfig.Scheduler != nil {
		// Merge user-provided config into defaults (non-zero values override)
		if err := mergo.Merge(schedulerConfig, mainConfig.Scheduler, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge scheduler config: %w", err)
		}
	}

	retentionCfg := resolveRetentionConfig(mainConfig.Retention)
	notifyCfg := resolveNotifyConfig(mainConfig.Notify)

	return &Config{
		configDir:           configDir,
		Defaults:            defaults,
		Scheduler:           schedulerConfig,
		Retention:           retentionCfg,
		Notify:              notifyCfg,
		ChainRegistry:       chainRegistry,
		LLMProviderRegistry: llmProviderRegistry,
	}, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax
	// Note: ExpandEnv passes through original data on parse/execution errors,
	// allowing YAML parser to handle the content (or fail with clearer error message)
	data = ExpandEnv(data)

	// Parse YAML
	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadGovwatcherYAML() (*GovwatcherYAMLConfig, error) {
	var config GovwatcherYAMLConfig

	// Initialize map to avoid nil map
	config.Chains = make(map[string]*ChainConfig)

	if err := l.loadYAML("govwatcher.yaml", &config); err != nil {
		return nil, err
	}

	return &config, nil
}

func (l *configLoader) loadLLMProvidersYAML() (map[string]*LLMProviderConfig, error) {
	var config LLMProvidersYAMLConfig

	// Initialize map to avoid nil map
	config.LLMProviders = make(map[string]*LLMProviderConfig)

	if err := l.loadYAML("llm-providers.yaml", &config); err != nil {
		return nil, err
	}

	return config.LLMProviders, nil
}

// resolveRetentionConfig resolves retention configuration from YAML, applying defaults.
func resolveRetentionConfig(r *RetentionConfig) *RetentionConfig {
	cfg := DefaultRetentionConfig()

	if r == nil {
		return cfg
	}

	if r.AnalysisRetentionDays > 0 {
		cfg.AnalysisRetentionDays = r.AnalysisRetentionDays
	}
	if r.MarkRetentionDays > 0 {
		cfg.MarkRetentionDays = r.MarkRetentionDays
	}

	return cfg
}

// resolveNotifyConfig resolves notifier configuration from YAML, applying defaults.
func resolveNotifyConfig(n *NotifyConfig) *NotifyConfig {
	cfg := &NotifyConfig{
		Transport: NotifierTypeLog,
		TokenEnv:  "SLACK_BOT_TOKEN",
	}

	if n == nil {
		return cfg
	}

	if n.Transport != "" {
		cfg.Transport = n.Transport
	}
	if n.TokenEnv != "" {
		cfg.TokenEnv = n.TokenEnv
	}
	if n.Channel != "" {
		cfg.Channel = n.Channel
	}
	if n.SMTPAddr != "" {
		cfg.SMTPAddr = n.SMTPAddr
	}
	if n.FromAddress != "" {
		cfg.FromAddress = n.FromAddress
	}
	if n.ServiceURL != "" {
		cfg.ServiceURL = n.ServiceURL
	}

	return cfg
}
