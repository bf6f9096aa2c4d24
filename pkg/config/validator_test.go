package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Defaults: &Defaults{
			ProviderOrder:     []string{"rules"},
			AnalysisTimeout:   DefaultAnalysisTimeout,
			SendTimeout:       DefaultSendTimeout,
			DirectoryCacheTTL: DefaultDirectoryCacheTTL,
		},
		Scheduler: DefaultSchedulerConfig(),
		Retention: DefaultRetentionConfig(),
		Notify:    &NotifyConfig{Transport: NotifierTypeLog},
		ChainRegistry: NewChainRegistry(map[string]*ChainConfig{
			"testchain-1": {
				Name:      "Test Chain",
				Endpoints: []string{"https://rest.example.com"},
			},
		}),
		LLMProviderRegistry: NewLLMProviderRegistry(map[string]*LLMProviderConfig{
			"rules": {Type: LLMProviderTypeRules},
		}),
	}
}

func TestValidateAllPasses(t *testing.T) {
	require.NoError(t, NewValidator(validConfig()).ValidateAll())
}

func TestValidateChains(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no chains", func(c *Config) {
			c.ChainRegistry = NewChainRegistry(nil)
		}},
		{"missing display name", func(c *Config) {
			c.ChainRegistry = NewChainRegistry(map[string]*ChainConfig{
				"testchain-1": {Endpoints: []string{"https://rest.example.com"}},
			})
		}},
		{"no endpoints", func(c *Config) {
			c.ChainRegistry = NewChainRegistry(map[string]*ChainConfig{
				"testchain-1": {Name: "Test Chain"},
			})
		}},
		{"malformed endpoint URL", func(c *Config) {
			c.ChainRegistry = NewChainRegistry(map[string]*ChainConfig{
				"testchain-1": {Name: "Test Chain", Endpoints: []string{"not a url"}},
			})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.Error(t, NewValidator(cfg).ValidateAll())
		})
	}
}

func TestValidateLLMProviders(t *testing.T) {
	tests := []struct {
		name     string
		provider *LLMProviderConfig
	}{
		{"unknown type", &LLMProviderConfig{Type: "oracle"}},
		{"missing model", &LLMProviderConfig{Type: LLMProviderTypeAnthropic}},
		{"unset api key env", &LLMProviderConfig{
			Type: LLMProviderTypeAnthropic, Model: "m", APIKeyEnv: "DEFINITELY_NOT_SET_ANYWHERE",
		}},
		{"bad base url", &LLMProviderConfig{
			Type: LLMProviderTypeOpenAI, Model: "m", BaseURL: "not a url",
		}},
		{"temperature out of range", &LLMProviderConfig{
			Type: LLMProviderTypeAnthropic, Model: "m", Temperature: 3.0,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LLMProviderRegistry = NewLLMProviderRegistry(map[string]*LLMProviderConfig{
				"rules": {Type: LLMProviderTypeRules},
				"bad":   tt.provider,
			})
			assert.Error(t, NewValidator(cfg).ValidateAll())
		})
	}
}

func TestValidateRulesProviderNeedsNoModel(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, NewValidator(cfg).ValidateAll())
}

func TestValidateProviderOrder(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		cfg := validConfig()
		cfg.Defaults.ProviderOrder = nil
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("unregistered provider", func(t *testing.T) {
		cfg := validConfig()
		cfg.Defaults.ProviderOrder = []string{"ghost"}
		err := NewValidator(cfg).ValidateAll()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLLMProviderNotFound)
	})

	t.Run("duplicate provider", func(t *testing.T) {
		cfg := validConfig()
		cfg.Defaults.ProviderOrder = []string{"rules", "rules"}
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})
}

func TestValidateScheduler(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SchedulerConfig)
	}{
		{"zero tick interval", func(s *SchedulerConfig) { s.TickInterval = 0 }},
		{"negative jitter", func(s *SchedulerConfig) { s.TickJitter = -time.Second }},
		{"jitter not below interval", func(s *SchedulerConfig) {
			s.TickInterval = time.Minute
			s.TickJitter = time.Minute
		}},
		{"zero analysis queue", func(s *SchedulerConfig) { s.AnalysisQueueSize = 0 }},
		{"zero delivery queue", func(s *SchedulerConfig) { s.DeliveryQueueSize = 0 }},
		{"zero analysis concurrency", func(s *SchedulerConfig) { s.MaxConcurrentAnalyses = 0 }},
		{"zero send concurrency", func(s *SchedulerConfig) { s.MaxConcurrentSends = 0 }},
		{"zero sweep interval", func(s *SchedulerConfig) { s.SweepInterval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg.Scheduler)
			assert.Error(t, NewValidator(cfg).ValidateAll())
		})
	}
}

func TestValidateNotify(t *testing.T) {
	t.Run("invalid transport", func(t *testing.T) {
		cfg := validConfig()
		cfg.Notify.Transport = "carrier-pigeon"
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("slack without channel", func(t *testing.T) {
		cfg := validConfig()
		cfg.Notify.Transport = NotifierTypeSlack
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("smtp without addr", func(t *testing.T) {
		cfg := validConfig()
		cfg.Notify = &NotifyConfig{Transport: NotifierTypeSMTP, FromAddress: "g@example.com"}
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("smtp without from address", func(t *testing.T) {
		cfg := validConfig()
		cfg.Notify = &NotifyConfig{Transport: NotifierTypeSMTP, SMTPAddr: "localhost:25"}
		assert.Error(t, NewValidator(cfg).ValidateAll())
	})

	t.Run("valid smtp", func(t *testing.T) {
		cfg := validConfig()
		cfg.Notify = &NotifyConfig{
			Transport:   NotifierTypeSMTP,
			SMTPAddr:    "localhost:25",
			FromAddress: "govwatcher@example.com",
		}
		assert.NoError(t, NewValidator(cfg).ValidateAll())
	})
}
