package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/govwatcher/govwatcher/pkg/config"
	"github.com/govwatcher/govwatcher/pkg/models"
)

// ErrProviderPermanent marks provider failures that retrying the same
// call cannot fix (auth errors, bad requests). The analyzer skips the
// provider either way; the distinction drives logging and metrics.
var ErrProviderPermanent = errors.New("permanent provider error")

// Provider produces a structured analysis for one proposal under one
// policy. Implementations must be safe for concurrent use.
type Provider interface {
	Name() string
	Analyze(ctx context.Context, proposal models.Proposal, chainName string, policy models.Policy) (*Result, error)
}

// IsPermanentProviderErr reports whether the provider failed in a way
// that a retry with the same input cannot fix.
func IsPermanentProviderErr(err error) bool {
	return errors.Is(err, ErrSchema) || errors.Is(err, ErrProviderPermanent)
}

// completer is a raw LLM call: system plus user text in, text out.
type completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// llmProvider adapts a completer into a Provider: prompt construction,
// schema validation, and a single repair round-trip when the first
// response fails validation.
type llmProvider struct {
	name   string
	llm    completer
	logger *slog.Logger
}

func newLLMProvider(name string, llm completer) *llmProvider {
	return &llmProvider{
		name:   name,
		llm:    llm,
		logger: slog.With("provider", name),
	}
}

func (p *llmProvider) Name() string {
	return p.name
}

func (p *llmProvider) Analyze(ctx context.Context, proposal models.Proposal, chainName string, policy models.Policy) (*Result, error) {
	prompt := BuildPrompt(proposal, chainName, policy)

	raw, err := p.llm.Complete(ctx, systemPreamble, prompt)
	if err != nil {
		return nil, err
	}

	result, parseErr := ParseResult(raw)
	if parseErr == nil {
		return result, nil
	}

	p.logger.Warn("Provider output failed validation, requesting repair",
		"proposal", proposal.Key(),
		"error", parseErr)

	raw, err = p.llm.Complete(ctx, systemPreamble, prompt+"\n\n"+repairRequest)
	if err != nil {
		return nil, err
	}

	result, parseErr = ParseResult(raw)
	if parseErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, parseErr)
	}
	return result, nil
}

// BuildProviders constructs the ordered provider chain from configuration.
// Order is the static fallback order; the first entry is tried first.
func BuildProviders(order []string, registry *config.LLMProviderRegistry) ([]Provider, error) {
	providers := make([]Provider, 0, len(order))
	for _, name := range order {
		cfg, err := registry.Get(name)
		if err != nil {
			return nil, err
		}

		switch cfg.Type {
		case config.LLMProviderTypeAnthropic:
			providers = append(providers, NewAnthropicProvider(name, cfg))
		case config.LLMProviderTypeOpenAI:
			providers = append(providers, NewOpenAIProvider(name, cfg))
		case config.LLMProviderTypeRules:
			providers = append(providers, NewRulesProvider(name))
		default:
			return nil, fmt.Errorf("provider %s: unsupported type %s", name, cfg.Type)
		}
	}
	return providers, nil
}
