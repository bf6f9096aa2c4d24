package analysis

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/govwatcher/govwatcher/pkg/config"
)

// anthropicCompleter calls the Anthropic Messages API.
type anthropicCompleter struct {
	client      anthropic.Client
	model       string
	temperature float64
	maxTokens   int64
}

// NewAnthropicProvider creates a provider backed by the Anthropic API.
func NewAnthropicProvider(name string, cfg *config.LLMProviderConfig) Provider {
	opts := []option.RequestOption{}
	if cfg.APIKeyEnv != "" {
		opts = append(opts, option.WithAPIKey(os.Getenv(cfg.APIKeyEnv)))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	maxTokens := int64(cfg.MaxTokens)
	if maxTokens == 0 {
		maxTokens = 1500
	}

	return newLLMProvider(name, &anthropicCompleter{
		client:      anthropic.NewClient(opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   maxTokens,
	})
}

func (c *anthropicCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", classifyAnthropicErr(err)
	}

	var sb strings.Builder
	for _, block := range message.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("empty completion")
	}
	return sb.String(), nil
}

// classifyAnthropicErr folds API errors into the retry taxonomy: 429 and
// 5xx stay transient, other 4xx are permanent.
func classifyAnthropicErr(err error) error {
	var apierr *anthropic.Error
	if errors.As(err, &apierr) {
		code := apierr.StatusCode
		if code >= 400 && code < 500 && code != http.StatusTooManyRequests {
			return fmt.Errorf("%w: %v", ErrProviderPermanent, err)
		}
	}
	return err
}
