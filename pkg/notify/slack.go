package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	goslack "github.com/slack-go/slack"
)

// SlackNotifier posts advice to Slack. The subscriber address selects the
// channel when set; the configured default channel is the fallback.
type SlackNotifier struct {
	api            *goslack.Client
	defaultChannel string
	logger         *slog.Logger
}

// NewSlackNotifier creates a Slack-backed notifier.
func NewSlackNotifier(token, defaultChannel string) *SlackNotifier {
	return &SlackNotifier{
		api:            goslack.New(token),
		defaultChannel: defaultChannel,
		logger:         slog.Default().With("component", "slack-notifier"),
	}
}

// NewSlackNotifierWithAPIURL creates a notifier targeting a custom API
// URL. Useful for testing with a mock server.
func NewSlackNotifierWithAPIURL(token, defaultChannel, apiURL string) *SlackNotifier {
	return &SlackNotifier{
		api:            goslack.New(token, goslack.OptionAPIURL(apiURL)),
		defaultChannel: defaultChannel,
		logger:         slog.Default().With("component", "slack-notifier"),
	}
}

// Send posts the message and returns the Slack message timestamp as the
// message identifier.
func (n *SlackNotifier) Send(ctx context.Context, address, subject, body string) (string, error) {
	channel := address
	if channel == "" {
		channel = n.defaultChannel
	}

	text := fmt.Sprintf("*%s*\n%s", subject, body)
	_, timestamp, err := n.api.PostMessageContext(ctx, channel,
		goslack.MsgOptionText(text, false))
	if err != nil {
		return "", classifySlackErr(err)
	}
	return timestamp, nil
}

// Slack API error strings that no retry will fix.
var slackPermanentErrs = []string{
	"channel_not_found",
	"invalid_auth",
	"not_authed",
	"account_inactive",
	"token_revoked",
	"msg_too_long",
	"is_archived",
}

func classifySlackErr(err error) error {
	var rateLimited *goslack.RateLimitedError
	if errors.As(err, &rateLimited) {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}

	msg := err.Error()
	for _, code := range slackPermanentErrs {
		if strings.Contains(msg, code) {
			return fmt.Errorf("%w: %v", ErrPermanent, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrTransient, err)
}
