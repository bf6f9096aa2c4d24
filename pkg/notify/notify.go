// Package notify delivers advice to subscribers over pluggable
// transports (Slack, SMTP, process log).
package notify

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/govwatcher/govwatcher/pkg/config"
)

var (
	// ErrTransient marks a send failure worth retrying.
	ErrTransient = errors.New("transient notifier error")

	// ErrPermanent marks a send failure that retrying cannot fix.
	ErrPermanent = errors.New("permanent notifier error")
)

// Notifier sends one notification. A nil error means the transport
// accepted the message and returns its opaque message identifier.
type Notifier interface {
	Send(ctx context.Context, address, subject, body string) (messageID string, err error)
}

// IsTransient reports whether the send may be retried.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}

// Subject renders the notification subject line.
func Subject(chainName string, proposalID int64, title string) string {
	return fmt.Sprintf("[%s] Proposal #%d: %s", chainName, proposalID, title)
}

// New creates the notifier selected by configuration.
func New(cfg *config.NotifyConfig) (Notifier, error) {
	switch cfg.Transport {
	case config.NotifierTypeSlack:
		return NewSlackNotifier(os.Getenv(cfg.TokenEnv), cfg.Channel), nil
	case config.NotifierTypeSMTP:
		return NewSMTPNotifier(cfg.SMTPAddr, cfg.FromAddress), nil
	case config.NotifierTypeLog:
		return NewLogNotifier(), nil
	default:
		return nil, fmt.Errorf("unsupported notifier transport: %s", cfg.Transport)
	}
}
