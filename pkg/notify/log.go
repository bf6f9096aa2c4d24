package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// LogNotifier writes notifications to the process log. Development
// transport; every send is accepted.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{
		logger: slog.Default().With("component", "log-notifier"),
	}
}

// Send logs the notification and returns a generated message identifier.
func (n *LogNotifier) Send(_ context.Context, address, subject, body string) (string, error) {
	messageID := uuid.NewString()
	n.logger.Info("Notification",
		"address", address,
		"subject", subject,
		"message_id", messageID,
		"body_len", len(body))
	return messageID, nil
}
